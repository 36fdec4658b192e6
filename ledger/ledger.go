// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/packd/address"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/storage"
)

// AssociatedProgram - program under which associated asset accounts are derived
var AssociatedProgram = address.ProgramIdentifier("associated asset account")

// Ledger - accounts for a single program
type Ledger struct {
	log     *logger.L
	program address.Address
	locks   *lockTable
}

// New - create a ledger accepting derivation proofs for a program
//
// storage must already be initialised
func New(log *logger.L, program address.Address) *Ledger {
	return &Ledger{
		log:     log,
		program: program,
		locks:   newLockTable(),
	}
}

// Program - identifier used to check derivation proofs
func (l *Ledger) Program() address.Address {
	return l.program
}

// Begin - lock the addresses that will be written and start a storage transaction
func (l *Ledger) Begin(addresses ...address.Address) (*Tx, error) {
	trx, err := storage.NewTransaction()
	if nil != err {
		return nil, err
	}

	held := lockOrder(addresses)
	l.locks.acquire(held)

	tx := &Tx{
		ledger: l,
		trx:    trx,
		held:   held,
	}
	return tx, nil
}

// Associated - address of the associated asset account of an owner for a mint
func Associated(owner address.Address, mint address.Address) (address.Address, error) {
	a, _, err := address.Derive(AssociatedProgram, owner[:], mint[:])
	return a, err
}

// NativeAccount - committed state of a native account
func (l *Ledger) NativeAccount(a address.Address) (*NativeAccount, error) {
	buffer := storage.Pool.Native.Get(a[:])
	if nil == buffer {
		return nil, fault.AccountMissing
	}
	return unpackNative(a[:], buffer), nil
}

// Mint - committed state of a mint
func (l *Ledger) Mint(a address.Address) (*Mint, error) {
	buffer := storage.Pool.Mint.Get(a[:])
	if nil == buffer {
		return nil, fault.AccountMissing
	}
	return unpackMint(a[:], buffer), nil
}

// AssetAccount - committed state of an asset account
func (l *Ledger) AssetAccount(a address.Address) (*AssetAccount, error) {
	buffer := storage.Pool.Asset.Get(a[:])
	if nil == buffer {
		return nil, fault.AccountMissing
	}
	return unpackAsset(a[:], buffer), nil
}

// PackIndex - committed pack index entries from a starting address
func (l *Ledger) PackIndex(start address.Address, count int) ([]storage.Element, error) {
	return storage.Pool.Packs.NewFetchCursor().Seek(start[:]).Fetch(count)
}

// HasOperation - true if an instruction id has been recorded
func (l *Ledger) HasOperation(txId []byte) bool {
	return storage.Pool.Operations.Has(txId)
}

// Airdrop - credit native value without a source account
//
// callers must restrict this to test chains
func (l *Ledger) Airdrop(a address.Address, amount uint64) error {
	if 0 == amount {
		return fault.InvalidAmount
	}

	tx, err := l.Begin(a)
	if nil != err {
		return err
	}
	defer tx.Abort()

	n := tx.native(a)
	if nil == n {
		n = &NativeAccount{Owner: SystemOwner}
	}
	if n.Balance+amount < n.Balance {
		return fault.ArithmeticOverflow
	}
	n.Balance += amount
	tx.putNative(a, n)

	l.log.Infof("airdrop: %d to: %s", amount, a)
	return tx.Commit()
}
