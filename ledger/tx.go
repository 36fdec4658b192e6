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

// Tx - one atomic unit of ledger changes
type Tx struct {
	ledger *Ledger
	trx    storage.Transaction
	held   []address.Address
	done   bool
}

// Commit - write all changes and release the locks
func (tx *Tx) Commit() error {
	if tx.done {
		return fault.TransactionNotInUse
	}
	err := tx.trx.Commit()
	tx.finish()
	return err
}

// Abort - discard all changes and release the locks
//
// safe to call after Commit
func (tx *Tx) Abort() {
	if tx.done {
		return
	}
	tx.trx.Abort()
	tx.finish()
}

func (tx *Tx) finish() {
	tx.done = true
	tx.ledger.locks.release(tx.held)
}

// all writes must be to addresses locked by Begin
func (tx *Tx) mustHold(a address.Address) {
	for _, h := range tx.held {
		if h == a {
			return
		}
	}
	logger.Panicf("ledger: write to unlocked address: %s", a)
}

func (tx *Tx) native(a address.Address) *NativeAccount {
	buffer := tx.trx.Get(storage.Pool.Native, a[:])
	if nil == buffer {
		return nil
	}
	return unpackNative(a[:], buffer)
}

func (tx *Tx) putNative(a address.Address, n *NativeAccount) {
	tx.mustHold(a)
	tx.trx.Put(storage.Pool.Native, a[:], n.pack())
}

func (tx *Tx) mint(a address.Address) *Mint {
	buffer := tx.trx.Get(storage.Pool.Mint, a[:])
	if nil == buffer {
		return nil
	}
	return unpackMint(a[:], buffer)
}

func (tx *Tx) putMint(a address.Address, m *Mint) {
	tx.mustHold(a)
	tx.trx.Put(storage.Pool.Mint, a[:], m.pack())
}

func (tx *Tx) asset(a address.Address) *AssetAccount {
	buffer := tx.trx.Get(storage.Pool.Asset, a[:])
	if nil == buffer {
		return nil
	}
	return unpackAsset(a[:], buffer)
}

func (tx *Tx) putAsset(a address.Address, account *AssetAccount) {
	tx.mustHold(a)
	tx.trx.Put(storage.Pool.Asset, a[:], account.pack())
}

// CreateAccount - create a native account with a zero filled data area
//
// the authority must prove the right to the new address.  A plain
// account that only holds value (system owner, no data) is taken over
// and keeps its balance.
func (tx *Tx) CreateAccount(a address.Address, size int, owner address.Address, authority Authority) error {
	if err := authority.authorises(tx.ledger.program, a); nil != err {
		return err
	}
	if size < 0 {
		return fault.InvalidAccountData
	}

	balance := uint64(0)
	if existing := tx.native(a); nil != existing {
		if SystemOwner != existing.Owner || 0 != len(existing.Data) {
			return fault.AccountExists
		}
		balance = existing.Balance
	}

	n := &NativeAccount{
		Balance: balance,
		Owner:   owner,
		Data:    make([]byte, size),
	}
	tx.putNative(a, n)

	tx.ledger.log.Debugf("create account: %s  size: %d  owner: %s  balance: %d", a, size, owner, balance)
	return nil
}

// Account - current state of a native account including pending changes
func (tx *Tx) Account(a address.Address) (*NativeAccount, error) {
	n := tx.native(a)
	if nil == n {
		return nil, fault.AccountMissing
	}
	return n, nil
}

// SetData - replace the data of an account owned by the ledger's program
//
// the data must keep the size given at creation
func (tx *Tx) SetData(a address.Address, data []byte) error {
	n := tx.native(a)
	if nil == n {
		return fault.AccountMissing
	}
	if tx.ledger.program != n.Owner {
		return fault.NotProgramAccount
	}
	if len(data) != len(n.Data) {
		return fault.InvalidAccountData
	}
	n.Data = data
	tx.putNative(a, n)
	return nil
}

// TransferValue - move native value between accounts
//
// the destination is created if absent
func (tx *Tx) TransferValue(from address.Address, to address.Address, authority Authority, amount uint64) error {
	if err := authority.authorises(tx.ledger.program, from); nil != err {
		return err
	}

	source := tx.native(from)
	if nil == source {
		return fault.AccountMissing
	}
	if source.Balance < amount {
		return fault.InsufficientBalance
	}
	if from == to {
		return nil
	}

	destination := tx.native(to)
	if nil == destination {
		destination = &NativeAccount{Owner: SystemOwner}
	}
	if destination.Balance+amount < destination.Balance {
		return fault.ArithmeticOverflow
	}

	source.Balance -= amount
	destination.Balance += amount
	tx.putNative(from, source)
	tx.putNative(to, destination)

	tx.ledger.log.Debugf("transfer value: %d from: %s to: %s", amount, from, to)
	return nil
}

// CreateMint - define a new asset
func (tx *Tx) CreateMint(mint address.Address, authority address.Address, decimals uint8) error {
	if tx.trx.Has(storage.Pool.Mint, mint[:]) {
		return fault.AccountExists
	}
	m := &Mint{
		Authority: authority,
		Decimals:  decimals,
		Supply:    0,
	}
	tx.putMint(mint, m)

	tx.ledger.log.Debugf("create mint: %s  authority: %s  decimals: %d", mint, authority, decimals)
	return nil
}

// Mint - current state of a mint including pending changes
func (tx *Tx) Mint(mint address.Address) (*Mint, error) {
	m := tx.mint(mint)
	if nil == m {
		return nil, fault.AccountMissing
	}
	return m, nil
}

// CreateAssetAccount - create an empty holding of an existing mint
func (tx *Tx) CreateAssetAccount(a address.Address, mint address.Address, owner address.Address) error {
	if tx.trx.Has(storage.Pool.Asset, a[:]) {
		return fault.AccountExists
	}
	if !tx.trx.Has(storage.Pool.Mint, mint[:]) {
		return fault.AccountMissing
	}
	account := &AssetAccount{
		Mint:   mint,
		Owner:  owner,
		Amount: 0,
	}
	tx.putAsset(a, account)

	tx.ledger.log.Debugf("create asset account: %s  mint: %s  owner: %s", a, mint, owner)
	return nil
}

// AssetAccount - current state of an asset account including pending changes
func (tx *Tx) AssetAccount(a address.Address) (*AssetAccount, error) {
	account := tx.asset(a)
	if nil == account {
		return nil, fault.AccountMissing
	}
	return account, nil
}

// EnsureAssociated - the associated asset account, created if absent
func (tx *Tx) EnsureAssociated(owner address.Address, mint address.Address) (address.Address, error) {
	a, err := Associated(owner, mint)
	if nil != err {
		return address.Address{}, err
	}

	account := tx.asset(a)
	if nil != account {
		if account.Mint != mint {
			return address.Address{}, fault.MintMismatch
		}
		return a, nil
	}

	err = tx.CreateAssetAccount(a, mint, owner)
	if nil != err {
		return address.Address{}, err
	}
	return a, nil
}

// TransferAsset - move an amount of one asset between accounts
//
// decimals must match the mint so a caller cannot misread the amount
func (tx *Tx) TransferAsset(from address.Address, to address.Address, mint address.Address, authority Authority, amount uint64, decimals uint8) error {
	source := tx.asset(from)
	if nil == source {
		return fault.AccountMissing
	}
	if source.Mint != mint {
		return fault.MintMismatch
	}

	m := tx.mint(mint)
	if nil == m {
		return fault.AccountMissing
	}
	if m.Decimals != decimals {
		return fault.DecimalsMismatch
	}

	if err := authority.authorises(tx.ledger.program, source.Owner); nil != err {
		return err
	}

	destination := tx.asset(to)
	if nil == destination {
		return fault.AccountMissing
	}
	if destination.Mint != mint {
		return fault.MintMismatch
	}

	if source.Amount < amount {
		return fault.InsufficientBalance
	}
	if from == to {
		return nil
	}
	if destination.Amount+amount < destination.Amount {
		return fault.ArithmeticOverflow
	}

	source.Amount -= amount
	destination.Amount += amount
	tx.putAsset(from, source)
	tx.putAsset(to, destination)

	tx.ledger.log.Debugf("transfer asset: %d mint: %s from: %s to: %s", amount, mint, from, to)
	return nil
}

// MintAsset - create new units of an asset in an account
func (tx *Tx) MintAsset(mint address.Address, to address.Address, authority Authority, amount uint64) error {
	m := tx.mint(mint)
	if nil == m {
		return fault.AccountMissing
	}
	if err := authority.authorises(tx.ledger.program, m.Authority); nil != err {
		return err
	}

	destination := tx.asset(to)
	if nil == destination {
		return fault.AccountMissing
	}
	if destination.Mint != mint {
		return fault.MintMismatch
	}

	if m.Supply+amount < m.Supply {
		return fault.ArithmeticOverflow
	}
	if destination.Amount+amount < destination.Amount {
		return fault.ArithmeticOverflow
	}

	m.Supply += amount
	destination.Amount += amount
	tx.putMint(mint, m)
	tx.putAsset(to, destination)

	tx.ledger.log.Debugf("mint asset: %d mint: %s to: %s", amount, mint, to)
	return nil
}

// Record - log an executed instruction
//
// a replayed instruction has the same id and is rejected
func (tx *Tx) Record(txId []byte, packed []byte) error {
	if tx.trx.Has(storage.Pool.Operations, txId) {
		return fault.TransactionAlreadyExists
	}
	tx.trx.Put(storage.Pool.Operations, txId, packed)
	return nil
}

// PutPackIndex - add an entry to the pack index
func (tx *Tx) PutPackIndex(a address.Address, record []byte) {
	tx.mustHold(a)
	tx.trx.Put(storage.Pool.Packs, a[:], record)
}
