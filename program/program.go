// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/packd/address"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/ledger"
)

// Program - the pack program bound to one ledger and admin
type Program struct {
	log     *logger.L
	ledger  *ledger.Ledger
	admin   address.Address
	testnet bool
}

// New - create the program over an initialised storage
func New(log *logger.L, admin address.Address, testnet bool) *Program {
	return &Program{
		log:     log,
		ledger:  ledger.New(logger.New("ledger"), Identifier),
		admin:   admin,
		testnet: testnet,
	}
}

// Ledger - the underlying ledger for read only queries
func (p *Program) Ledger() *ledger.Ledger {
	return p.ledger
}

// Admin - the configured admin address
func (p *Program) Admin() address.Address {
	return p.admin
}

// IsTesting - true when running on a test chain
func (p *Program) IsTesting() bool {
	return p.testnet
}

func (p *Program) checkAdmin(admin address.Address) error {
	if p.admin != admin {
		return fault.AdminMismatch
	}
	return nil
}

// only accounts owned by this program hold its state, a plain
// account at the same address just carries value
func isProgramAccount(tx *ledger.Tx, a address.Address) bool {
	account, err := tx.Account(a)
	return nil == err && Identifier == account.Owner
}

// operation - a signed instruction recorded with its changes
type operation struct {
	txId   []byte
	packed []byte
	signer address.Address
}

// run f inside one ledger transaction holding the given addresses
//
// nothing is written unless f succeeds
func (p *Program) run(op *operation, addresses []address.Address, f func(tx *ledger.Tx) error) error {
	if nil != op {
		addresses = append(addresses, op.signer)
	}

	tx, err := p.ledger.Begin(addresses...)
	if nil != err {
		return err
	}
	defer tx.Abort()

	if nil != op {
		err = tx.Record(op.txId, op.packed)
		if nil != err {
			return err
		}
	}

	err = f(tx)
	if nil != err {
		return err
	}
	return tx.Commit()
}

// a ledger shortfall on a program owned account
func vaultShortfall(err error) error {
	if fault.InsufficientBalance == err {
		return fault.InsufficientVaultBalance
	}
	return err
}
