// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/packd/address"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/ledger"
)

// PoolInfo - committed state of the global pool
type PoolInfo struct {
	Address       address.Address `json:"address"`
	Bump          uint8           `json:"bump"`
	TotalEntities uint8           `json:"totalEntities"`
	Balance       uint64          `json:"balance,string"`
}

// Initialise - create the global pool
func (p *Program) Initialise(admin address.Address, totalEntities uint8) error {
	return p.initialise(nil, admin, totalEntities)
}

func (p *Program) initialise(op *operation, admin address.Address, totalEntities uint8) error {
	if err := p.checkAdmin(admin); nil != err {
		return err
	}

	pool, bump, err := PoolAddress()
	if nil != err {
		return err
	}

	return p.run(op, []address.Address{pool}, func(tx *ledger.Tx) error {
		if isProgramAccount(tx, pool) {
			return fault.AlreadyInitialised
		}

		record := &PoolState{
			Bump:          bump,
			TotalEntities: totalEntities,
		}
		data := record.Pack()
		err := tx.CreateAccount(pool, len(data), Identifier, ledger.DerivedFrom(poolProof(bump)))
		if nil != err {
			return err
		}
		err = tx.SetData(pool, data)
		if nil != err {
			return err
		}

		p.log.Infof("initialise pool: %s  bump: %d  entities: %d", pool, bump, totalEntities)
		return nil
	})
}

// ContributeToPool - move native value from a contributor to the pool
func (p *Program) ContributeToPool(contributor address.Address, amount uint64) error {
	return p.contribute(nil, contributor, amount)
}

func (p *Program) contribute(op *operation, contributor address.Address, amount uint64) error {
	if 0 == amount {
		return fault.InvalidAmount
	}

	pool, _, err := PoolAddress()
	if nil != err {
		return err
	}

	return p.run(op, []address.Address{pool, contributor}, func(tx *ledger.Tx) error {
		if !isProgramAccount(tx, pool) {
			return fault.PoolNotInitialised
		}

		err := tx.TransferValue(contributor, pool, ledger.SignedBy(contributor), amount)
		if nil != err {
			return err
		}

		p.log.Infof("contribute: %d  from: %s", amount, contributor)
		return nil
	})
}

// Pool - the pool record and its native balance
func (p *Program) Pool() (*PoolInfo, error) {
	pool, _, err := PoolAddress()
	if nil != err {
		return nil, err
	}
	record, balance, err := p.poolState(pool)
	if nil != err {
		return nil, err
	}

	info := &PoolInfo{
		Address:       pool,
		Bump:          record.Bump,
		TotalEntities: record.TotalEntities,
		Balance:       balance,
	}
	return info, nil
}

// committed pool record
func (p *Program) poolState(pool address.Address) (*PoolState, uint64, error) {
	account, err := p.ledger.NativeAccount(pool)
	if nil != err || Identifier != account.Owner {
		return nil, 0, fault.PoolNotInitialised
	}
	record, err := UnpackPoolState(account.Data)
	if nil != err {
		return nil, 0, err
	}
	return record, account.Balance, nil
}
