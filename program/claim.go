// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/packd/address"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/instruction"
	"github.com/bitmark-inc/packd/ledger"
)

// ClaimFromPack - move an amount of each pack holding to the user
//
// any caller may claim; there is no entitlement or claim tracking
func (p *Program) ClaimFromPack(user address.Address, entities [instruction.EntityCount]string, amountPerEntity uint64) error {
	return p.claimFromPack(nil, user, entities, amountPerEntity)
}

func (p *Program) claimFromPack(op *operation, user address.Address, entities [instruction.EntityCount]string, amountPerEntity uint64) error {
	pack, _, err := PackAddress(entities)
	if nil != err {
		return err
	}
	if 0 == amountPerEntity {
		return fault.InvalidAmount
	}

	record, err := p.packState(pack)
	if nil != err {
		return err
	}
	if record.Entities != entities {
		return fault.InvalidPackDerivation
	}

	pool, _, err := PoolAddress()
	if nil != err {
		return err
	}
	slots, err := p.slots(pool, pack, record.Entities)
	if nil != err {
		return err
	}

	lock := []address.Address{user}
	targets := [instruction.EntityCount]address.Address{}
	for i, s := range slots {
		if !s.found {
			return fault.AccountMissing
		}
		targets[i], err = ledger.Associated(user, s.mint)
		if nil != err {
			return err
		}
		lock = append(lock, s.sub, targets[i])
	}

	packAuthority := ledger.DerivedFrom(packProof(record))

	return p.run(op, lock, func(tx *ledger.Tx) error {
		for i, s := range slots {
			m, err := tx.Mint(s.mint)
			if nil != err {
				return err
			}
			_, err = tx.EnsureAssociated(user, s.mint)
			if nil != err {
				return err
			}
			err = tx.TransferAsset(s.sub, targets[i], s.mint, packAuthority, amountPerEntity, m.Decimals)
			if nil != err {
				return vaultShortfall(err)
			}
		}

		p.log.Infof("claim from pack: %s  user: %s  amount: %d", pack, user, amountPerEntity)
		return nil
	})
}
