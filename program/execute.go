// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/instruction"
)

// Execute - verify a signed instruction and apply it
//
// the instruction id is recorded in the same transaction as its
// changes so a replay is rejected
func (p *Program) Execute(packed instruction.Packed) (instruction.Identifier, error) {
	record, n, err := packed.Unpack(p.testnet)
	if nil != err {
		return instruction.Identifier{}, err
	}
	if n != len(packed) {
		return instruction.Identifier{}, fault.TrailingData
	}

	txId := packed.Id()
	op := &operation{
		txId:   txId[:],
		packed: packed,
		signer: record.GetSigner().Address(),
	}

	p.log.Debugf("execute: type: %d  id: %s", packed.Type(), txId)

	switch tx := record.(type) {

	case *instruction.Initialise:
		err = p.initialise(op, op.signer, tx.TotalEntities)

	case *instruction.Contribute:
		err = p.contribute(op, op.signer, tx.Amount)

	case *instruction.CreateMint:
		err = p.createMint(op, op.signer, tx.Mint, tx.Decimals)

	case *instruction.MintAndFund:
		err = p.mintAndFund(op, op.signer, tx.EntityId, tx.Mint, tx.Decimals, tx.TotalSupply, tx.VaultAmount)

	case *instruction.RevealPack:
		_, err = p.revealPack(op, op.signer, tx.Entities, tx.AmountPerEntity)

	case *instruction.ClaimFromPack:
		err = p.claimFromPack(op, op.signer, tx.Entities, tx.AmountPerEntity)

	default:
		err = fault.UnknownRecordType
	}

	if nil != err {
		return instruction.Identifier{}, err
	}
	return txId, nil
}
