// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/packd/account"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/instruction"
)

func sign(t *testing.T, record instruction.Instruction, privateKey *account.PrivateKey) instruction.Packed {
	packed, err := instruction.Sign(record, privateKey)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	return packed
}

func TestExecuteScenario(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	admin := f.adminPK.Account()
	userPK := newPrivateKey(t)
	user := userPK.Account()

	records := []instruction.Instruction{
		&instruction.Initialise{Admin: admin, TotalEntities: 10, Nonce: 1},
	}
	nonce := uint64(2)
	for _, e := range testEntities {
		mint := newKey(t)
		f.mints[e] = mint
		records = append(records,
			&instruction.CreateMint{Admin: admin, Mint: mint, Decimals: 6, Nonce: nonce},
			&instruction.MintAndFund{Admin: admin, EntityId: e, Mint: mint, Decimals: 6, TotalSupply: 1000000000, VaultAmount: 940000000, Nonce: nonce + 1},
		)
		nonce += 2
	}
	records = append(records, &instruction.RevealPack{Admin: admin, Entities: testEntities, AmountPerEntity: 1000, Nonce: nonce})

	for i, r := range records {
		packed := sign(t, r, f.adminPK)
		txId, err := f.p.Execute(packed)
		assert.Nil(t, err, "%d: wrong execute error", i)
		assert.Equal(t, packed.Id(), txId, "%d: wrong id", i)
		assert.True(t, f.p.Ledger().HasOperation(txId[:]), "%d: operation not recorded", i)
	}

	claim := sign(t, &instruction.ClaimFromPack{User: user, Entities: testEntities, AmountPerEntity: 400, Nonce: 1}, userPK)
	_, err := f.p.Execute(claim)
	assert.Nil(t, err, "wrong claim error")

	_, err = f.p.Execute(claim)
	assert.Equal(t, fault.TransactionAlreadyExists, err, "wrong replay error")

	over := sign(t, &instruction.ClaimFromPack{User: user, Entities: testEntities, AmountPerEntity: 700, Nonce: 2}, userPK)
	_, err = f.p.Execute(over)
	assert.Equal(t, fault.InsufficientVaultBalance, err, "wrong over draw error")
	assert.False(t, f.p.Ledger().HasOperation(over.Id().Bytes()), "failed operation recorded")

	for _, e := range testEntities {
		assert.Equal(t, uint64(400), f.holding(user.Address(), f.mints[e]), "wrong user amount: %s", e)
		assert.Equal(t, uint64(940000000-1000), f.vault(e), "wrong vault amount: %s", e)
	}
}

func TestExecuteContribute(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	f.initialise()

	contributorPK := newPrivateKey(t)
	contributor := contributorPK.Account()
	err := f.p.Ledger().Airdrop(contributor.Address(), 100)
	assert.Nil(t, err, "wrong airdrop error")

	packed := sign(t, &instruction.Contribute{Contributor: contributor, Amount: 60, Nonce: 7}, contributorPK)
	_, err = f.p.Execute(packed)
	assert.Nil(t, err, "wrong contribute error")

	info, err := f.p.Pool()
	assert.Nil(t, err, "wrong pool error")
	assert.Equal(t, uint64(60), info.Balance, "wrong pool balance")
}

func TestExecuteRejects(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	other := newPrivateKey(t)

	// signed correctly but not by the configured admin
	packed := sign(t, &instruction.Initialise{Admin: other.Account(), TotalEntities: 10, Nonce: 1}, other)
	_, err := f.p.Execute(packed)
	assert.Equal(t, fault.AdminMismatch, err, "wrong admin error")
	assert.False(t, f.p.Ledger().HasOperation(packed.Id().Bytes()), "rejected operation recorded")

	packed = sign(t, &instruction.Initialise{Admin: f.adminPK.Account(), TotalEntities: 10, Nonce: 1}, f.adminPK)

	extended := append(append(instruction.Packed{}, packed...), 0x00)
	_, err = f.p.Execute(extended)
	assert.Equal(t, fault.TrailingData, err, "wrong trailing data error")

	tampered := append(instruction.Packed{}, packed...)
	tampered[len(tampered)-1] ^= 0x01
	_, err = f.p.Execute(tampered)
	assert.Equal(t, fault.InvalidSignature, err, "wrong tampered error")

	_, err = f.p.Execute(packed)
	assert.Nil(t, err, "wrong initialise error")
}
