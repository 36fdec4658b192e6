// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/program"
)

func TestMintAndFund(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	f.initialise()
	mint := f.fund("PEPE", 1000000000, 940000000)

	pool, _, err := program.PoolAddress()
	assert.Nil(t, err, "wrong pool address error")
	vault, _, err := program.VaultAddress(pool, "PEPE")
	assert.Nil(t, err, "wrong vault address error")

	info, err := f.p.Vault("PEPE")
	assert.Nil(t, err, "wrong vault error")
	assert.Equal(t, vault, info.Address, "wrong vault address")
	assert.Equal(t, mint, info.Mint, "wrong vault mint")
	assert.Equal(t, pool, info.Owner, "vault not owned by pool")
	assert.Equal(t, uint64(940000000), info.Amount, "wrong vault amount")

	assert.Equal(t, uint64(60000000), f.holding(f.admin, mint), "wrong admin holding")

	m, err := f.p.Ledger().Mint(mint)
	assert.Nil(t, err, "wrong mint error")
	assert.Equal(t, uint64(1000000000), m.Supply, "wrong supply")
}

func TestMintAndFundExistingVault(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	f.initialise()
	mint := f.fund("PEPE", 1000, 400)

	err := f.p.MintAndFund(f.admin, "PEPE", mint, 6, 500, 100)
	assert.Nil(t, err, "wrong second fund error")

	assert.Equal(t, uint64(500), f.vault("PEPE"), "wrong vault amount")
	assert.Equal(t, uint64(1000), f.holding(f.admin, mint), "wrong admin holding")
}

func TestMintAndFundChecks(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	mint := newKey(t)

	err := f.p.MintAndFund(newKey(t), "PEPE", mint, 6, 1000, 10)
	assert.Equal(t, fault.AdminMismatch, err, "wrong admin error")

	err = f.p.MintAndFund(f.admin, "SEVENTEEN_LETTERS", mint, 6, 1000, 10)
	assert.Equal(t, fault.InvalidIdentifierLength, err, "wrong identifier error")

	err = f.p.MintAndFund(f.admin, "PEPE", mint, 6, 1000, 1001)
	assert.Equal(t, fault.VaultAmountExceedsSupply, err, "wrong excess error")

	err = f.p.MintAndFund(f.admin, "PEPE", mint, 6, 1000, 10)
	assert.Equal(t, fault.PoolNotInitialised, err, "wrong pool error")

	f.initialise()

	err = f.p.MintAndFund(f.admin, "PEPE", mint, 6, 1000, 10)
	assert.Equal(t, fault.AccountMissing, err, "wrong missing mint error")
}

// a failing transfer must also undo the mint
func TestMintAndFundAtomic(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	f.initialise()

	mint := newKey(t)
	err := f.p.CreateEntityMint(f.admin, mint, 6)
	assert.Nil(t, err, "wrong create mint error")

	err = f.p.MintAndFund(f.admin, "PEPE", mint, 9, 1000000000, 940000000)
	assert.Equal(t, fault.DecimalsMismatch, err, "wrong decimals error")

	m, err := f.p.Ledger().Mint(mint)
	assert.Nil(t, err, "wrong mint error")
	assert.Equal(t, uint64(0), m.Supply, "supply minted by failed operation")

	assert.Equal(t, uint64(0), f.holding(f.admin, mint), "admin credited by failed operation")

	_, err = f.p.Vault("PEPE")
	assert.Equal(t, fault.AccountMissing, err, "vault created by failed operation")
}

func TestCreateEntityMint(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	mint := newKey(t)

	err := f.p.CreateEntityMint(newKey(t), mint, 6)
	assert.Equal(t, fault.AdminMismatch, err, "wrong admin error")

	err = f.p.CreateEntityMint(f.admin, mint, 6)
	assert.Nil(t, err, "wrong create mint error")

	err = f.p.CreateEntityMint(f.admin, mint, 6)
	assert.Equal(t, fault.AccountExists, err, "wrong duplicate mint error")

	m, err := f.p.Ledger().Mint(mint)
	assert.Nil(t, err, "wrong mint error")
	assert.Equal(t, f.admin, m.Authority, "wrong mint authority")
}
