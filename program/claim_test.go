// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/instruction"
)

func TestClaimFromPack(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	pack := f.revealed(1000)
	user := newKey(t)

	err := f.p.ClaimFromPack(user, testEntities, 400)
	assert.Nil(t, err, "wrong claim error")

	for _, e := range testEntities {
		assert.Equal(t, uint64(400), f.holding(user, f.mints[e]), "wrong user amount: %s", e)
		assert.Equal(t, uint64(600), f.holding(pack, f.mints[e]), "wrong sub-account amount: %s", e)
	}

	err = f.p.ClaimFromPack(user, testEntities, 700)
	assert.Equal(t, fault.InsufficientVaultBalance, err, "wrong over draw error")

	for _, e := range testEntities {
		assert.Equal(t, uint64(400), f.holding(user, f.mints[e]), "over draw changed user: %s", e)
		assert.Equal(t, uint64(600), f.holding(pack, f.mints[e]), "over draw changed sub-account: %s", e)
	}
}

// claims are not tracked so any caller can drain a pack
func TestClaimRepeated(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	pack := f.revealed(1000)
	first := newKey(t)
	second := newKey(t)

	for i := 0; i < 2; i += 1 {
		err := f.p.ClaimFromPack(first, testEntities, 300)
		assert.Nil(t, err, "wrong repeat claim error")
	}
	err := f.p.ClaimFromPack(second, testEntities, 400)
	assert.Nil(t, err, "wrong second user claim error")

	for _, e := range testEntities {
		assert.Equal(t, uint64(600), f.holding(first, f.mints[e]), "wrong first user amount: %s", e)
		assert.Equal(t, uint64(400), f.holding(second, f.mints[e]), "wrong second user amount: %s", e)
		assert.Equal(t, uint64(0), f.holding(pack, f.mints[e]), "pack not drained: %s", e)
	}

	err = f.p.ClaimFromPack(second, testEntities, 1)
	assert.Equal(t, fault.InsufficientVaultBalance, err, "wrong drained error")
}

func TestClaimUnknownPack(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	pack := f.revealed(1000)
	user := newKey(t)

	swapped := [instruction.EntityCount]string{"DOGE", "PEPE", "WIF", "BONK"}
	err := f.p.ClaimFromPack(user, swapped, 10)
	assert.Equal(t, fault.InvalidPackDerivation, err, "wrong unknown pack error")

	for _, e := range testEntities {
		assert.Equal(t, uint64(1000), f.holding(pack, f.mints[e]), "sub-account touched: %s", e)
	}
}

func TestClaimIdentifierBound(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	pack := f.revealed(1000)
	user := newKey(t)

	long := [instruction.EntityCount]string{"PEPE_PEPE_PEPE_PE", "DOGE", "WIF", "BONK"}
	err := f.p.ClaimFromPack(user, long, 10)
	assert.Equal(t, fault.InvalidIdentifierLength, err, "wrong identifier error")

	err = f.p.ClaimFromPack(user, testEntities, 0)
	assert.Equal(t, fault.InvalidAmount, err, "wrong zero amount error")

	for _, e := range testEntities {
		assert.Equal(t, uint64(1000), f.holding(pack, f.mints[e]), "sub-account touched: %s", e)
		assert.Equal(t, uint64(0), f.holding(user, f.mints[e]), "user credited: %s", e)
	}
}
