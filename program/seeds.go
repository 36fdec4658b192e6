// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/packd/address"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/instruction"
)

// Identifier - the program under which all its addresses are derived
var Identifier = address.ProgramIdentifier("packd pack program")

// MaximumIdentifierLength - longest entity identifier in bytes
const MaximumIdentifierLength = instruction.MaximumIdentifierLength

var (
	poolSeed  = []byte("global_pack_pool")
	vaultSeed = []byte("token_vault")
	packSeed  = []byte("pack")
)

// PoolAddress - derived address of the global pool
func PoolAddress() (address.Address, byte, error) {
	return address.Derive(Identifier, poolSeed)
}

// VaultAddress - derived address of an entity vault
func VaultAddress(pool address.Address, entityId string) (address.Address, byte, error) {
	if err := checkIdentifier(entityId); nil != err {
		return address.Address{}, 0, err
	}
	return address.Derive(Identifier, vaultSeed, []byte(entityId), pool[:])
}

// PackAddress - derived address of a pack, the entity order is significant
func PackAddress(entities [instruction.EntityCount]string) (address.Address, byte, error) {
	if err := checkIdentifiers(entities); nil != err {
		return address.Address{}, 0, err
	}
	return address.Derive(Identifier, packSeeds(entities)...)
}

func poolProof(bump byte) address.Proof {
	return address.NewProof(bump, poolSeed)
}

func packProof(record *PackState) address.Proof {
	return address.NewProof(record.Bump, packSeeds(record.Entities)...)
}

func packSeeds(entities [instruction.EntityCount]string) [][]byte {
	seeds := make([][]byte, 0, 1+len(entities))
	seeds = append(seeds, packSeed)
	for _, e := range entities {
		seeds = append(seeds, []byte(e))
	}
	return seeds
}

func checkIdentifier(id string) error {
	if len(id) > MaximumIdentifierLength {
		return fault.InvalidIdentifierLength
	}
	return nil
}

// each entity may appear only once in a pack
func checkIdentifiers(entities [instruction.EntityCount]string) error {
	for i, e := range entities {
		if err := checkIdentifier(e); nil != err {
			return err
		}
		for _, previous := range entities[:i] {
			if previous == e {
				return fault.DuplicateEntity
			}
		}
	}
	return nil
}
