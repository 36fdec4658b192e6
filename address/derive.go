// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/util"
)

// limits on seeds
const (
	MaximumSeedLength = 32
	MaximumSeeds      = 16
)

const derivedMarker = "ProgramDerivedAddress"

// Create - compute the derived address for a specific bump
//
// fails with InvalidBump if the hash is a point on the ed25519 curve
func Create(program Address, seeds [][]byte, bump byte) (Address, error) {
	if len(seeds) > MaximumSeeds {
		return Address{}, fault.TooManySeeds
	}

	h := sha3.New256()
	for _, seed := range seeds {
		if len(seed) > MaximumSeedLength {
			return Address{}, fault.SeedTooLong
		}
		h.Write(util.AppendBytes(nil, seed))
	}
	h.Write([]byte{bump})
	h.Write(program[:])
	h.Write([]byte(derivedMarker))

	a := Address{}
	copy(a[:], h.Sum(nil))

	if IsOnCurve(a) {
		return Address{}, fault.InvalidBump
	}
	return a, nil
}

// Derive - find the canonical derived address
//
// bumps are tried from 255 down to 0, the first one giving an off
// curve address is returned with the address
func Derive(program Address, seeds ...[]byte) (Address, byte, error) {
	for bump := 255; bump >= 0; bump -= 1 {
		a, err := Create(program, seeds, byte(bump))
		if nil == err {
			return a, byte(bump), nil
		}
		if fault.InvalidBump != err {
			return Address{}, 0, err
		}
	}
	return Address{}, 0, fault.InvalidBump
}

// IsOnCurve - true if the address decodes as an ed25519 point
func IsOnCurve(a Address) bool {
	_, err := new(edwards25519.Point).SetBytes(a[:])
	return nil == err
}

// ProgramIdentifier - fixed identifier for a named program
func ProgramIdentifier(name string) Address {
	return Address(sha3.Sum256([]byte(name)))
}
