// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

// Proof - the seeds and bump that regenerate a derived address
type Proof struct {
	Seeds [][]byte
	Bump  byte
}

// NewProof - build a proof from a bump and its seeds
func NewProof(bump byte, seeds ...[]byte) Proof {
	return Proof{
		Seeds: seeds,
		Bump:  bump,
	}
}

// Address - recompute the derived address under a program
func (p Proof) Address(program Address) (Address, error) {
	return Create(program, p.Seeds, p.Bump)
}
