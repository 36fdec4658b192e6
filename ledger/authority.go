// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/packd/address"
	"github.com/bitmark-inc/packd/fault"
)

// Authority - proof of the right to act for an address
type Authority interface {
	authorises(program address.Address, target address.Address) error
}

type signedBy struct {
	signer address.Address
}

// SignedBy - a key whose signature the caller has already verified
func SignedBy(signer address.Address) Authority {
	return signedBy{signer: signer}
}

func (s signedBy) authorises(_ address.Address, target address.Address) error {
	if s.signer != target {
		return fault.InvalidAuthority
	}
	return nil
}

type derivedFrom struct {
	proof address.Proof
}

// DerivedFrom - seeds and bump of a program derived address
func DerivedFrom(proof address.Proof) Authority {
	return derivedFrom{proof: proof}
}

func (d derivedFrom) authorises(program address.Address, target address.Address) error {
	a, err := d.proof.Address(program)
	if nil != err || a != target {
		return fault.InvalidAuthority
	}
	return nil
}
