// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"
	"encoding/hex"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/packd/fault"
)

// Length - number of bytes in an address
const Length = 32

// Address - a ledger address
type Address [Length]byte

// New - create an address from a byte slice
func New(buffer []byte) (Address, error) {
	a := Address{}
	if Length != len(buffer) {
		return a, fault.CannotDecodeAddress
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode a base58 address
func FromBase58(s string) (Address, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Address{}, fault.CannotDecodeAddress
	}
	return New(buffer)
}

// Bytes - copy of the address bytes
func (a Address) Bytes() []byte {
	return append([]byte{}, a[:]...)
}

// IsZero - true if all bytes are zero
func (a Address) IsZero() bool {
	return a == Address{}
}

// Compare - byte ordering of two addresses
func (a Address) Compare(b Address) int {
	return bytes.Compare(a[:], b[:])
}

// String - base58 text form
func (a Address) String() string {
	return base58.Encode(a[:])
}

// GoString - for the %#v format
func (a Address) GoString() string {
	return "<address:" + hex.EncodeToString(a[:]) + ">"
}

// MarshalText - convert an address to its base58 JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base58 text to an address
func (a *Address) UnmarshalText(s []byte) error {
	b, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = b
	return nil
}
