// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - ledger addresses and program derived addresses
//
// an address is 32 bytes: either an ed25519 public key or a value
// derived from a program identifier, an ordered list of seeds and a
// one byte bump.  A derived address is never a valid curve point so
// no private key can exist for it; the owning program proves
// authority over it by presenting the seeds and bump again.
//
// derivation hash:
//
//   SHA3-256( Varint64(len(seed[0])) ++ seed[0] ++ ... ++ bump ++ program ++ "ProgramDerivedAddress" )
package address
