// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - native accounts, mints and asset accounts
//
// every change runs inside a Tx that holds exclusive locks on the
// addresses it will write and one storage transaction; either all
// of its writes are committed or none are.
//
// native account:  balance ++ owner ++ program data
//   owner is the program allowed to replace the data, the zero
//   address for plain key accounts
//
// mint:            authority ++ decimals ++ supply
//
// asset account:   mint ++ owner ++ amount
//   owner is the address that must authorise a debit
//
// an Authority is either a key that the caller has already verified
// (SignedBy) or a derivation proof (DerivedFrom) that the ledger
// recomputes under the program identifier it was created with.
package ledger
