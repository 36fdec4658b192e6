// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte ledger address (public key or derived address)
// 4. amount       = big endian uint64 (8 bytes)
// 5. txId         = instruction digest as 32 byte SHA3-256(data)
// 6. *others*     = byte values of various length
//
// Native accounts:
//
//   N ++ address               - native value and program data
//                                data: amount ++ owner address ++ program data
//
// Mints:
//
//   M ++ address               - asset definition
//                                data: authority address ++ decimals(1 byte) ++ supply amount
//
// Asset accounts:
//
//   T ++ address               - holding of a single asset
//                                data: mint address ++ owner address ++ amount
//
// Packs:
//
//   P ++ address               - index of revealed packs
//                                data: packed pack record
//
// Operations:
//
//   O ++ txId                  - log of executed instructions
//                                data: packed signed instruction
//
// Testing:
//   Z ++ key                   - testing data
package storage
