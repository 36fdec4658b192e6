// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring packd services
//
// standard golang RPC services can be used on the client side to
// access these services:
//
//   Instruction.Submit    signed instruction
//   Pool.Get              global pool
//   Vault.Get             entity vault
//   Pack.Get, Pack.List   packs
//   Ledger.Balance        native account
//   Ledger.AssetBalance   associated asset account
//   Ledger.Airdrop        native value on test chains
//   Node.Info             daemon status
package rpc
