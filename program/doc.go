// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package program - pooled contributions, entity vaults and packs
//
// value flow:
//
//   contributors -> global pool
//   admin mint and fund -> entity vault   (owner: pool address)
//   admin reveal -> pack sub-accounts     (owner: pack address)
//   user claim -> user associated accounts
//
// derived addresses (all under Identifier):
//
//   pool   ["global_pack_pool"]
//   vault  ["token_vault", entity id, pool address]
//   pack   ["pack", entity A, entity B, entity C, entity D]
//
// a pack sub-account is the associated asset account of the pack
// address for the entity's mint; the mint of an entity is the mint of
// its vault.
//
// vault and pack debits are authorised by proofs rebuilt from the
// stored pool and pack records, never from caller supplied bumps.
//
// claims are not tracked per user: any signer may draw from a pack
// until its sub-account balances are exhausted.
package program
