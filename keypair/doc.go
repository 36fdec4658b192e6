// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keypair - password protected key files
//
// a key file is JSON holding the base58 account and the ed25519
// private key encrypted with AES-256-CBC under a PBKDF2-SHA512 key
// derived from the password
package keypair
