// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/packd/account"
	"github.com/bitmark-inc/packd/fault"
)

// Sign - sign a record with a private key and return the packed form
//
// the record's signature field is replaced
func Sign(record Instruction, privateKey *account.PrivateKey) (Packed, error) {
	signer := privateKey.Account()

	record.setSignature(nil)
	message, err := record.Pack(signer)
	if nil != err && fault.InvalidSignature != err {
		return nil, err
	}

	record.setSignature(privateKey.Sign(message))
	return record.Pack(signer)
}
