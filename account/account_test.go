// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/packd/account"
	"github.com/bitmark-inc/packd/fault"
)

// Test account functionality

type accountTest struct {
	testnet       bool
	zero          bool
	publicKey     []byte
	base58Account string
}

// Valid account
var testAccount = []accountTest{
	{
		testnet:       false,
		zero:          false,
		publicKey:     decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e"),
		base58Account: "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
	},
	{
		testnet:       true,
		zero:          false,
		publicKey:     decodeHex("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db"),
		base58Account: "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2",
	},
	{
		testnet:       true,
		zero:          false,
		publicKey:     decodeHex("cb6ff605f79deba3deb0c5122e40359a258481c151dffc176a2da5e8bc87cd2e"),
		base58Account: "fUjtNvmUJn7yJ7PVP7NT2FZbKDrudFxLVBHkwLJFgKWmGsPNVi",
	},
	{
		testnet:       true,
		zero:          true,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "dw9MQXcC5rJZb3QE1nz86PiQAheMP1dx9M3dr52tT8NNs14m33",
	},
	{
		testnet:       false,
		zero:          true,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "a3ezwdYVEVrHwszQrYzDTCAZwUD3yKtNsCq9YhEu97bPaGAKy1",
	},
}

type invalid struct {
	str string
	err error
}

// Invalid account
var testInvalidAccountFromBase58 = []invalid{
	{"3gLJjLSociTmf4kgL3ztUK;tgADFvg9yjXt1jFbEx9KgpEEAFn", fault.CannotDecodeAccount}, // invalid base58 string
	{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLDj", fault.ChecksumMismatch},    // checksum mismatch
	{"WjbRFkA9dhmMKnKTuufZ1sVD4E4H1NRnsmwjMKNHHRSCvDm5bXPV", fault.InvalidKeyType},    // undefined key algorithm
	{"YqVxD4vazrrnxnLH2MzCHJedPPz1VKHnKbVfya39nF96ABAYes", fault.NotAPublicKey},       // private key
	{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLC", fault.NotAPublicKey},        // truncated
	{"nF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj", fault.NotAPublicKey},        // truncated
}

// build accounts from raw bytes and check the encoding
func TestValid(t *testing.T) {

loop:
	for index, test := range testAccount {
		testnet := 0x00
		if test.testnet {
			testnet = 0x02
		}

		buffer := []byte{byte(account.ED25519<<4 | 0x01 | testnet)}
		buffer = append(buffer, test.publicKey...)
		acc, err := account.FromBytes(buffer)
		if nil != err {
			t.Errorf("%d: Create account from bytes failed: %s", index, err)
			continue loop
		}

		if !bytes.Equal(buffer, acc.Bytes()) {
			t.Errorf("%d: account bytes: %x does not match: %x", index, acc.Bytes(), buffer)
		}
		if acc.IsZero() != test.zero {
			t.Errorf("%d: account.IsZero() returned: %t", index, acc.IsZero())
		}
		if acc.String() != test.base58Account {
			t.Errorf("%d: to base58: got: %s  expected %s", index, acc, test.base58Account)
		}
	}
}

// From valid base58 string to account
func TestValidBase58(t *testing.T) {
loop:
	for index, test := range testAccount {
		acc, err := account.FromBase58(test.base58Account)
		if nil != err {
			t.Errorf("%d: from base58 error: %s", index, err)
			continue loop
		}
		if acc.IsTesting() != test.testnet {
			t.Errorf("%d: from base58 testnet: %t  expected: %t", index, acc.IsTesting(), test.testnet)
		}
		if acc.KeyType() != account.ED25519 {
			t.Errorf("%d: from base58 type: %d  expected: %d", index, acc.KeyType(), account.ED25519)
		}
		if !bytes.Equal(acc.PublicKeyBytes(), test.publicKey) {
			t.Errorf("%d: from base58 pubkey: %x  expected %x", index, acc.PublicKeyBytes(), test.publicKey)
		}
		if !bytes.Equal(acc.Address().Bytes(), test.publicKey) {
			t.Errorf("%d: address: %x  expected %x", index, acc.Address().Bytes(), test.publicKey)
		}

		// test unmarshal JSON
		j := `"` + test.base58Account + `"`
		var a account.Account
		err = json.Unmarshal([]byte(j), &a)
		if nil != err {
			t.Errorf("%d: from JSON string error: %s", index, err)
			continue loop
		}

		buffer, _ := json.Marshal(a)
		if j != string(buffer) {
			t.Errorf("%d: marshal JSON:failed: expected %s  actual: %s", index, j, buffer)
		}
	}
}

// From account base58 encoded to account
func TestInvalidBase58(t *testing.T) {
	for index, test := range testInvalidAccountFromBase58 {
		_, err := account.FromBase58(test.str)
		if test.err != err {
			t.Errorf("invalid base58 string: %d failed: expected: %q actual: %q", index, test.err, err)
		}
	}
}

func TestSignature(t *testing.T) {
	privateKey, err := account.NewPrivateKey(true)
	assert.Nil(t, err, "wrong generate error")

	acc := privateKey.Account()
	assert.True(t, acc.IsTesting(), "wrong network flag")

	message := []byte("contribute 1000")
	signature := privateKey.Sign(message)

	assert.Nil(t, acc.CheckSignature(message, signature), "valid signature rejected")
	assert.Equal(t, fault.InvalidSignature, acc.CheckSignature([]byte("contribute 1001"), signature), "wrong message accepted")
	assert.Equal(t, fault.InvalidSignature, acc.CheckSignature(message, signature[1:]), "short signature accepted")

	other, err := account.NewPrivateKey(true)
	assert.Nil(t, err, "wrong generate error")
	assert.Equal(t, fault.InvalidSignature, other.Account().CheckSignature(message, signature), "wrong signer accepted")
}

// Decode the hex string and return []byte.
//
// This is only used in the tests as the source is pre-prepared, so that there won't be any error
func decodeHex(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}
