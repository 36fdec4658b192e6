// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/util"
)

// PrivateKey - an ed25519 private key with its network flag
type PrivateKey struct {
	Test       bool
	PrivateKey []byte
}

// NewPrivateKey - generate a fresh random private key
func NewPrivateKey(test bool) (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	privateKey := &PrivateKey{
		Test:       test,
		PrivateKey: priv,
	}
	return privateKey, nil
}

// PrivateKeyFromBase58 - convert a Base58 encoded string to a private key
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	// Decode the privateKey
	privateKeyDecoded, err := base58.Decode(privateKeyBase58Encoded)
	if nil != err || 0 == len(privateKeyDecoded) {
		return nil, fault.CannotDecodePrivateKey
	}

	keyVariantLength, isTest, err := privateKeyVariant(privateKeyDecoded)
	if nil != err {
		return nil, err
	}

	// Compute key length
	keyLength := len(privateKeyDecoded) - keyVariantLength - checksumLength
	if keyLength <= 0 {
		return nil, fault.InvalidKeyLength
	}

	// Checksum
	checksumStart := len(privateKeyDecoded) - checksumLength
	checksum := sha3.Sum256(privateKeyDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], privateKeyDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return newPrivateKey(isTest, privateKeyDecoded[keyVariantLength:checksumStart])
}

// PrivateKeyFromBytes - convert a byte encoded buffer to a private key
func PrivateKeyFromBytes(privateKeyBytes []byte) (*PrivateKey, error) {
	keyVariantLength, isTest, err := privateKeyVariant(privateKeyBytes)
	if nil != err {
		return nil, err
	}
	return newPrivateKey(isTest, privateKeyBytes[keyVariantLength:])
}

func privateKeyVariant(buffer []byte) (int, bool, error) {
	keyVariant, keyVariantLength := util.FromVarint64(buffer)

	// Check key type
	if 0 == keyVariantLength || keyVariant&publicKeyCode == publicKeyCode {
		return 0, false, fault.NotAPrivateKey
	}

	// compute algorithm
	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit {
		return 0, false, fault.InvalidKeyType
	}

	// network selection
	isTest := 0 != keyVariant&testKeyCode

	return keyVariantLength, isTest, nil
}

func newPrivateKey(isTest bool, key []byte) (*PrivateKey, error) {
	if ed25519.PrivateKeySize != len(key) {
		return nil, fault.InvalidKeyLength
	}
	priv := make([]byte, len(key))
	copy(priv, key)

	privateKey := &PrivateKey{
		Test:       isTest,
		PrivateKey: priv,
	}
	return privateKey, nil
}

// IsTesting - return whether the private key is in test mode or not
func (privateKey *PrivateKey) IsTesting() bool {
	return privateKey.Test
}

// KeyType - key type code (see enumeration in account.go)
func (privateKey *PrivateKey) KeyType() int {
	return ED25519
}

// Account - return the corresponding account
func (privateKey *PrivateKey) Account() *Account {
	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, privateKey.PrivateKey[ed25519.PrivateKeySize-ed25519.PublicKeySize:])
	return &Account{
		Test:      privateKey.Test,
		PublicKey: publicKey,
	}
}

// PrivateKeyBytes - fetch the private key as byte slice
func (privateKey *PrivateKey) PrivateKeyBytes() []byte {
	return privateKey.PrivateKey[:]
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}

// Bytes - byte slice for encoded key
func (privateKey *PrivateKey) Bytes() []byte {
	keyVariant := byte(ED25519 << algorithmShift)
	if privateKey.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, privateKey.PrivateKey...)
}

// String - base58 encoding of encoded key
func (privateKey *PrivateKey) String() string {
	buffer := privateKey.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert a private key to its Base58 JSON form
func (privateKey PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}

// UnmarshalText - convert Base58 text to a private key
func (privateKey *PrivateKey) UnmarshalText(s []byte) error {
	a, err := PrivateKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*privateKey = *a
	return nil
}
