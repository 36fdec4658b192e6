// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/packd/address"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/util"
)

// enumeration of supported key algorithms
const (
	// list of valid algorithms
	Nothing = iota // zero keytype **not accepted**
	ED25519 = iota
	// end of list (one greater than last item)
	algorithmLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - an ed25519 public key with its network flag
type Account struct {
	Test      bool
	PublicKey []byte
}

// FromBase58 - convert a Base58 encoded string to an account
func FromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(accountDecoded) {
		return nil, fault.CannotDecodeAccount
	}

	keyVariantLength, isTest, err := keyVariant(accountDecoded)
	if nil != err {
		return nil, err
	}

	// Compute key length
	keyLength := len(accountDecoded) - keyVariantLength - checksumLength
	if keyLength <= 0 {
		return nil, fault.InvalidKeyLength
	}

	// Checksum
	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return newAccount(isTest, accountDecoded[keyVariantLength:checksumStart])
}

// FromBytes - convert a byte encoded buffer to an account
func FromBytes(accountBytes []byte) (*Account, error) {
	keyVariantLength, isTest, err := keyVariant(accountBytes)
	if nil != err {
		return nil, err
	}
	return newAccount(isTest, accountBytes[keyVariantLength:])
}

// parse the key variant returning its length and network flag
func keyVariant(buffer []byte) (int, bool, error) {
	keyVariant, keyVariantLength := util.FromVarint64(buffer)

	// Check key type
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return 0, false, fault.NotAPublicKey
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

func newAccount(isTest bool, key []byte) (*Account, error) {
	if ed25519.PublicKeySize != len(key) {
		return nil, fault.InvalidKeyLength
	}
	publicKey := make([]byte, len(key))
	copy(publicKey, key)

	account := &Account{
		Test:      isTest,
		PublicKey: publicKey,
	}
	return account, nil
}

// KeyType - key type code (see enumeration above)
func (account *Account) KeyType() int {
	return ED25519
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// Address - the ledger address owned by this account
func (account *Account) Address() address.Address {
	a := address.Address{}
	copy(a[:], account.PublicKey)
	return a
}

// IsTesting - return whether the public key is in test mode or not
func (account *Account) IsTesting() bool {
	return account.Test
}

// IsZero - true if the public key is all zeros
func (account *Account) IsZero() bool {
	for _, b := range account.PublicKey {
		if 0 != b {
			return false
		}
	}
	return true
}

// CheckSignature - check the signature of a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {

	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}

	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// Bytes - byte slice for encoded key
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey...)
}

// String - base58 encoding of encoded key
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert Base58 text to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
