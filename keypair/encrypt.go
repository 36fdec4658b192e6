// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha512"
	"io"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/pbkdf2"

	"github.com/bitmark-inc/packd/fault"
)

const (
	saltSize           = 16
	keySize            = 32
	iterBase           = 5000
	iterRange          = 5000
	privateKeySize     = ed25519.PrivateKeySize
	encryptedKeyLength = aes.BlockSize + privateKeySize

	// MinimumPasswordLength - shortest accepted password
	MinimumPasswordLength = 8
)

// random salt and iteration count
func makeSalt() ([]byte, int, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); nil != err {
		return nil, 0, err
	}
	r := make([]byte, 2)
	if _, err := io.ReadFull(rand.Reader, r); nil != err {
		return nil, 0, err
	}
	iter := iterBase + (int(r[0])<<8|int(r[1]))%iterRange
	return salt, iter, nil
}

func generateKey(password string, salt []byte, iter int) []byte {
	return pbkdf2.Key([]byte(password), salt, iter, keySize, sha512.New)
}

// a private key is a whole number of blocks so no padding is needed
func encryptPrivateKey(plaintext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if nil != err {
		return nil, err
	}

	if len(plaintext) != privateKeySize {
		return nil, fault.InvalidKeyLength
	}

	ciphertext := make([]byte, encryptedKeyLength)
	iv := ciphertext[:aes.BlockSize]
	if _, err = io.ReadFull(rand.Reader, iv); nil != err {
		return nil, err
	}
	mode := cipher.NewCBCEncrypter(block, iv)
	mode.CryptBlocks(ciphertext[aes.BlockSize:], plaintext)

	return ciphertext, nil
}

func decryptPrivateKey(ciphertext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if nil != err {
		return nil, err
	}

	if len(ciphertext) != encryptedKeyLength {
		return nil, fault.InvalidKeyLength
	}

	iv := ciphertext[:aes.BlockSize]
	plaintext := make([]byte, privateKeySize)
	mode := cipher.NewCBCDecrypter(block, iv)
	mode.CryptBlocks(plaintext, ciphertext[aes.BlockSize:])

	return plaintext, nil
}

// a wrong password yields a key that cannot sign for the public key
func checkSignature(publicKey []byte, privateKey []byte) bool {
	message := []byte("packd key file check")
	signature := ed25519.Sign(privateKey, message)
	return ed25519.Verify(publicKey, message, signature)
}
