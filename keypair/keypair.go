// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"encoding/hex"
	"encoding/json"
	"os"

	"github.com/bitmark-inc/packd/account"
	"github.com/bitmark-inc/packd/fault"
)

// File - contents of a key file
type File struct {
	Account    *account.Account `json:"account"`
	PrivateKey string           `json:"private_key"`
	Salt       string           `json:"salt"`
	Iterations int              `json:"iterations"`
}

// Generate - create a new private key and its encrypted file form
func Generate(test bool, password string) (*account.PrivateKey, *File, error) {
	if len(password) < MinimumPasswordLength {
		return nil, nil, fault.PasswordTooShort
	}

	privateKey, err := account.NewPrivateKey(test)
	if nil != err {
		return nil, nil, err
	}

	f, err := Encrypt(privateKey, password)
	if nil != err {
		return nil, nil, err
	}
	return privateKey, f, nil
}

// Encrypt - protect a private key with a password
func Encrypt(privateKey *account.PrivateKey, password string) (*File, error) {
	salt, iter, err := makeSalt()
	if nil != err {
		return nil, err
	}

	key := generateKey(password, salt, iter)
	encrypted, err := encryptPrivateKey(privateKey.PrivateKeyBytes(), key)
	if nil != err {
		return nil, err
	}

	f := &File{
		Account:    privateKey.Account(),
		PrivateKey: hex.EncodeToString(encrypted),
		Salt:       hex.EncodeToString(salt),
		Iterations: iter,
	}
	return f, nil
}

// Decrypt - recover the private key using the password
func (f *File) Decrypt(password string) (*account.PrivateKey, error) {
	if nil == f.Account {
		return nil, fault.MissingParameters
	}

	salt, err := hex.DecodeString(f.Salt)
	if nil != err || saltSize != len(salt) {
		return nil, fault.MissingParameters
	}
	ciphertext, err := hex.DecodeString(f.PrivateKey)
	if nil != err {
		return nil, fault.CannotDecodePrivateKey
	}
	if f.Iterations <= 0 {
		return nil, fault.MissingParameters
	}

	key := generateKey(password, salt, f.Iterations)
	plaintext, err := decryptPrivateKey(ciphertext, key)
	if nil != err {
		return nil, err
	}

	if !checkSignature(f.Account.PublicKeyBytes(), plaintext) {
		return nil, fault.WrongPassword
	}

	privateKey := &account.PrivateKey{
		Test:       f.Account.IsTesting(),
		PrivateKey: plaintext,
	}
	return privateKey, nil
}

// Save - write a new key file, an existing file is never replaced
func (f *File) Save(fileName string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if nil != err {
		return err
	}

	fd, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if os.IsExist(err) {
		return fault.KeyFileExists
	}
	if nil != err {
		return err
	}
	defer fd.Close()

	_, err = fd.Write(append(data, '\n'))
	return err
}

// Read - read a key file without decrypting it
func Read(fileName string) (*File, error) {
	data, err := os.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	f := &File{}
	err = json.Unmarshal(data, f)
	if nil != err {
		return nil, err
	}
	return f, nil
}

// Load - read a key file and decrypt its private key
func Load(fileName string, password string) (*account.PrivateKey, error) {
	f, err := Read(fileName)
	if nil != err {
		return nil, err
	}
	return f.Decrypt(password)
}
