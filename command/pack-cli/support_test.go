// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/keypair"
)

func TestParseEntities(t *testing.T) {
	entities, err := parseEntities("PEPE, DOGE,WIF ,BONK")
	assert.Nil(t, err, "wrong parseEntities")
	assert.Equal(t, [4]string{"PEPE", "DOGE", "WIF", "BONK"}, entities, "wrong entities")

	_, err = parseEntities("PEPE,DOGE,WIF")
	assert.Equal(t, fault.WrongNumberOfEntities, err, "three entities accepted")

	_, err = parseEntities("PEPE,DOGE,WIF,BONK,MEW")
	assert.Equal(t, fault.WrongNumberOfEntities, err, "five entities accepted")

	_, err = parseEntities("PEPE,,WIF,BONK")
	assert.Equal(t, fault.MissingParameters, err, "empty entity accepted")
}

func TestIdentity(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "identity.key")

	privateKey, f, err := keypair.Generate(true, "correct horse")
	assert.Nil(t, err, "wrong Generate")
	assert.Nil(t, f.Save(fileName), "wrong Save")

	m := &metadata{
		identity: fileName,
		password: "correct horse",
		testnet:  true,
	}

	loaded, err := loadIdentity(m)
	assert.Nil(t, err, "wrong loadIdentity")
	assert.Equal(t, privateKey.Account().Address(), loaded.Account().Address(), "wrong identity")

	a, err := addressOrSelf(m, "")
	assert.Nil(t, err, "wrong addressOrSelf")
	assert.Equal(t, privateKey.Account().Address(), a, "wrong own address")

	m.testnet = false
	_, err = loadIdentity(m)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "test key accepted on live network")

	m.testnet = true
	m.password = "wrong horse"
	_, err = loadIdentity(m)
	assert.Equal(t, fault.WrongPassword, err, "wrong password accepted")
}
