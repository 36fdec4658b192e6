// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/rpc/certificate"
	"github.com/bitmark-inc/packd/rpc/fixtures"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, key, err := fixtures.CertificatePair()
	assert.Nil(t, err, "wrong certificate generation")

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair.Certificate, tlsConfig.Certificates[0].Certificate, "wrong config")
}

func TestGetInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "not a certificate", "not a key")
	assert.NotNil(t, err, "accepted invalid PEM")
}

func TestMakeSelfSigned(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir := t.TempDir()
	certificateFileName := filepath.Join(dir, "rpc.crt")
	keyFileName := filepath.Join(dir, "rpc.key")

	err := certificate.MakeSelfSigned("test", certificateFileName, keyFileName, nil)
	assert.Nil(t, err, "wrong make error")

	info, err := os.Stat(keyFileName)
	assert.Nil(t, err, "wrong key stat error")
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "wrong key file mode")

	_, _, err = certificate.Load(logger.New(fixtures.LogCategory), "test", certificateFileName, keyFileName)
	assert.Nil(t, err, "wrong load error")

	err = certificate.MakeSelfSigned("test", certificateFileName, keyFileName, nil)
	assert.Equal(t, fault.CertificateFileExists, err, "certificate replaced")

	os.Remove(certificateFileName)
	err = certificate.MakeSelfSigned("test", certificateFileName, keyFileName, nil)
	assert.Equal(t, fault.KeyFileExists, err, "key replaced")
}
