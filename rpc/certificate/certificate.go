// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/util"
)

const validity = 10 * 365 * 24 * time.Hour

// Get - verify a PEM certificate and key pair and return the TLS configuration
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if err != nil {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Load - read certificate and key files then Get
func Load(log *logger.L, name, certificateFileName, keyFileName string) (*tls.Config, [32]byte, error) {
	certificate, err := os.ReadFile(certificateFileName)
	if nil != err {
		log.Errorf("%s certificate: %q  error: %s", name, certificateFileName, err)
		return nil, [32]byte{}, err
	}
	key, err := os.ReadFile(keyFileName)
	if nil != err {
		log.Errorf("%s private key: %q  error: %s", name, keyFileName, err)
		return nil, [32]byte{}, err
	}
	return Get(log, name, string(certificate), string(key))
}

// Generate - create a self-signed certificate and key in PEM form
func Generate(name string, extraHosts []string) ([]byte, []byte, error) {
	org := "packd self signed cert for: " + name
	validUntil := time.Now().Add(validity)
	return certgen.NewTLSCertPair(org, validUntil, false, extraHosts)
}

// MakeSelfSigned - write a new self-signed certificate and key
//
// existing files are never replaced
func MakeSelfSigned(name string, certificateFileName string, keyFileName string, extraHosts []string) error {
	if util.EnsureFileExists(certificateFileName) {
		return fault.CertificateFileExists
	}
	if util.EnsureFileExists(keyFileName) {
		return fault.KeyFileExists
	}

	cert, key, err := Generate(name, extraHosts)
	if err != nil {
		return err
	}

	if err = os.WriteFile(certificateFileName, cert, 0666); err != nil {
		return err
	}

	if err = os.WriteFile(keyFileName, key, 0600); err != nil {
		os.Remove(certificateFileName)
		return err
	}

	return nil
}

// Fingerprint - compute the fingerprint of a certificate
//
// FreeBSD: openssl x509 -outform DER -in packd-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
