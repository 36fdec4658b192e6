// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/packd/rpc/certificate"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

var pair struct {
	once        sync.Once
	certificate string
	key         string
	err         error
}

// SetupTestLogger - route test logs to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// CertificatePair - a self-signed PEM certificate and key shared by all tests
func CertificatePair() (string, string, error) {
	pair.once.Do(func() {
		cert, key, err := certificate.Generate("test", []string{"127.0.0.1"})
		pair.certificate = string(cert)
		pair.key = string(key)
		pair.err = err
	})
	return pair.certificate, pair.key, pair.err
}
