// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/packd/configuration"
	"github.com/bitmark-inc/packd/fault"
)

type rpcType struct {
	MaximumConnections int      `gluamapper:"maximum_connections"`
	Listen             []string `gluamapper:"listen"`
}

type loggingType struct {
	Size   int               `gluamapper:"size"`
	Levels map[string]string `gluamapper:"levels"`
}

type testType struct {
	DataDirectory string      `gluamapper:"data_directory"`
	PidFile       string      `gluamapper:"pidfile"`
	Chain         string      `gluamapper:"chain"`
	Maximum       int         `gluamapper:"maximum"`
	Missing       string      `gluamapper:"missing"`
	ClientRPC     rpcType     `gluamapper:"client_rpc"`
	Logging       loggingType `gluamapper:"logging"`
}

func TestParse(t *testing.T) {
	fileName := "testdata/test.conf"
	options := &testType{
		Missing: "default",
	}

	err := configuration.ParseConfigurationFile(fileName, options)
	assert.Nil(t, err, "wrong parse error")

	assert.Equal(t, ".", options.DataDirectory, "wrong data directory")
	assert.Equal(t, fileName+".pid", options.PidFile, "wrong pid file")
	assert.Equal(t, "testing", options.Chain, "wrong chain")
	assert.Equal(t, 12, options.Maximum, "wrong maximum")
	assert.Equal(t, "default", options.Missing, "default was overwritten")
	assert.Equal(t, 5, options.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, options.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, 1048576, options.Logging.Size, "wrong log size")
	assert.Equal(t, "debug", options.Logging.Levels["rpc"], "wrong rpc level")
	assert.Equal(t, "info", options.Logging.Levels["DEFAULT"], "wrong default level")
}

func TestParseErrors(t *testing.T) {
	options := testType{}

	err := configuration.ParseConfigurationFile("testdata/test.conf", options)
	assert.Equal(t, fault.InvalidStructPointer, err, "accepted a struct value")

	n := 0
	err = configuration.ParseConfigurationFile("testdata/test.conf", &n)
	assert.Equal(t, fault.InvalidStructPointer, err, "accepted a non struct pointer")

	err = configuration.ParseConfigurationFile("testdata/not-table.conf", &options)
	assert.Equal(t, fault.ConfigurationNotTable, err, "accepted a non table result")

	err = configuration.ParseConfigurationFile("testdata/syntax.conf", &options)
	assert.NotNil(t, err, "accepted a syntax error")

	err = configuration.ParseConfigurationFile("testdata/no-such-file.conf", &options)
	assert.NotNil(t, err, "accepted a missing file")
}
