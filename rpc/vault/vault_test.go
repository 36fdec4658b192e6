// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/packd/address"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/program"
	"github.com/bitmark-inc/packd/rpc/fixtures"
	"github.com/bitmark-inc/packd/rpc/mocks"
	"github.com/bitmark-inc/packd/rpc/vault"
)

func TestVaultGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockVaultReader(ctl)

	info := &program.VaultInfo{
		EntityId: "PEPE",
		Address:  address.Address{9},
		Mint:     address.Address{8},
		Owner:    address.Address{7},
		Amount:   940000000,
	}
	r.EXPECT().Vault("PEPE").Return(info, nil).Times(1)

	v := vault.New(logger.New(fixtures.LogCategory), r)

	var reply program.VaultInfo
	err := v.Get(&vault.GetArguments{EntityId: "PEPE"}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, *info, reply, "wrong vault")
}

func TestVaultGetErrors(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockVaultReader(ctl)
	r.EXPECT().Vault("NOPE").Return(nil, fault.AccountMissing).Times(1)

	v := vault.New(logger.New(fixtures.LogCategory), r)

	var reply program.VaultInfo
	err := v.Get(&vault.GetArguments{}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong empty error")

	err = v.Get(&vault.GetArguments{EntityId: "NOPE"}, &reply)
	assert.Equal(t, fault.AccountMissing, err, "wrong missing error")
}
