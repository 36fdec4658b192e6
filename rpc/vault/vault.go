// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/program"
	"github.com/bitmark-inc/packd/rpc/ratelimit"
)

//go:generate mockgen -destination=../mocks/vault_reader.go -package=mocks -mock_names=Reader=MockVaultReader github.com/bitmark-inc/packd/rpc/vault Reader

const (
	rateLimitVault = 200
	rateBurstVault = 100
)

// Reader - committed vault state
type Reader interface {
	Vault(entityId string) (*program.VaultInfo, error)
}

// Vault - type for RPC calls
type Vault struct {
	Log     *logger.L
	Limiter *rate.Limiter
	reader  Reader
}

// New - create the vault RPC handler
func New(log *logger.L, reader Reader) *Vault {
	return &Vault{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitVault, rateBurstVault),
		reader:  reader,
	}
}

// GetArguments - entity to look up
type GetArguments struct {
	EntityId string `json:"entityId"`
}

// Get - the vault of an entity
func (v *Vault) Get(arguments *GetArguments, reply *program.VaultInfo) error {

	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	if nil == arguments || "" == arguments.EntityId {
		return fault.MissingParameters
	}

	info, err := v.reader.Vault(arguments.EntityId)
	if nil != err {
		return err
	}

	*reply = *info
	return nil
}
