// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accounts

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/packd/address"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/ledger"
	"github.com/bitmark-inc/packd/rpc/ratelimit"
)

//go:generate mockgen -destination=../mocks/ledger_reader.go -package=mocks -mock_names=Reader=MockLedgerReader github.com/bitmark-inc/packd/rpc/accounts Reader

const (
	rateLimitLedger = 200
	rateBurstLedger = 100

	// airdrops are much more expensive for the node
	rateLimitAirdrop = 5
	rateBurstAirdrop = 2
)

// Reader - committed account state
type Reader interface {
	NativeAccount(address.Address) (*ledger.NativeAccount, error)
	AssetAccount(address.Address) (*ledger.AssetAccount, error)
	Airdrop(address.Address, uint64) error
}

// Ledger - type for RPC calls
type Ledger struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	AirdropLimiter *rate.Limiter
	reader         Reader
	testing        bool
}

// New - create the ledger RPC handler
func New(log *logger.L, reader Reader, testing bool) *Ledger {
	return &Ledger{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitLedger, rateBurstLedger),
		AirdropLimiter: rate.NewLimiter(rateLimitAirdrop, rateBurstAirdrop),
		reader:         reader,
		testing:        testing,
	}
}

// ---

// BalanceArguments - account to query
type BalanceArguments struct {
	Address address.Address `json:"address"`
}

// BalanceReply - native balance, zero for a missing account
type BalanceReply struct {
	Address address.Address `json:"address"`
	Owner   address.Address `json:"owner"`
	Balance uint64          `json:"balance,string"`
	Exists  bool            `json:"exists"`
}

// Balance - native value held by an address
func (l *Ledger) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Address.IsZero() {
		return fault.MissingParameters
	}

	reply.Address = arguments.Address

	account, err := l.reader.NativeAccount(arguments.Address)
	if fault.IsErrNotFound(err) {
		return nil
	}
	if nil != err {
		return err
	}

	reply.Owner = account.Owner
	reply.Balance = account.Balance
	reply.Exists = true
	return nil
}

// ---

// AssetBalanceArguments - owner and mint of an associated account
type AssetBalanceArguments struct {
	Owner address.Address `json:"owner"`
	Mint  address.Address `json:"mint"`
}

// AssetBalanceReply - the associated account and its amount
type AssetBalanceReply struct {
	Address address.Address `json:"address"`
	Amount  uint64          `json:"amount,string"`
	Exists  bool            `json:"exists"`
}

// AssetBalance - amount of an asset held in an owner's associated account
func (l *Ledger) AssetBalance(arguments *AssetBalanceArguments, reply *AssetBalanceReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Owner.IsZero() || arguments.Mint.IsZero() {
		return fault.MissingParameters
	}

	a, err := ledger.Associated(arguments.Owner, arguments.Mint)
	if nil != err {
		return err
	}
	reply.Address = a

	account, err := l.reader.AssetAccount(a)
	if fault.IsErrNotFound(err) {
		return nil
	}
	if nil != err {
		return err
	}

	reply.Amount = account.Amount
	reply.Exists = true
	return nil
}

// ---

// AirdropArguments - value to credit
type AirdropArguments struct {
	Address address.Address `json:"address"`
	Amount  uint64          `json:"amount,string"`
}

// AirdropReply - balance after the credit
type AirdropReply struct {
	Balance uint64 `json:"balance,string"`
}

// Airdrop - credit native value, only on test chains
func (l *Ledger) Airdrop(arguments *AirdropArguments, reply *AirdropReply) error {

	if err := ratelimit.Limit(l.AirdropLimiter); nil != err {
		return err
	}

	if !l.testing {
		return fault.NotAvailableInLiveMode
	}

	if nil == arguments || arguments.Address.IsZero() {
		return fault.MissingParameters
	}

	l.Log.Infof("airdrop: %d to: %s", arguments.Amount, arguments.Address)

	err := l.reader.Airdrop(arguments.Address, arguments.Amount)
	if nil != err {
		return err
	}

	account, err := l.reader.NativeAccount(arguments.Address)
	if nil != err {
		return err
	}
	reply.Balance = account.Balance
	return nil
}
