// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package packs

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/packd/address"
	"github.com/bitmark-inc/packd/instruction"
	"github.com/bitmark-inc/packd/program"
	"github.com/bitmark-inc/packd/rpc/ratelimit"
)

//go:generate mockgen -destination=../mocks/pack_reader.go -package=mocks -mock_names=Reader=MockPackReader github.com/bitmark-inc/packd/rpc/packs Reader

const (
	rateLimitPack = 200
	rateBurstPack = 100
)

// limit for count
const maximumPackList = 100

// Reader - committed pack state
type Reader interface {
	Pack(entities [instruction.EntityCount]string) (*program.PackInfo, error)
	ListPacks(start address.Address, count int) ([]program.PackEntry, address.Address, error)
}

// Pack - type for RPC calls
type Pack struct {
	Log     *logger.L
	Limiter *rate.Limiter
	reader  Reader
}

// New - create the pack RPC handler
func New(log *logger.L, reader Reader) *Pack {
	return &Pack{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitPack, rateBurstPack),
		reader:  reader,
	}
}

// ---

// GetArguments - the entity tuple of a pack
type GetArguments struct {
	Entities [instruction.EntityCount]string `json:"entities"`
}

// Get - record and holdings of a single pack
func (pack *Pack) Get(arguments *GetArguments, reply *program.PackInfo) error {

	if err := ratelimit.Limit(pack.Limiter); nil != err {
		return err
	}

	info, err := pack.reader.Pack(arguments.Entities)
	if nil != err {
		return err
	}

	*reply = *info
	return nil
}

// ---

// ListArguments - arguments for RPC
type ListArguments struct {
	Start address.Address `json:"start"`
	Count int             `json:"count"`
}

// ListReply - result from RPC
type ListReply struct {
	Packs     []program.PackEntry `json:"packs"`
	NextStart address.Address     `json:"nextStart"`
}

// List - revealed packs in address order
func (pack *Pack) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.LimitN(pack.Limiter, arguments.Count, maximumPackList); nil != err {
		return err
	}

	packs, next, err := pack.reader.ListPacks(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Packs = packs
	reply.NextStart = next

	return nil
}
