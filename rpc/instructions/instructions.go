// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instructions

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/instruction"
	"github.com/bitmark-inc/packd/rpc/ratelimit"
)

//go:generate mockgen -destination=../mocks/executor.go -package=mocks github.com/bitmark-inc/packd/rpc/instructions Executor

const (
	rateLimitInstruction = 200
	rateBurstInstruction = 100

	maximumPackedSize = 4096
)

// Executor - applies a signed instruction
type Executor interface {
	Execute(instruction.Packed) (instruction.Identifier, error)
}

// Instruction - type for RPC calls
type Instruction struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	executor Executor
}

// New - create the instruction RPC handler
func New(log *logger.L, executor Executor) *Instruction {
	return &Instruction{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitInstruction, rateBurstInstruction),
		executor: executor,
	}
}

// SubmitArguments - a packed signed instruction in hex
type SubmitArguments struct {
	Packed instruction.Packed `json:"packed"`
}

// SubmitReply - the instruction id
type SubmitReply struct {
	TxId instruction.Identifier `json:"txId"`
}

// Submit - verify and apply a signed instruction
func (i *Instruction) Submit(arguments *SubmitArguments, reply *SubmitReply) error {

	if err := ratelimit.Limit(i.Limiter); nil != err {
		return err
	}

	if nil == arguments || 0 == len(arguments.Packed) {
		return fault.MissingParameters
	}
	if len(arguments.Packed) > maximumPackedSize {
		return fault.FieldTooLong
	}

	i.Log.Infof("submit: %x", arguments.Packed)

	txId, err := i.executor.Execute(arguments.Packed)
	if nil != err {
		i.Log.Debugf("submit error: %s", err)
		return err
	}

	reply.TxId = txId
	return nil
}
