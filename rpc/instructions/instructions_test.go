// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instructions_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/instruction"
	"github.com/bitmark-inc/packd/rpc/fixtures"
	"github.com/bitmark-inc/packd/rpc/instructions"
	"github.com/bitmark-inc/packd/rpc/mocks"
)

func TestSubmit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockExecutor(ctl)

	packed := instruction.Packed{0x01, 0x02, 0x03}
	id := packed.Id()
	e.EXPECT().Execute(packed).Return(id, nil).Times(1)

	i := instructions.New(logger.New(fixtures.LogCategory), e)

	var reply instructions.SubmitReply
	err := i.Submit(&instructions.SubmitArguments{Packed: packed}, &reply)
	assert.Nil(t, err, "wrong Submit")
	assert.Equal(t, id, reply.TxId, "wrong id")
}

func TestSubmitWhenExecuteFails(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockExecutor(ctl)
	e.EXPECT().Execute(gomock.Any()).Return(instruction.Identifier{}, fault.AdminMismatch).Times(1)

	i := instructions.New(logger.New(fixtures.LogCategory), e)

	var reply instructions.SubmitReply
	err := i.Submit(&instructions.SubmitArguments{Packed: instruction.Packed{0x01}}, &reply)
	assert.Equal(t, fault.AdminMismatch, err, "wrong error")
	assert.Equal(t, instruction.Identifier{}, reply.TxId, "reply was set")
}

func TestSubmitInvalidArguments(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockExecutor(ctl)
	e.EXPECT().Execute(gomock.Any()).Times(0)

	i := instructions.New(logger.New(fixtures.LogCategory), e)

	var reply instructions.SubmitReply
	err := i.Submit(&instructions.SubmitArguments{}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong empty error")

	err = i.Submit(&instructions.SubmitArguments{Packed: make(instruction.Packed, 5000)}, &reply)
	assert.Equal(t, fault.FieldTooLong, err, "wrong oversize error")
}
