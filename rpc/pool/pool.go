// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/packd/program"
	"github.com/bitmark-inc/packd/rpc/ratelimit"
)

//go:generate mockgen -destination=../mocks/pool_reader.go -package=mocks -mock_names=Reader=MockPoolReader github.com/bitmark-inc/packd/rpc/pool Reader

const (
	rateLimitPool = 200
	rateBurstPool = 100
)

// Reader - committed pool state
type Reader interface {
	Pool() (*program.PoolInfo, error)
}

// Pool - type for RPC calls
type Pool struct {
	Log     *logger.L
	Limiter *rate.Limiter
	reader  Reader
}

// New - create the pool RPC handler
func New(log *logger.L, reader Reader) *Pool {
	return &Pool{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitPool, rateBurstPool),
		reader:  reader,
	}
}

// GetArguments - empty arguments for pool request
type GetArguments struct{}

// Get - the pool record and its native balance
func (p *Pool) Get(_ *GetArguments, reply *program.PoolInfo) error {

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	info, err := p.reader.Pool()
	if nil != err {
		return err
	}

	*reply = *info
	return nil
}
