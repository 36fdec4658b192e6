// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/program"
)

const (
	statsDelay  = 60 * time.Second
	statusDelay = 5 * time.Minute
	mega        = 1048576
)

// logs memory use until shutdown
type memoryStats struct {
	log *logger.L
}

func (m *memoryStats) Run(args interface{}, shutdown <-chan struct{}) {
	for {
		var s runtime.MemStats
		runtime.ReadMemStats(&s)

		text, err := json.Marshal(s)
		if nil != err {
			m.log.Errorf("marshal error: %s", err)
		} else {
			m.log.Debugf("stats: %s", text)
		}
		m.log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", s.Alloc/mega, s.TotalAlloc/mega, s.Sys/mega)

		select {
		case <-shutdown:
			return
		case <-time.After(statsDelay):
		}
	}
}

// periodically logs the pool state
type poolStatus struct {
	log *logger.L
}

func (ps *poolStatus) Run(args interface{}, shutdown <-chan struct{}) {
	p, ok := args.(*program.Program)
	if !ok {
		ps.log.Criticalf("unexpected args type: %T", args)
		return
	}

	for {
		info, err := p.Pool()
		switch {
		case nil == err:
			ps.log.Infof("pool: %s  entities: %d  balance: %d", info.Address, info.TotalEntities, info.Balance)
		case fault.IsErrNotFound(err):
			ps.log.Info("pool: not initialised")
		default:
			ps.log.Errorf("pool read error: %s", err)
		}

		select {
		case <-shutdown:
			return
		case <-time.After(statusDelay):
		}
	}
}
