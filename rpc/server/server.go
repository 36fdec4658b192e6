// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/packd/counter"
	"github.com/bitmark-inc/packd/program"
	"github.com/bitmark-inc/packd/rpc/accounts"
	"github.com/bitmark-inc/packd/rpc/instructions"
	"github.com/bitmark-inc/packd/rpc/node"
	"github.com/bitmark-inc/packd/rpc/packs"
	"github.com/bitmark-inc/packd/rpc/pool"
	"github.com/bitmark-inc/packd/rpc/vault"
)

// Create - an RPC server with every packd service registered
func Create(log *logger.L, version string, chain string, p *program.Program, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(instructions.New(log, p))
	_ = server.Register(pool.New(log, p))
	_ = server.Register(vault.New(log, p))
	_ = server.Register(packs.New(log, p))
	_ = server.Register(accounts.New(log, p.Ledger(), p.IsTesting()))
	_ = server.Register(node.New(log, start, version, chain, program.Identifier, p.Admin(), rpcCount))

	return server
}
