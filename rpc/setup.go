// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/packd/counter"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/program"
	"github.com/bitmark-inc/packd/rpc/certificate"
	"github.com/bitmark-inc/packd/rpc/listeners"
	"github.com/bitmark-inc/packd/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of active RPC and HTTPS connections
var connectionCount counter.Counter

// Initialise - start the client RPC and HTTPS listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *HTTPSConfiguration, version string, chain string, p *program.Program) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Load(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCount,
		server.Create(log, version, chain, p, &connectionCount),
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	httpsListener, err := initialiseHTTPS(httpsConfiguration, version, chain, p)
	if nil != err {
		rpcListener.Close()
		globalData.listeners = nil
		return err
	}
	if nil != httpsListener {
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	for _, l := range globalData.listeners {
		l.Close()
	}
	globalData.listeners = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
