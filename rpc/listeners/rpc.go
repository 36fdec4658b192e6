// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/packd/counter"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/util"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// Listener - a started network service
type Listener interface {
	Serve() error
	Addresses() []net.Addr
	Close()
}

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	sync.Mutex
	log             *logger.L
	listeners       []net.Listener
	count           *counter.Counter
	server          *rpc.Server
	maxConnections  uint64
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
}

// NewRPC - validate the configuration and create a JSON RPC listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	// validate all listen addresses
	listen, ipType, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	r := &rpcListener{
		log:             log,
		maxConnections:  configuration.MaximumConnections,
		listenIPAndPort: listen,
		ipType:          ipType,
		server:          server,
		count:           count,
		tlsConfig:       tlsConfig,
	}
	return r, nil
}

// Serve - open all listen addresses and accept in background
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s", listen)
		l, err := tls.Listen(r.ipType[i], listen, r.tlsConfig)
		if err != nil {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, l)

		go doServeRPC(l, r.server, r.maxConnections, r.log, r.count)
	}
	return nil
}

// Addresses - the bound addresses, resolves port zero
func (r *rpcListener) Addresses() []net.Addr {
	r.Lock()
	defer r.Unlock()

	addresses := make([]net.Addr, 0, len(r.listeners))
	for _, l := range r.listeners {
		addresses = append(addresses, l.Addr())
	}
	return addresses
}

// Close - stop accepting, open connections finish their requests
func (r *rpcListener) Close() {
	r.Lock()
	defer r.Unlock()

	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
}

func doServeRPC(listen net.Listener, server *rpc.Server, maximumConnections uint64, log *logger.L, count *counter.Counter) {
	for {
		conn, err := listen.Accept()
		if err != nil {
			log.Infof("rpc accept terminated: %s", err)
			break
		}
		if !count.Acquire(maximumConnections) {
			log.Warnf("connection limit reached, refused: %s", conn.RemoteAddr())
			_ = conn.Close()
			continue
		}
		go func() {
			defer count.Release()
			server.ServeCodec(jsonrpc.NewServerCodec(conn))
			_ = conn.Close()
		}()
	}
	_ = listen.Close()
}

func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	listen := make([]string, len(addrs))
	parsed := make([]string, len(addrs))
	for i, address := range addrs {
		if strings.HasPrefix(address, "*:") {
			// change "*:PORT" to "[::]:PORT"
			// on the assumption that this will listen on tcp4 and tcp6
			address = "[::]" + address[1:]
			parsed[i] = "tcp"
		}

		canonical, err := util.CanonicalIPandPort(address)
		if nil != err {
			log.Errorf("rpc server listen: %q  error: %s", address, err)
			return nil, nil, err
		}
		listen[i] = canonical

		if "" == parsed[i] {
			if '[' == canonical[0] {
				parsed[i] = "tcp6"
			} else {
				parsed[i] = "tcp4"
			}
		}
	}

	return listen, parsed, nil
}
