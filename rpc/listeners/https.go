// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/packd/fault"
)

const httpsName = "http_rpc"

type httpsListener struct {
	sync.Mutex
	log       *logger.L
	listen    []string
	ipType    []string
	handler   http.Handler
	tlsConfig *tls.Config
	listeners []net.Listener
	servers   []*http.Server
}

// NewHTTPS - validate listen addresses and create an HTTPS listener
func NewHTTPS(listen []string, log *logger.L, handler http.Handler, tlsConfig *tls.Config) (Listener, error) {
	if 0 == len(listen) {
		log.Errorf("missing %s listen", httpsName)
		return nil, fault.MissingParameters
	}

	addresses, ipType, err := parseListenAddress(listen, log)
	if nil != err {
		return nil, err
	}

	cfg := tlsConfig.Clone()
	cfg.NextProtos = []string{"http/1.1"}

	return &httpsListener{
		log:       log,
		listen:    addresses,
		ipType:    ipType,
		handler:   handler,
		tlsConfig: cfg,
	}, nil
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if nil != err {
		return nil, err
	}
	_ = tc.SetKeepAlive(true)
	_ = tc.SetKeepAlivePeriod(3 * time.Minute)
	return tc, nil
}

// Serve - open all listen addresses and serve HTTPS in background
func (h *httpsListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	for i, listen := range h.listen {
		h.log.Infof("starting server: %s on: %q", httpsName, listen)

		ln, err := net.Listen(h.ipType[i], listen)
		if nil != err {
			h.log.Errorf("%s listen error: %s", httpsName, err)
			return err
		}
		tlsListener := tls.NewListener(tcpKeepAliveListener{ln.(*net.TCPListener)}, h.tlsConfig)
		h.listeners = append(h.listeners, tlsListener)

		s := &http.Server{
			Handler:        h.handler,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			MaxHeaderBytes: 1 << 20,
		}
		h.servers = append(h.servers, s)

		go func() {
			err := s.Serve(tlsListener)
			h.log.Infof("%s terminated: %s", httpsName, err)
		}()
	}
	return nil
}

// Addresses - the bound addresses
func (h *httpsListener) Addresses() []net.Addr {
	h.Lock()
	defer h.Unlock()

	addresses := make([]net.Addr, 0, len(h.listeners))
	for _, l := range h.listeners {
		addresses = append(addresses, l.Addr())
	}
	return addresses
}

// Close - stop all servers
func (h *httpsListener) Close() {
	h.Lock()
	defer h.Unlock()

	for _, s := range h.servers {
		_ = s.Close()
	}
	h.servers = nil
	h.listeners = nil
}
