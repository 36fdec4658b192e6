// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/program"
	"github.com/bitmark-inc/packd/rpc/certificate"
	"github.com/bitmark-inc/packd/rpc/listeners"
	"github.com/bitmark-inc/packd/rpc/server"
)

const httpsName = "http_rpc"

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

// type to allow rpc system to interface to http request
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *internalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *internalConnection) Close() error {
	return nil
}

// the argument passed to the handlers
type httpHandler struct {
	log                *logger.L
	server             *rpc.Server
	program            *program.Program
	chain              string
	start              time.Time
	version            string
	allow              map[string][]*net.IPNet
	maximumConnections uint64
}

// start the HTTPS listener, nil when none is configured
func initialiseHTTPS(configuration *HTTPSConfiguration, version string, chain string, p *program.Program) (listeners.Listener, error) {

	log := globalData.log

	if nil == configuration || 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil, nil
	}

	if configuration.MaximumConnections < 1 {
		log.Errorf("invalid %s maximum connection limit: %d", httpsName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	tlsConfiguration, fingerprint, err := certificate.Load(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

	handler, err := newHTTPHandler(log, configuration, version, chain, p)
	if nil != err {
		return nil, err
	}

	l, err := listeners.NewHTTPS(configuration.Listen, log, handler.mux(), tlsConfiguration)
	if nil != err {
		return nil, err
	}
	err = l.Serve()
	if nil != err {
		l.Close()
		return nil, err
	}
	return l, nil
}

func newHTTPHandler(log *logger.L, configuration *HTTPSConfiguration, version string, chain string, p *program.Program) (*httpHandler, error) {

	// access control per path
	local := make(map[string][]*net.IPNet)
	for path, addresses := range configuration.Allow {
		set := make([]*net.IPNet, len(addresses))
		local[path] = set
		for i, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.Trim(ip, " "))
			if nil != err {
				return nil, err
			}
			set[i] = cidr
		}
	}

	return &httpHandler{
		log:                log,
		server:             server.Create(log, version, chain, p, &connectionCount),
		program:            p,
		chain:              chain,
		start:              time.Now(),
		version:            version,
		allow:              local,
		maximumConnections: configuration.MaximumConnections,
	}, nil
}

func (s *httpHandler) mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/packd/rpc", s.rpc)
	mux.HandleFunc("/packd/details", s.details)
	mux.HandleFunc("/", s.root)
	return mux
}

// this matches anything not matched and returns error
func (s *httpHandler) root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// performs a call to any normal RPC
func (s *httpHandler) rpc(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !connectionCount.Acquire(s.maximumConnections) {
		sendServiceUnavailable(w)
		return
	}
	defer connectionCount.Release()

	serverCodec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	err := s.server.ServeRequest(serverCodec)
	if nil != err {
		s.log.Debugf("http rpc error: %s", err)
	}
}

// GET the daemon and pool status
// (restricted to the allow list for "details")
func (s *httpHandler) details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !s.isAllowed("details", r.RemoteAddr) {
		s.log.Warnf("Deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	type theReply struct {
		Chain   string            `json:"chain"`
		RPCs    uint64            `json:"rpcs"`
		Version string            `json:"version"`
		Uptime  string            `json:"uptime"`
		Pool    *program.PoolInfo `json:"pool,omitempty"`
	}

	reply := theReply{
		Chain:   s.chain,
		RPCs:    connectionCount.Uint64(),
		Version: s.version,
		Uptime:  time.Since(s.start).String(),
	}
	if info, err := s.program.Pool(); nil == err {
		reply.Pool = info
	}

	sendReply(w, reply)
}

func (s *httpHandler) isAllowed(path string, remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}
	for _, cidr := range s.allow[path] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendServiceUnavailable(w http.ResponseWriter) {
	sendError(w, "too many connections", http.StatusServiceUnavailable)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
