// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/packd/account"
	"github.com/bitmark-inc/packd/program"
	"github.com/bitmark-inc/packd/rpc/fixtures"
	"github.com/bitmark-inc/packd/storage"
)

func newTestHandler(t *testing.T) (*httpHandler, func()) {
	fixtures.SetupTestLogger()

	dir, err := os.MkdirTemp("", "packd-http")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	err = storage.Initialise(filepath.Join(dir, "test"))
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	adminPK, err := account.NewPrivateKey(true)
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}

	log := logger.New(fixtures.LogCategory)
	p := program.New(log, adminPK.Account().Address(), true)

	configuration := &HTTPSConfiguration{
		MaximumConnections: 10,
		Allow: map[string][]string{
			"details": {"127.0.0.0/8", " ::1/128"},
		},
	}
	h, err := newHTTPHandler(log, configuration, "1.0", "testing", p)
	if nil != err {
		t.Fatalf("handler error: %s", err)
	}

	return h, func() {
		storage.Finalise()
		os.RemoveAll(dir)
		fixtures.TeardownTestLogger()
	}
}

func TestHTTPDetails(t *testing.T) {
	h, stop := newTestHandler(t)
	defer stop()

	mux := h.mux()

	r := httptest.NewRequest(http.MethodGet, "/packd/details", nil)
	r.RemoteAddr = "127.0.0.1:5555"
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status")
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"), "wrong content type")

	var reply struct {
		Chain   string `json:"chain"`
		Version string `json:"version"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &reply)
	assert.Nil(t, err, "wrong json")
	assert.Equal(t, "testing", reply.Chain, "wrong chain")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
}

func TestHTTPDetailsDenied(t *testing.T) {
	h, stop := newTestHandler(t)
	defer stop()

	mux := h.mux()

	r := httptest.NewRequest(http.MethodGet, "/packd/details", nil)
	r.RemoteAddr = "192.0.2.7:5555"
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status")

	r = httptest.NewRequest(http.MethodPost, "/packd/details", nil)
	r.RemoteAddr = "127.0.0.1:5555"
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code, "wrong status")
}

func TestHTTPRPC(t *testing.T) {
	h, stop := newTestHandler(t)
	defer stop()

	mux := h.mux()

	body := `{"method":"Node.Info","params":[{}],"id":1}`
	r := httptest.NewRequest(http.MethodPost, "/packd/rpc", strings.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status")

	var reply struct {
		Id     int `json:"id"`
		Result struct {
			Chain string `json:"chain"`
		} `json:"result"`
		Error interface{} `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &reply)
	assert.Nil(t, err, "wrong json")
	assert.Equal(t, 1, reply.Id, "wrong id")
	assert.Nil(t, reply.Error, "wrong rpc error")
	assert.Equal(t, "testing", reply.Result.Chain, "wrong chain")

	r = httptest.NewRequest(http.MethodGet, "/packd/rpc", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code, "wrong status")
}

func TestHTTPNotFound(t *testing.T) {
	h, stop := newTestHandler(t)
	defer stop()

	r := httptest.NewRequest(http.MethodGet, "/nothing", nil)
	w := httptest.NewRecorder()
	h.mux().ServeHTTP(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status")
}

func TestHTTPBadAllowList(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	configuration := &HTTPSConfiguration{
		MaximumConnections: 10,
		Allow: map[string][]string{
			"details": {"not-a-cidr"},
		},
	}
	_, err := newHTTPHandler(logger.New(fixtures.LogCategory), configuration, "1.0", "testing", nil)
	assert.NotNil(t, err, "bad cidr accepted")
}
