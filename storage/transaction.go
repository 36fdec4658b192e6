// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/packd/fault"
)

// Transaction - a batch of writes committed atomically
//
// reads see the pending writes of the same transaction before the
// committed database contents
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
}

type transactionData struct {
	sync.Mutex
	inUse bool
	batch *leveldb.Batch
	cache Cache
}

// NewTransaction - start a new batch
func NewTransaction() (Transaction, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.database {
		return nil, fault.NotInitialised
	}

	trx := &transactionData{
		inUse: true,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}
	return trx, nil
}

// Put - store a key/value bytes pair
func (t *transactionData) Put(p *PoolHandle, key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()
	t.mustBeInUse("Put")

	k := p.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)

	t.cache.Set(string(k), v)
	t.batch.Put(k, v)
}

// Get - read a value, pending writes first
//
// returns nil if the key does not exist
func (t *transactionData) Get(p *PoolHandle, key []byte) []byte {
	t.Lock()
	defer t.Unlock()
	t.mustBeInUse("Get")

	if value, cached := t.cache.Get(string(p.prefixKey(key))); cached {
		return value
	}
	return p.Get(key)
}

// Has - check if a key exists, pending writes first
func (t *transactionData) Has(p *PoolHandle, key []byte) bool {
	t.Lock()
	defer t.Unlock()
	t.mustBeInUse("Has")

	if _, cached := t.cache.Get(string(p.prefixKey(key))); cached {
		return true
	}
	return p.Has(key)
}

// Commit - write all pending changes atomically
func (t *transactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotInUse
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return fault.NotInitialised
	}

	err := poolData.database.Write(t.batch, nil)
	t.finish()
	return err
}

// Abort - discard all pending changes
func (t *transactionData) Abort() {
	t.Lock()
	defer t.Unlock()
	t.finish()
}

func (t *transactionData) finish() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}

func (t *transactionData) mustBeInUse(operation string) {
	if !t.inUse {
		logger.Panicf("transaction.%s: %s", operation, fault.TransactionNotInUse)
	}
}
