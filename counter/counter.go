// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter tracks the number of client connections in use
// across all RPC listeners
package counter

import (
	"sync/atomic"
)

// Counter - number of slots currently held
type Counter uint64

// Increment - take a slot unconditionally, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Decrement - give back a slot, returns new value
func (ic *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(ic), ^uint64(0))
}

// Acquire - take a slot only if fewer than maximum are held
func (ic *Counter) Acquire(maximum uint64) bool {
	if ic.Increment() > maximum {
		ic.Decrement()
		return false
	}
	return true
}

// Release - give back a slot taken by Acquire
func (ic *Counter) Release() {
	ic.Decrement()
}

// Uint64 - slots in use
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - true when no slot is held
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}
