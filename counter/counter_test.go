// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/packd/counter"
)

// test incrementing/decrementing a counter
func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "counter is not zero at start")

	for i := 0; i < 5; i += 1 {
		c.Increment()
	}
	assert.Equal(t, uint64(5), c.Uint64(), "wrong count after incrementing")

	assert.Equal(t, uint64(4), c.Decrement(), "wrong decrement result")

	for i := 0; i < 4; i += 1 {
		c.Decrement()
	}
	assert.True(t, c.IsZero(), "counter did not return to zero")
}

func TestCounterConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	for i := 0; i < 50; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j += 1 {
				c.Increment()
				c.Decrement()
				c.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(5000), c.Uint64(), "lost updates")
}

func TestAcquireRelease(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.Acquire(2), "first slot")
	assert.True(t, c.Acquire(2), "second slot")
	assert.False(t, c.Acquire(2), "slot above maximum")
	assert.Equal(t, uint64(2), c.Uint64(), "refused acquire changed count")

	c.Release()
	assert.True(t, c.Acquire(2), "slot after release")

	c.Release()
	c.Release()
	assert.True(t, c.IsZero(), "counter did not return to zero")
}

func TestAcquireZeroMaximum(t *testing.T) {
	var c counter.Counter

	assert.False(t, c.Acquire(0), "acquire with zero maximum")
	assert.True(t, c.IsZero(), "counter changed")
}
