// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sort"
	"sync"

	"github.com/bitmark-inc/packd/address"
)

// exclusive per address locks, entries exist only while referenced
type lockTable struct {
	sync.Mutex
	locks map[address.Address]*lockEntry
}

type lockEntry struct {
	sync.Mutex
	refs int
}

func newLockTable() *lockTable {
	return &lockTable{
		locks: make(map[address.Address]*lockEntry),
	}
}

// sorted without duplicates so every caller acquires in the same order
func lockOrder(addresses []address.Address) []address.Address {
	sorted := make([]address.Address, 0, len(addresses))
	seen := make(map[address.Address]struct{}, len(addresses))
	for _, a := range addresses {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		sorted = append(sorted, a)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})
	return sorted
}

func (t *lockTable) acquire(addresses []address.Address) {
	for _, a := range addresses {
		t.Lock()
		e, ok := t.locks[a]
		if !ok {
			e = &lockEntry{}
			t.locks[a] = e
		}
		e.refs += 1
		t.Unlock()

		e.Lock()
	}
}

func (t *lockTable) release(addresses []address.Address) {
	for i := len(addresses) - 1; i >= 0; i -= 1 {
		a := addresses[i]
		t.Lock()
		e := t.locks[a]
		e.Unlock()
		e.refs -= 1
		if 0 == e.refs {
			delete(t.locks, a)
		}
		t.Unlock()
	}
}
