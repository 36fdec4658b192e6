// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/instruction"
	"github.com/bitmark-inc/packd/util"
)

// enumerate the program account data records
// this is encoded a Varint64 at start of the account data
const (
	nullState = iota
	poolState
	packState
)

// PoolState - data of the global pool account
type PoolState struct {
	Bump          uint8 `json:"bump"`
	TotalEntities uint8 `json:"totalEntities"`
}

// PackState - data of a pack account, fields in seed order
type PackState struct {
	Bump     uint8                           `json:"bump"`
	Entities [instruction.EntityCount]string `json:"entities"`
}

// Pack - Varint64(tag) followed by fields in order as struct above
func (pool *PoolState) Pack() []byte {
	buffer := util.ToVarint64(poolState)
	buffer = util.AppendUint64(buffer, uint64(pool.Bump))
	return util.AppendUint64(buffer, uint64(pool.TotalEntities))
}

// Pack - Varint64(tag) followed by fields in order as struct above
func (pack *PackState) Pack() []byte {
	buffer := util.ToVarint64(packState)
	buffer = util.AppendUint64(buffer, uint64(pack.Bump))
	for _, e := range pack.Entities {
		buffer = util.AppendString(buffer, e)
	}
	return buffer
}

// UnpackPoolState - decode the pool account data
func UnpackPoolState(buffer []byte) (*PoolState, error) {
	tag, buffer, err := util.ReadUint64(buffer)
	if nil != err {
		return nil, err
	}
	if poolState != tag {
		return nil, fault.InvalidAccountData
	}

	bump, buffer, err := readByte(buffer)
	if nil != err {
		return nil, err
	}
	total, _, err := readByte(buffer)
	if nil != err {
		return nil, err
	}

	pool := &PoolState{
		Bump:          bump,
		TotalEntities: total,
	}
	return pool, nil
}

// UnpackPackState - decode the pack account data
func UnpackPackState(buffer []byte) (*PackState, error) {
	tag, buffer, err := util.ReadUint64(buffer)
	if nil != err {
		return nil, err
	}
	if packState != tag {
		return nil, fault.InvalidAccountData
	}

	bump, buffer, err := readByte(buffer)
	if nil != err {
		return nil, err
	}

	pack := &PackState{
		Bump: bump,
	}
	for i := range pack.Entities {
		pack.Entities[i], buffer, err = util.ReadString(buffer, MaximumIdentifierLength)
		if nil != err {
			return nil, err
		}
	}
	return pack, nil
}

func readByte(buffer []byte) (uint8, []byte, error) {
	n, rest, err := util.ReadUint64(buffer)
	if nil != err {
		return 0, nil, err
	}
	if n > 255 {
		return 0, nil, fault.InvalidAccountData
	}
	return uint8(n), rest, nil
}
