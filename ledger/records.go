// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/packd/address"
)

// SystemOwner - owner of plain key accounts
var SystemOwner = address.Address{}

// NativeAccount - value balance and program data
type NativeAccount struct {
	Balance uint64          `json:"balance,string"`
	Owner   address.Address `json:"owner"`
	Data    []byte          `json:"-"`
}

// Mint - definition of an asset
type Mint struct {
	Authority address.Address `json:"authority"`
	Decimals  uint8           `json:"decimals"`
	Supply    uint64          `json:"supply,string"`
}

// AssetAccount - a holding of a single asset
type AssetAccount struct {
	Mint   address.Address `json:"mint"`
	Owner  address.Address `json:"owner"`
	Amount uint64          `json:"amount,string"`
}

const (
	nativeHeaderLength = 8 + address.Length
	mintRecordLength   = address.Length + 1 + 8
	assetRecordLength  = 2*address.Length + 8
)

func (n *NativeAccount) pack() []byte {
	buffer := make([]byte, nativeHeaderLength, nativeHeaderLength+len(n.Data))
	binary.BigEndian.PutUint64(buffer[:8], n.Balance)
	copy(buffer[8:], n.Owner[:])
	return append(buffer, n.Data...)
}

func unpackNative(key []byte, buffer []byte) *NativeAccount {
	if len(buffer) < nativeHeaderLength {
		logger.Panicf("ledger: truncated native account: %x: %x", key, buffer)
	}
	n := &NativeAccount{
		Balance: binary.BigEndian.Uint64(buffer[:8]),
		Data:    make([]byte, len(buffer)-nativeHeaderLength),
	}
	copy(n.Owner[:], buffer[8:nativeHeaderLength])
	copy(n.Data, buffer[nativeHeaderLength:])
	return n
}

func (m *Mint) pack() []byte {
	buffer := make([]byte, mintRecordLength)
	copy(buffer, m.Authority[:])
	buffer[address.Length] = m.Decimals
	binary.BigEndian.PutUint64(buffer[address.Length+1:], m.Supply)
	return buffer
}

func unpackMint(key []byte, buffer []byte) *Mint {
	if mintRecordLength != len(buffer) {
		logger.Panicf("ledger: invalid mint record: %x: %x", key, buffer)
	}
	m := &Mint{
		Decimals: buffer[address.Length],
		Supply:   binary.BigEndian.Uint64(buffer[address.Length+1:]),
	}
	copy(m.Authority[:], buffer[:address.Length])
	return m
}

func (a *AssetAccount) pack() []byte {
	buffer := make([]byte, assetRecordLength)
	copy(buffer, a.Mint[:])
	copy(buffer[address.Length:], a.Owner[:])
	binary.BigEndian.PutUint64(buffer[2*address.Length:], a.Amount)
	return buffer
}

func unpackAsset(key []byte, buffer []byte) *AssetAccount {
	if assetRecordLength != len(buffer) {
		logger.Panicf("ledger: invalid asset account record: %x: %x", key, buffer)
	}
	a := &AssetAccount{
		Amount: binary.BigEndian.Uint64(buffer[2*address.Length:]),
	}
	copy(a.Mint[:], buffer[:address.Length])
	copy(a.Owner[:], buffer[address.Length:2*address.Length])
	return a
}
