// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/packd/fault"
)

// AppendUint64 - append a Varint64 value to a buffer
func AppendUint64(buffer []byte, value uint64) []byte {
	return append(buffer, ToVarint64(value)...)
}

// AppendBytes - append a Varint64 count followed by the bytes
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// AppendString - append a Varint64 count followed by the string bytes
func AppendString(buffer []byte, s string) []byte {
	return AppendBytes(buffer, []byte(s))
}

// ReadUint64 - decode a Varint64 at the start of a buffer
//
// returns the value and the remainder of the buffer
func ReadUint64(buffer []byte) (uint64, []byte, error) {
	value, n := FromVarint64(buffer)
	if 0 == n {
		return 0, nil, fault.RecordTruncated
	}
	return value, buffer[n:], nil
}

// ReadBytes - decode a Varint64 counted byte field
//
// returns a copy of the field and the remainder of the buffer
func ReadBytes(buffer []byte, maximum int) ([]byte, []byte, error) {
	length, n := ClippedVarint64(buffer, 0, maximum)
	if 0 == n {
		return nil, nil, fault.RecordTruncated
	}
	buffer = buffer[n:]
	if len(buffer) < length {
		return nil, nil, fault.RecordTruncated
	}
	data := make([]byte, length)
	copy(data, buffer[:length])
	return data, buffer[length:], nil
}

// ReadString - decode a Varint64 counted string field
func ReadString(buffer []byte, maximum int) (string, []byte, error) {
	data, rest, err := ReadBytes(buffer, maximum)
	if nil != err {
		return "", nil, err
	}
	return string(data), rest, nil
}
