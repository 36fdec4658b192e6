// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/util"
)

func TestFieldsRoundTrip(t *testing.T) {
	buffer := util.AppendUint64(nil, 300)
	buffer = util.AppendString(buffer, "PEPE")
	buffer = util.AppendBytes(buffer, []byte{1, 2, 3})
	buffer = append(buffer, 0x55)

	n, rest, err := util.ReadUint64(buffer)
	assert.Nil(t, err, "wrong uint64 error")
	assert.Equal(t, uint64(300), n, "wrong uint64")

	s, rest, err := util.ReadString(rest, 32)
	assert.Nil(t, err, "wrong string error")
	assert.Equal(t, "PEPE", s, "wrong string")

	b, rest, err := util.ReadBytes(rest, 32)
	assert.Nil(t, err, "wrong bytes error")
	assert.Equal(t, []byte{1, 2, 3}, b, "wrong bytes")
	assert.Equal(t, []byte{0x55}, rest, "wrong remainder")
}

func TestFieldsTruncated(t *testing.T) {
	_, _, err := util.ReadUint64([]byte{0x80})
	assert.Equal(t, fault.RecordTruncated, err, "wrong truncated uint64 error")

	_, _, err = util.ReadBytes([]byte{0x05, 0x01, 0x02}, 32)
	assert.Equal(t, fault.RecordTruncated, err, "wrong short field error")

	_, _, err = util.ReadString([]byte{0x21}, 32)
	assert.Equal(t, fault.RecordTruncated, err, "wrong oversize field error")
}
