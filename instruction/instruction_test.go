// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/packd/account"
	"github.com/bitmark-inc/packd/address"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/instruction"
	"github.com/bitmark-inc/packd/util"
)

func newKey(t *testing.T, test bool) *account.PrivateKey {
	privateKey, err := account.NewPrivateKey(test)
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}
	return privateKey
}

func TestUnsignedPackReturnsMessage(t *testing.T) {
	admin := newKey(t, true)

	r := &instruction.Initialise{
		Admin:         admin.Account(),
		TotalEntities: 4,
		Nonce:         1,
	}
	message, err := r.Pack(admin.Account())
	assert.Equal(t, fault.InvalidSignature, err, "wrong unsigned error")
	assert.Equal(t, instruction.InitialiseTag, instruction.Packed(message).Type(), "wrong tag")

	r.Signature = admin.Sign(message)
	packed, err := r.Pack(admin.Account())
	assert.Nil(t, err, "wrong signed error")
	assert.Equal(t, []byte(message), []byte(packed[:len(message)]), "signed record does not start with message")
}

func TestSignAndUnpack(t *testing.T) {
	admin := newKey(t, true)
	user := newKey(t, true)
	mint := address.ProgramIdentifier("PEPE mint")
	entities := [instruction.EntityCount]string{"PEPE", "DOGE", "WIF", "BONK"}

	items := []struct {
		record instruction.Instruction
		signer *account.PrivateKey
		tag    instruction.TagType
	}{
		{&instruction.Initialise{Admin: admin.Account(), TotalEntities: 4, Nonce: 1}, admin, instruction.InitialiseTag},
		{&instruction.Contribute{Contributor: user.Account(), Amount: 1000, Nonce: 2}, user, instruction.ContributeTag},
		{&instruction.CreateMint{Admin: admin.Account(), Mint: mint, Decimals: 6, Nonce: 3}, admin, instruction.CreateMintTag},
		{&instruction.MintAndFund{Admin: admin.Account(), EntityId: "PEPE", Mint: mint, Decimals: 6, TotalSupply: 1000000000, VaultAmount: 940000000, Nonce: 4}, admin, instruction.MintAndFundTag},
		{&instruction.RevealPack{Admin: admin.Account(), Entities: entities, AmountPerEntity: 1000, Nonce: 5}, admin, instruction.RevealPackTag},
		{&instruction.ClaimFromPack{User: user.Account(), Entities: entities, AmountPerEntity: 400, Nonce: 6}, user, instruction.ClaimFromPackTag},
	}

	for i, item := range items {
		packed, err := instruction.Sign(item.record, item.signer)
		if !assert.Nil(t, err, "%d: wrong sign error", i) {
			continue
		}
		assert.Equal(t, item.tag, packed.Type(), "%d: wrong tag", i)

		// trailing data is not consumed
		extended := append(append([]byte{}, packed...), 0x99)
		unpacked, n, err := instruction.Packed(extended).Unpack(true)
		if !assert.Nil(t, err, "%d: wrong unpack error", i) {
			continue
		}
		assert.Equal(t, len(packed), n, "%d: wrong unpacked length", i)
		assert.Equal(t, item.record, unpacked, "%d: wrong unpacked record", i)

		name, ok := instruction.RecordName(unpacked)
		assert.True(t, ok, "%d: unknown record name: %s", i, name)
	}
}

func TestUnpackRejectsTampering(t *testing.T) {
	user := newKey(t, true)

	packed, err := instruction.Sign(&instruction.Contribute{Contributor: user.Account(), Amount: 1000, Nonce: 1}, user)
	assert.Nil(t, err, "wrong sign error")

	// amount is the byte after the counted account
	tampered := append(instruction.Packed{}, packed...)
	offset := 1 + 1 + len(user.Account().Bytes())
	tampered[offset] ^= 0x01
	_, _, err = tampered.Unpack(true)
	assert.Equal(t, fault.InvalidSignature, err, "tampered record accepted")

	_, _, err = packed.Unpack(false)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "wrong network accepted")

	_, _, err = packed[:len(packed)-3].Unpack(true)
	assert.Equal(t, fault.RecordTruncated, err, "truncated record accepted")

	_, _, err = instruction.Packed{0x7f, 0x00}.Unpack(true)
	assert.Equal(t, fault.UnknownRecordType, err, "unknown tag accepted")
}

func TestSignWrongKey(t *testing.T) {
	admin := newKey(t, true)
	other := newKey(t, true)

	packed, err := instruction.Sign(&instruction.Initialise{Admin: admin.Account(), TotalEntities: 4}, other)
	assert.Nil(t, err, "wrong sign error")

	_, _, err = packed.Unpack(true)
	assert.Equal(t, fault.InvalidSignature, err, "signature of another key accepted")
}

func TestPackLimits(t *testing.T) {
	admin := newKey(t, true)

	r := &instruction.MintAndFund{
		Admin:    admin.Account(),
		EntityId: string(make([]byte, instruction.MaximumIdentifierLength+1)),
	}
	_, err := instruction.Sign(r, admin)
	assert.Equal(t, fault.InvalidIdentifierLength, err, "wrong long identifier error")

	reveal := &instruction.RevealPack{
		Admin:    admin.Account(),
		Entities: [instruction.EntityCount]string{"PEPE", "DOGE", "WIF", string(make([]byte, 65))},
	}
	_, err = instruction.Sign(reveal, admin)
	assert.Equal(t, fault.InvalidIdentifierLength, err, "wrong long entity error")

	_, err = (&instruction.Contribute{}).Pack(admin.Account())
	assert.Equal(t, fault.MissingParameters, err, "wrong missing account error")
}

func TestIdentifier(t *testing.T) {
	user := newKey(t, true)

	packed1, err := instruction.Sign(&instruction.Contribute{Contributor: user.Account(), Amount: 1, Nonce: 1}, user)
	assert.Nil(t, err, "wrong first sign error")
	packed2, err := instruction.Sign(&instruction.Contribute{Contributor: user.Account(), Amount: 1, Nonce: 2}, user)
	assert.Nil(t, err, "wrong second sign error")

	assert.Equal(t, packed1.Id(), packed1.Id(), "identifier not stable")
	assert.NotEqual(t, packed1.Id(), packed2.Id(), "nonce not part of identifier")
	assert.Equal(t, 64, len(packed1.Id().String()), "wrong identifier text length")
}

// a record carrying an oversize identifier is rejected for its length
// even when the bytes are all present
func TestUnpackLongIdentifier(t *testing.T) {
	admin := newKey(t, true)

	for _, size := range []int{instruction.MaximumIdentifierLength + 1, 65, 200} {
		record := util.ToVarint64(uint64(instruction.MintAndFundTag))
		record = util.AppendBytes(record, admin.Account().Bytes())
		record = util.AppendString(record, string(make([]byte, size)))
		record = util.AppendBytes(record, make([]byte, 32))

		_, _, err := instruction.Packed(record).Unpack(true)
		assert.Equal(t, fault.InvalidIdentifierLength, err, "wrong error for identifier of %d bytes", size)
	}

	record := util.ToVarint64(uint64(instruction.MintAndFundTag))
	record = util.AppendBytes(record, admin.Account().Bytes())
	_, _, err := instruction.Packed(record).Unpack(true)
	assert.Equal(t, fault.RecordTruncated, err, "wrong error for missing identifier")
}
