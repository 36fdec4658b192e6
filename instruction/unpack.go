// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/packd/account"
	"github.com/bitmark-inc/packd/address"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/util"
)

// Unpack - turn a byte slice into a record
//
// the signature is checked against the record's signer and the
// signer must be on the selected network
//
// returns the record and the number of bytes it occupied
//
// must cast result to correct type
//
// e.g.
//   switch tx := result.(type) {
//   case *instruction.RevealPack:
func (record Packed) Unpack(testnet bool) (Instruction, int, error) {

	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n {
		return nil, 0, fault.UnknownRecordType
	}

	r := &reader{
		buffer:  record[n:],
		testnet: testnet,
	}

	var result Instruction
	switch TagType(recordType) {

	case InitialiseTag:
		initialise := &Initialise{
			Admin: r.account(),
		}
		initialise.TotalEntities = r.varint8(fault.InvalidCount)
		initialise.Nonce = r.varint()
		result = initialise

	case ContributeTag:
		contribute := &Contribute{
			Contributor: r.account(),
		}
		contribute.Amount = r.varint()
		contribute.Nonce = r.varint()
		result = contribute

	case CreateMintTag:
		createMint := &CreateMint{
			Admin: r.account(),
		}
		createMint.Mint = r.address()
		createMint.Decimals = r.varint8(fault.InvalidDecimals)
		createMint.Nonce = r.varint()
		result = createMint

	case MintAndFundTag:
		mintAndFund := &MintAndFund{
			Admin: r.account(),
		}
		mintAndFund.EntityId = r.identifier()
		mintAndFund.Mint = r.address()
		mintAndFund.Decimals = r.varint8(fault.InvalidDecimals)
		mintAndFund.TotalSupply = r.varint()
		mintAndFund.VaultAmount = r.varint()
		mintAndFund.Nonce = r.varint()
		result = mintAndFund

	case RevealPackTag:
		reveal := &RevealPack{
			Admin: r.account(),
		}
		reveal.Entities = r.entities()
		reveal.AmountPerEntity = r.varint()
		reveal.Nonce = r.varint()
		result = reveal

	case ClaimFromPackTag:
		claim := &ClaimFromPack{
			User: r.account(),
		}
		claim.Entities = r.entities()
		claim.AmountPerEntity = r.varint()
		claim.Nonce = r.varint()
		result = claim

	default:
		return nil, 0, fault.UnknownRecordType
	}

	if nil != r.err {
		return nil, 0, r.err
	}

	// signature is last, over everything before it
	signatureStart := len(record) - len(r.buffer)
	signature := account.Signature(r.bytes(maxSignatureLength))
	if nil != r.err {
		return nil, 0, r.err
	}
	n = len(record) - len(r.buffer)

	err := result.GetSigner().CheckSignature(record[:signatureStart], signature)
	if nil != err {
		return nil, 0, err
	}

	result.setSignature(signature)

	return result, n, nil
}

// sequential field reader, the first error stops all further reads
type reader struct {
	buffer  []byte
	testnet bool
	err     error
}

func (r *reader) varint() uint64 {
	if nil != r.err {
		return 0
	}
	value, rest, err := util.ReadUint64(r.buffer)
	if nil != err {
		r.err = err
		return 0
	}
	r.buffer = rest
	return value
}

func (r *reader) varint8(rangeError error) uint8 {
	value := r.varint()
	if nil == r.err && value > 255 {
		r.err = rangeError
	}
	return uint8(value)
}

func (r *reader) bytes(maximum int) []byte {
	if nil != r.err {
		return nil
	}
	value, rest, err := util.ReadBytes(r.buffer, maximum)
	if nil != err {
		r.err = err
		return nil
	}
	r.buffer = rest
	return value
}

// the length is checked before the bytes so an oversize identifier is
// reported as such rather than as a short record
func (r *reader) identifier() string {
	if nil != r.err {
		return ""
	}
	length, n := util.FromVarint64(r.buffer)
	if 0 == n {
		r.err = fault.RecordTruncated
		return ""
	}
	if length > MaximumIdentifierLength {
		r.err = fault.InvalidIdentifierLength
		return ""
	}
	return string(r.bytes(MaximumIdentifierLength))
}

func (r *reader) account() *account.Account {
	buffer := r.bytes(maxKeyLength)
	if nil != r.err {
		return nil
	}
	a, err := account.FromBytes(buffer)
	if nil != err {
		r.err = err
		return nil
	}
	if a.IsTesting() != r.testnet {
		r.err = fault.WrongNetworkForPublicKey
		return nil
	}
	return a
}

func (r *reader) address() address.Address {
	buffer := r.bytes(address.Length)
	if nil != r.err {
		return address.Address{}
	}
	a, err := address.New(buffer)
	if nil != err {
		r.err = err
	}
	return a
}

func (r *reader) entities() [EntityCount]string {
	var entities [EntityCount]string
	for i := range entities {
		entities[i] = r.identifier()
	}
	return entities
}
