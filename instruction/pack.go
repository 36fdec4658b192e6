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

// pack Initialise
//
// Pack Varint64(tag) followed by fields in order as struct above with
// signature last
//
// NOTE: returns the "unsigned" message on signature failure - for
//       signing by the client
func (initialise *Initialise) Pack(signer *account.Account) (Packed, error) {
	if len(initialise.Signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}
	if nil == initialise.Admin || nil == signer {
		return nil, fault.MissingParameters
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(InitialiseTag))
	message = appendAccount(message, initialise.Admin)
	message = util.AppendUint64(message, uint64(initialise.TotalEntities))
	message = util.AppendUint64(message, initialise.Nonce)

	return sign(message, signer, initialise.Signature)
}

// pack Contribute
//
// NOTE: returns the "unsigned" message on signature failure
func (contribute *Contribute) Pack(signer *account.Account) (Packed, error) {
	if len(contribute.Signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}
	if nil == contribute.Contributor || nil == signer {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(ContributeTag))
	message = appendAccount(message, contribute.Contributor)
	message = util.AppendUint64(message, contribute.Amount)
	message = util.AppendUint64(message, contribute.Nonce)

	return sign(message, signer, contribute.Signature)
}

// pack CreateMint
//
// NOTE: returns the "unsigned" message on signature failure
func (createMint *CreateMint) Pack(signer *account.Account) (Packed, error) {
	if len(createMint.Signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}
	if nil == createMint.Admin || nil == signer {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(CreateMintTag))
	message = appendAccount(message, createMint.Admin)
	message = appendAddress(message, createMint.Mint)
	message = util.AppendUint64(message, uint64(createMint.Decimals))
	message = util.AppendUint64(message, createMint.Nonce)

	return sign(message, signer, createMint.Signature)
}

// pack MintAndFund
//
// NOTE: returns the "unsigned" message on signature failure
func (mintAndFund *MintAndFund) Pack(signer *account.Account) (Packed, error) {
	if len(mintAndFund.Signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}
	if nil == mintAndFund.Admin || nil == signer {
		return nil, fault.MissingParameters
	}
	if len(mintAndFund.EntityId) > MaximumIdentifierLength {
		return nil, fault.InvalidIdentifierLength
	}

	message := util.ToVarint64(uint64(MintAndFundTag))
	message = appendAccount(message, mintAndFund.Admin)
	message = util.AppendString(message, mintAndFund.EntityId)
	message = appendAddress(message, mintAndFund.Mint)
	message = util.AppendUint64(message, uint64(mintAndFund.Decimals))
	message = util.AppendUint64(message, mintAndFund.TotalSupply)
	message = util.AppendUint64(message, mintAndFund.VaultAmount)
	message = util.AppendUint64(message, mintAndFund.Nonce)

	return sign(message, signer, mintAndFund.Signature)
}

// pack RevealPack
//
// NOTE: returns the "unsigned" message on signature failure
func (reveal *RevealPack) Pack(signer *account.Account) (Packed, error) {
	if len(reveal.Signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}
	if nil == reveal.Admin || nil == signer {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(RevealPackTag))
	message = appendAccount(message, reveal.Admin)
	message, err := appendEntities(message, reveal.Entities)
	if nil != err {
		return nil, err
	}
	message = util.AppendUint64(message, reveal.AmountPerEntity)
	message = util.AppendUint64(message, reveal.Nonce)

	return sign(message, signer, reveal.Signature)
}

// pack ClaimFromPack
//
// NOTE: returns the "unsigned" message on signature failure
func (claim *ClaimFromPack) Pack(signer *account.Account) (Packed, error) {
	if len(claim.Signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}
	if nil == claim.User || nil == signer {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(ClaimFromPackTag))
	message = appendAccount(message, claim.User)
	message, err := appendEntities(message, claim.Entities)
	if nil != err {
		return nil, err
	}
	message = util.AppendUint64(message, claim.AmountPerEntity)
	message = util.AppendUint64(message, claim.Nonce)

	return sign(message, signer, claim.Signature)
}

// check the signature and append it
func sign(message []byte, signer *account.Account, signature account.Signature) (Packed, error) {
	err := signer.CheckSignature(message, signature)
	if nil != err {
		return message, err
	}
	// Signature Last
	return util.AppendBytes(message, signature), nil
}

// append an account as counted bytes
func appendAccount(buffer []byte, a *account.Account) []byte {
	return util.AppendBytes(buffer, a.Bytes())
}

// append an address as counted bytes
func appendAddress(buffer []byte, a address.Address) []byte {
	return util.AppendBytes(buffer, a[:])
}

// append the ordered entity identifiers
func appendEntities(buffer []byte, entities [EntityCount]string) ([]byte, error) {
	for _, e := range entities {
		if len(e) > MaximumIdentifierLength {
			return nil, fault.InvalidIdentifierLength
		}
		buffer = util.AppendString(buffer, e)
	}
	return buffer, nil
}
