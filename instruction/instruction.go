// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/packd/account"
	"github.com/bitmark-inc/packd/address"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/util"
)

// TagType - type code for instructions
type TagType uint64

// enumerate the possible instruction record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	InitialiseTag    = TagType(iota) // create the global pool
	ContributeTag    = TagType(iota) // native value into the pool
	CreateMintTag    = TagType(iota) // define an entity asset
	MintAndFundTag   = TagType(iota) // mint supply and fund the entity vault
	RevealPackTag    = TagType(iota) // move vault holdings into a new pack
	ClaimFromPackTag = TagType(iota) // move pack holdings to the claimant

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Instruction - generic instruction interface
type Instruction interface {
	Pack(signer *account.Account) (Packed, error)
	GetSigner() *account.Account
	setSignature(account.Signature)
}

// EntityCount - number of entities in a pack
const EntityCount = 4

// MaximumIdentifierLength - longest entity identifier in bytes
const MaximumIdentifierLength = 16

// byte sizes for various fields
const (
	maxSignatureLength = 1024
	maxKeyLength       = 128
)

// Initialise - create the global pool
type Initialise struct {
	Admin         *account.Account  `json:"admin"`         // base58
	TotalEntities uint8             `json:"totalEntities"` // informational
	Nonce         uint64            `json:"nonce,string"`  // unsigned 0..N
	Signature     account.Signature `json:"signature"`     // hex
}

// Contribute - move native value into the global pool
type Contribute struct {
	Contributor *account.Account  `json:"contributor"`   // base58
	Amount      uint64            `json:"amount,string"` // native units > 0
	Nonce       uint64            `json:"nonce,string"`  // unsigned 0..N
	Signature   account.Signature `json:"signature"`     // hex
}

// CreateMint - define an entity asset with the admin as mint authority
type CreateMint struct {
	Admin     *account.Account  `json:"admin"`        // base58
	Mint      address.Address   `json:"mint"`         // base58: new mint address
	Decimals  uint8             `json:"decimals"`     // display precision
	Nonce     uint64            `json:"nonce,string"` // unsigned 0..N
	Signature account.Signature `json:"signature"`    // hex
}

// MintAndFund - mint the total supply to the admin and fund the entity vault
type MintAndFund struct {
	Admin       *account.Account  `json:"admin"`              // base58
	EntityId    string            `json:"entityId"`           // utf-8 ticker
	Mint        address.Address   `json:"mint"`               // base58
	Decimals    uint8             `json:"decimals"`           // must match the mint
	TotalSupply uint64            `json:"totalSupply,string"` // minted to the admin
	VaultAmount uint64            `json:"vaultAmount,string"` // moved to the vault ≤ total supply
	Nonce       uint64            `json:"nonce,string"`       // unsigned 0..N
	Signature   account.Signature `json:"signature"`          // hex
}

// RevealPack - create a pack and fund it from four vaults
type RevealPack struct {
	Admin           *account.Account    `json:"admin"`                  // base58
	Entities        [EntityCount]string `json:"entities"`               // ordered tickers
	AmountPerEntity uint64              `json:"amountPerEntity,string"` // moved from each vault
	Nonce           uint64              `json:"nonce,string"`           // unsigned 0..N
	Signature       account.Signature   `json:"signature"`              // hex
}

// ClaimFromPack - move holdings from a pack to the claimant
type ClaimFromPack struct {
	User            *account.Account    `json:"user"`                   // base58
	Entities        [EntityCount]string `json:"entities"`               // ordered tickers
	AmountPerEntity uint64              `json:"amountPerEntity,string"` // moved from each sub-account
	Nonce           uint64              `json:"nonce,string"`           // unsigned 0..N
	Signature       account.Signature   `json:"signature"`              // hex
}

// Identifier - SHA3-256 of a packed instruction
type Identifier [32]byte

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	return TagType(recordType)
}

// Id - the instruction identifier
func (record Packed) Id() Identifier {
	return Identifier(sha3.Sum256(record))
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}

// String - hex form of an identifier
func (id Identifier) String() string {
	return hex.EncodeToString(id[:])
}

// Bytes - identifier as a byte slice
func (id Identifier) Bytes() []byte {
	return id[:]
}

// MarshalText - convert an identifier to its hex JSON form
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert an identifier from its hex JSON form
func (id *Identifier) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) != len(id) {
		return fault.InvalidInstructionId
	}
	_, err := hex.Decode(id[:], s)
	return err
}

// RecordName - returns the name of an instruction record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *Initialise, Initialise:
		return "Initialise", true

	case *Contribute, Contribute:
		return "Contribute", true

	case *CreateMint, CreateMint:
		return "CreateMint", true

	case *MintAndFund, MintAndFund:
		return "MintAndFund", true

	case *RevealPack, RevealPack:
		return "RevealPack", true

	case *ClaimFromPack, ClaimFromPack:
		return "ClaimFromPack", true

	default:
		return "*unknown*", false
	}
}

// GetSigner - account whose signature is last in the record
func (i *Initialise) GetSigner() *account.Account { return i.Admin }

// GetSigner - account whose signature is last in the record
func (c *Contribute) GetSigner() *account.Account { return c.Contributor }

// GetSigner - account whose signature is last in the record
func (c *CreateMint) GetSigner() *account.Account { return c.Admin }

// GetSigner - account whose signature is last in the record
func (m *MintAndFund) GetSigner() *account.Account { return m.Admin }

// GetSigner - account whose signature is last in the record
func (r *RevealPack) GetSigner() *account.Account { return r.Admin }

// GetSigner - account whose signature is last in the record
func (c *ClaimFromPack) GetSigner() *account.Account { return c.User }

func (i *Initialise) setSignature(s account.Signature) { i.Signature = s }
func (c *Contribute) setSignature(s account.Signature) { c.Signature = s }
func (c *CreateMint) setSignature(s account.Signature) { c.Signature = s }
func (m *MintAndFund) setSignature(s account.Signature) { m.Signature = s }
func (r *RevealPack) setSignature(s account.Signature) { r.Signature = s }
func (c *ClaimFromPack) setSignature(s account.Signature) { c.Signature = s }
