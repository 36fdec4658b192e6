// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AccountExists            = ExistsError("account already exists")
	AccountMissing           = NotFoundError("account does not exist")
	AdminMismatch            = InvalidError("credential does not match the configured admin")
	AlreadyInitialised       = ExistsError("already initialised")
	ArithmeticOverflow       = ProcessError("arithmetic overflow")
	CannotDecodeAccount      = InvalidError("cannot decode account")
	CannotDecodeAddress      = InvalidError("cannot decode address")
	CannotDecodePrivateKey   = InvalidError("cannot decode private key")
	CertificateFileExists    = ExistsError("certificate file already exists")
	ChecksumMismatch         = ProcessError("checksum mismatch")
	ConfigurationNotTable    = InvalidError("configuration did not return a table")
	DecimalsMismatch         = InvalidError("decimals do not match the mint")
	DuplicateEntity          = InvalidError("entity repeated in pack")
	DuplicatePack            = ExistsError("pack already exists")
	FieldTooLong             = LengthError("field too long")
	InsufficientBalance      = ProcessError("insufficient balance")
	InsufficientVaultBalance = ProcessError("insufficient vault balance")
	InvalidAccountData       = RecordError("invalid account data")
	InvalidAmount            = InvalidError("invalid amount")
	InvalidAuthority         = InvalidError("authority does not match account owner")
	InvalidBump              = InvalidError("derived address lies on the curve")
	InvalidChain             = InvalidError("invalid chain")
	InvalidCount             = InvalidError("invalid count")
	InvalidCursor            = InvalidError("invalid cursor")
	InvalidDecimals          = InvalidError("invalid decimals")
	InvalidIPAddress         = InvalidError("invalid IP address")
	InvalidIdentifierLength  = LengthError("identifier longer than 16 bytes")
	InvalidInstructionId     = LengthError("invalid instruction id")
	InvalidKeyLength         = LengthError("invalid key length")
	InvalidKeyType           = InvalidError("invalid key type")
	InvalidPackDerivation    = InvalidError("pack address does not match an existing pack")
	InvalidPortNumber        = InvalidError("invalid port number")
	InvalidSignature         = InvalidError("invalid signature")
	InvalidStructPointer     = InvalidError("invalid struct pointer")
	KeyFileExists            = ExistsError("key file already exists")
	MintMismatch             = InvalidError("asset account mint does not match")
	MissingParameters        = InvalidError("missing parameters")
	NotAPrivateKey           = InvalidError("not a private key")
	NotAPublicKey            = InvalidError("not a public key")
	NotAvailableInLiveMode   = InvalidError("not available in live mode")
	NotInitialised           = NotFoundError("not initialised")
	NotProgramAccount        = InvalidError("account is not owned by the program")
	PasswordMismatch         = InvalidError("passwords do not match")
	PasswordTooShort         = LengthError("password shorter than 8 characters")
	PoolNotInitialised       = NotFoundError("pool is not initialised")
	RateLimiting             = InvalidError("rate limiting")
	RecordTruncated          = RecordError("record is truncated")
	SeedTooLong              = LengthError("seed longer than 32 bytes")
	SignatureTooLong         = LengthError("signature too long")
	TooManySeeds             = LengthError("more than 16 seeds")
	TrailingData             = RecordError("trailing data after record")
	TransactionAlreadyExists = ExistsError("transaction already exists")
	TransactionNotInUse      = ProcessError("transaction not in use")
	UnknownRecordType        = RecordError("unknown record type")
	VaultAmountExceedsSupply = InvalidError("vault amount exceeds total supply")
	WrongNetworkForPublicKey = InvalidError("wrong network for public key")
	WrongNumberOfEntities    = LengthError("a pack needs exactly four entities")
	WrongPassword            = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
