// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/packd/account"
	"github.com/bitmark-inc/packd/address"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/instruction"
)

func runInitialise(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	total := c.Uint("total-entities")
	if total > 255 {
		return fmt.Errorf("total entities: %d exceeds 255", total)
	}

	privateKey, err := loadIdentity(m)
	if nil != err {
		return err
	}

	record := &instruction.Initialise{
		Admin:         privateKey.Account(),
		TotalEntities: uint8(total),
		Nonce:         getNonce(c),
	}
	return submit(m, record, privateKey)
}

func runContribute(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	amount := c.Uint64("amount")
	if 0 == amount {
		return fault.InvalidAmount
	}

	privateKey, err := loadIdentity(m)
	if nil != err {
		return err
	}

	record := &instruction.Contribute{
		Contributor: privateKey.Account(),
		Amount:      amount,
		Nonce:       getNonce(c),
	}
	return submit(m, record, privateKey)
}

func runCreateMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	decimals := c.Uint("decimals")
	if decimals > 255 {
		return fault.InvalidDecimals
	}

	// a fresh mint address unless one is given
	var mint address.Address
	if s := c.String("mint"); "" != s {
		a, err := address.FromBase58(s)
		if nil != err {
			return err
		}
		mint = a
	} else {
		key, err := account.NewPrivateKey(m.testnet)
		if nil != err {
			return err
		}
		mint = key.Account().Address()
	}

	if m.verbose {
		fmt.Fprintf(m.e, "mint: %s\n", mint)
	}

	privateKey, err := loadIdentity(m)
	if nil != err {
		return err
	}

	record := &instruction.CreateMint{
		Admin:    privateKey.Account(),
		Mint:     mint,
		Decimals: uint8(decimals),
		Nonce:    getNonce(c),
	}
	err = submit(m, record, privateKey)
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "mint: %s\n", mint)
	return nil
}

func runMintAndFund(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	entityId := c.String("entity")
	if "" == entityId {
		return fault.MissingParameters
	}
	mint, err := address.FromBase58(c.String("mint"))
	if nil != err {
		return err
	}
	decimals := c.Uint("decimals")
	if decimals > 255 {
		return fault.InvalidDecimals
	}

	privateKey, err := loadIdentity(m)
	if nil != err {
		return err
	}

	record := &instruction.MintAndFund{
		Admin:       privateKey.Account(),
		EntityId:    entityId,
		Mint:        mint,
		Decimals:    uint8(decimals),
		TotalSupply: c.Uint64("supply"),
		VaultAmount: c.Uint64("vault"),
		Nonce:       getNonce(c),
	}
	return submit(m, record, privateKey)
}

func runReveal(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	entities, err := parseEntities(c.String("entities"))
	if nil != err {
		return err
	}

	privateKey, err := loadIdentity(m)
	if nil != err {
		return err
	}

	record := &instruction.RevealPack{
		Admin:           privateKey.Account(),
		Entities:        entities,
		AmountPerEntity: c.Uint64("amount"),
		Nonce:           getNonce(c),
	}
	return submit(m, record, privateKey)
}

func runClaim(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	entities, err := parseEntities(c.String("entities"))
	if nil != err {
		return err
	}

	privateKey, err := loadIdentity(m)
	if nil != err {
		return err
	}

	record := &instruction.ClaimFromPack{
		User:            privateKey.Account(),
		Entities:        entities,
		AmountPerEntity: c.Uint64("amount"),
		Nonce:           getNonce(c),
	}
	return submit(m, record, privateKey)
}
