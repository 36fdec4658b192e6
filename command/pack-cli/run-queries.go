// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/packd/address"
	"github.com/bitmark-inc/packd/fault"
)

func runPool(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Pool()
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runVault(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	entityId := c.String("entity")
	if "" == entityId {
		return fault.MissingParameters
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Vault(entityId)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runPack(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	entities, err := parseEntities(c.String("entities"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Pack(entities)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runPacks(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	start := address.Address{}
	if s := c.String("start"); "" != s {
		a, err := address.FromBase58(s)
		if nil != err {
			return err
		}
		start = a
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ListPacks(start, c.Int("count"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, err := addressOrSelf(m, c.String("address"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Balance(a)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runAssetBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := addressOrSelf(m, c.String("owner"))
	if nil != err {
		return err
	}
	mint, err := address.FromBase58(c.String("mint"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.AssetBalance(owner, mint)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runAirdrop(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !m.testnet {
		return fault.NotAvailableInLiveMode
	}

	a, err := addressOrSelf(m, c.String("address"))
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")
	if 0 == amount {
		return fault.InvalidAmount
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Airdrop(a, amount)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Info()
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
