// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/packd/keypair"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	password := m.password
	if "" == password {
		p, err := promptPasswordReader()
		if nil != err {
			return err
		}
		password = p
	}

	_, f, err := keypair.Generate(m.testnet, password)
	if nil != err {
		return err
	}

	err = f.Save(m.identity)
	if nil != err {
		return err
	}

	type reply struct {
		File    string `json:"file"`
		Account string `json:"account"`
		Address string `json:"address"`
	}
	return printJson(m.w, reply{
		File:    m.identity,
		Account: f.Account.String(),
		Address: f.Account.Address().String(),
	})
}

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	f, err := keypair.Read(m.identity)
	if nil != err {
		return err
	}

	type reply struct {
		Account string `json:"account"`
		Address string `json:"address"`
		Testnet bool   `json:"testnet"`
	}
	return printJson(m.w, reply{
		Account: f.Account.String(),
		Address: f.Account.Address().String(),
		Testnet: f.Account.IsTesting(),
	})
}
