// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/packd/account"
	"github.com/bitmark-inc/packd/address"
	"github.com/bitmark-inc/packd/command/pack-cli/rpccalls"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/instruction"
	"github.com/bitmark-inc/packd/keypair"
)

// split "A,B,C,D" into an ordered entity tuple
func parseEntities(s string) ([instruction.EntityCount]string, error) {
	entities := [instruction.EntityCount]string{}

	parts := strings.Split(s, ",")
	if instruction.EntityCount != len(parts) {
		return entities, fault.WrongNumberOfEntities
	}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if "" == p {
			return entities, fault.MissingParameters
		}
		entities[i] = p
	}
	return entities, nil
}

// an explicit nonce or one from the clock
func getNonce(c *cli.Context) uint64 {
	if n := c.Uint64("nonce"); 0 != n {
		return n
	}
	return uint64(time.Now().UTC().UnixNano())
}

// a base58 address argument or the identity's own address
func addressOrSelf(m *metadata, s string) (address.Address, error) {
	if "" != s {
		return address.FromBase58(s)
	}
	f, err := keypair.Read(m.identity)
	if nil != err {
		return address.Address{}, err
	}
	return f.Account.Address(), nil
}

// decrypt the identity key file
func loadIdentity(m *metadata) (*account.PrivateKey, error) {
	password := m.password
	if "" == password {
		p, err := promptCheckPasswordReader()
		if nil != err {
			return nil, err
		}
		password = p
	}

	privateKey, err := keypair.Load(m.identity, password)
	if nil != err {
		return nil, err
	}
	if privateKey.IsTesting() != m.testnet {
		return nil, fault.WrongNetworkForPublicKey
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", privateKey.Account())
	}
	return privateKey, nil
}

// sign, submit and print the instruction id
func submit(m *metadata, record instruction.Instruction, privateKey *account.PrivateKey) error {
	packed, err := instruction.Sign(record, privateKey)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "packed: %x\n", packed)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Submit(packed)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func newClient(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}
