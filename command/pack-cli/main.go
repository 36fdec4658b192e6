// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/packd/chain"
	packdversion "github.com/bitmark-inc/packd/version"
)

type metadata struct {
	identity string
	password string
	connect  string
	testnet  bool
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = packdversion.Version

var nonceFlag = cli.Uint64Flag{
	Name:  "nonce",
	Value: 0,
	Usage: " instruction `NONCE` [default: from the clock]",
}

var entitiesFlag = cli.StringFlag{
	Name:  "entities, t",
	Value: "",
	Usage: "*ordered entity ids `A,B,C,D`",
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "pack-cli"
	app.Usage = "submit pack program instructions to packd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "network, n",
			Value:  chain.Testing,
			Usage:  " connect to packd `NETWORK` [live|testing|local]",
			EnvVar: "PACK_CLI_NETWORK",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2150",
			Usage:  " packd client RPC `HOST:PORT`",
			EnvVar: "PACK_CLI_CONNECT",
		},
		cli.StringFlag{
			Name:   "identity, i",
			Value:  "pack-cli.key",
			Usage:  " encrypted key `FILE`",
			EnvVar: "PACK_CLI_IDENTITY",
		},
		cli.StringFlag{
			Name:   "password, p",
			Value:  "",
			Usage:  " identity `PASSWORD` [default: prompt]",
			EnvVar: "PACK_CLI_PASSWORD",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate a key pair and save it to the identity file",
			Action: runGenerate,
		},
		{
			Name:   "account",
			Usage:  "display the identity's account and address",
			Action: runAccount,
		},
		{
			Name:      "init",
			Usage:     "create the global pool (admin)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.UintFlag{
					Name:  "total-entities, e",
					Value: 0,
					Usage: " informational entity `COUNT`",
				},
				nonceFlag,
			},
			Action: runInitialise,
		},
		{
			Name:      "contribute",
			Usage:     "move native value into the global pool",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*native `AMOUNT`",
				},
				nonceFlag,
			},
			Action: runContribute,
		},
		{
			Name:      "create-mint",
			Usage:     "define an entity asset (admin)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: " mint `ADDRESS` [default: new random address]",
				},
				cli.UintFlag{
					Name:  "decimals, d",
					Value: 6,
					Usage: " display `DECIMALS`",
				},
				nonceFlag,
			},
			Action: runCreateMint,
		},
		{
			Name:      "mint-and-fund",
			Usage:     "mint an entity's supply and fund its vault (admin)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "entity, e",
					Value: "",
					Usage: "*entity `ID`",
				},
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*mint `ADDRESS`",
				},
				cli.UintFlag{
					Name:  "decimals, d",
					Value: 6,
					Usage: " mint `DECIMALS`",
				},
				cli.Uint64Flag{
					Name:  "supply, s",
					Value: 0,
					Usage: "*total `SUPPLY` minted to the admin",
				},
				cli.Uint64Flag{
					Name:  "vault, f",
					Value: 0,
					Usage: "*`AMOUNT` moved to the vault",
				},
				nonceFlag,
			},
			Action: runMintAndFund,
		},
		{
			Name:      "reveal",
			Usage:     "create a pack and fund it from the vaults (admin)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				entitiesFlag,
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*`AMOUNT` per entity",
				},
				nonceFlag,
			},
			Action: runReveal,
		},
		{
			Name:      "claim",
			Usage:     "move holdings from a pack to the identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				entitiesFlag,
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*`AMOUNT` per entity",
				},
				nonceFlag,
			},
			Action: runClaim,
		},
		{
			Name:   "pool",
			Usage:  "display the global pool",
			Action: runPool,
		},
		{
			Name:      "vault",
			Usage:     "display an entity vault",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "entity, e",
					Value: "",
					Usage: "*entity `ID`",
				},
			},
			Action: runVault,
		},
		{
			Name:      "pack",
			Usage:     "display a pack and its holdings",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				entitiesFlag,
			},
			Action: runPack,
		},
		{
			Name:  "packs",
			Usage: "list revealed packs",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " start at pack `ADDRESS`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " number of packs `COUNT`",
				},
			},
			Action: runPacks,
		},
		{
			Name:  "balance",
			Usage: "display a native balance",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " `ADDRESS` [default: identity]",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "asset-balance",
			Usage:     "display an associated asset balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `ADDRESS` [default: identity]",
				},
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*mint `ADDRESS`",
				},
			},
			Action: runAssetBalance,
		},
		{
			Name:      "airdrop",
			Usage:     "credit native value on a test chain",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " `ADDRESS` [default: identity]",
				},
				cli.Uint64Flag{
					Name:  "amount, m",
					Value: 0,
					Usage: "*native `AMOUNT`",
				},
			},
			Action: runAirdrop,
		},
		{
			Name:   "info",
			Usage:  "display packd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display pack-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		network := c.GlobalString("network")
		switch network {
		case chain.Live, chain.Testing, chain.Local:
		case "test":
			network = chain.Testing
		default:
			return fmt.Errorf("network: %q can only be live/testing/local", network)
		}

		c.App.Metadata["config"] = &metadata{
			identity: c.GlobalString("identity"),
			password: c.GlobalString("password"),
			connect:  c.GlobalString("connect"),
			testnet:  chain.IsTesting(network),
			verbose:  c.GlobalBool("verbose"),
			e:        c.App.ErrWriter,
			w:        c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
