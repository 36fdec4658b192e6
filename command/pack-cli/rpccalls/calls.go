// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/packd/address"
	"github.com/bitmark-inc/packd/instruction"
	"github.com/bitmark-inc/packd/program"
	"github.com/bitmark-inc/packd/rpc/accounts"
	"github.com/bitmark-inc/packd/rpc/instructions"
	"github.com/bitmark-inc/packd/rpc/node"
	"github.com/bitmark-inc/packd/rpc/packs"
	"github.com/bitmark-inc/packd/rpc/pool"
	"github.com/bitmark-inc/packd/rpc/vault"
)

// Submit - send a signed instruction
func (c *Client) Submit(packed instruction.Packed) (*instructions.SubmitReply, error) {
	reply := &instructions.SubmitReply{}
	err := c.call("Instruction.Submit", &instructions.SubmitArguments{Packed: packed}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Pool - global pool state
func (c *Client) Pool() (*program.PoolInfo, error) {
	reply := &program.PoolInfo{}
	err := c.call("Pool.Get", &pool.GetArguments{}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Vault - vault state of an entity
func (c *Client) Vault(entityId string) (*program.VaultInfo, error) {
	reply := &program.VaultInfo{}
	err := c.call("Vault.Get", &vault.GetArguments{EntityId: entityId}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Pack - record and holdings of a pack
func (c *Client) Pack(entities [instruction.EntityCount]string) (*program.PackInfo, error) {
	reply := &program.PackInfo{}
	err := c.call("Pack.Get", &packs.GetArguments{Entities: entities}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// ListPacks - page of revealed packs
func (c *Client) ListPacks(start address.Address, count int) (*packs.ListReply, error) {
	reply := &packs.ListReply{}
	err := c.call("Pack.List", &packs.ListArguments{Start: start, Count: count}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Balance - native balance of an address
func (c *Client) Balance(a address.Address) (*accounts.BalanceReply, error) {
	reply := &accounts.BalanceReply{}
	err := c.call("Ledger.Balance", &accounts.BalanceArguments{Address: a}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// AssetBalance - amount in an owner's associated account for a mint
func (c *Client) AssetBalance(owner address.Address, mint address.Address) (*accounts.AssetBalanceReply, error) {
	reply := &accounts.AssetBalanceReply{}
	err := c.call("Ledger.AssetBalance", &accounts.AssetBalanceArguments{Owner: owner, Mint: mint}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Airdrop - credit native value on a test chain
func (c *Client) Airdrop(a address.Address, amount uint64) (*accounts.AirdropReply, error) {
	reply := &accounts.AirdropReply{}
	err := c.call("Ledger.Airdrop", &accounts.AirdropArguments{Address: a, Amount: amount}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Info - daemon status
func (c *Client) Info() (*node.InfoReply, error) {
	reply := &node.InfoReply{}
	err := c.call("Node.Info", &node.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
