// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/packd/address"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/ledger"
)

// VaultInfo - committed state of an entity vault
type VaultInfo struct {
	EntityId string          `json:"entityId"`
	Address  address.Address `json:"address"`
	Mint     address.Address `json:"mint"`
	Owner    address.Address `json:"owner"`
	Amount   uint64          `json:"amount,string"`
}

// CreateEntityMint - define an entity asset with the admin as mint authority
func (p *Program) CreateEntityMint(admin address.Address, mint address.Address, decimals uint8) error {
	return p.createMint(nil, admin, mint, decimals)
}

func (p *Program) createMint(op *operation, admin address.Address, mint address.Address, decimals uint8) error {
	if err := p.checkAdmin(admin); nil != err {
		return err
	}
	if mint.IsZero() {
		return fault.InvalidAccountData
	}

	return p.run(op, []address.Address{mint}, func(tx *ledger.Tx) error {
		err := tx.CreateMint(mint, admin, decimals)
		if nil != err {
			return err
		}
		p.log.Infof("create mint: %s  decimals: %d", mint, decimals)
		return nil
	})
}

// MintAndFund - mint the total supply to the admin and fund the entity vault
//
// the admin keeps totalSupply - vaultAmount
func (p *Program) MintAndFund(admin address.Address, entityId string, mint address.Address, decimals uint8, totalSupply uint64, vaultAmount uint64) error {
	return p.mintAndFund(nil, admin, entityId, mint, decimals, totalSupply, vaultAmount)
}

func (p *Program) mintAndFund(op *operation, admin address.Address, entityId string, mint address.Address, decimals uint8, totalSupply uint64, vaultAmount uint64) error {
	if err := p.checkAdmin(admin); nil != err {
		return err
	}
	if err := checkIdentifier(entityId); nil != err {
		return err
	}
	if vaultAmount > totalSupply {
		return fault.VaultAmountExceedsSupply
	}

	pool, _, err := PoolAddress()
	if nil != err {
		return err
	}
	if _, _, err := p.poolState(pool); nil != err {
		return err
	}

	vault, _, err := VaultAddress(pool, entityId)
	if nil != err {
		return err
	}
	holding, err := ledger.Associated(admin, mint)
	if nil != err {
		return err
	}

	return p.run(op, []address.Address{mint, holding, vault}, func(tx *ledger.Tx) error {
		_, err := tx.EnsureAssociated(admin, mint)
		if nil != err {
			return err
		}
		err = tx.MintAsset(mint, holding, ledger.SignedBy(admin), totalSupply)
		if nil != err {
			return err
		}

		if _, err := tx.AssetAccount(vault); nil != err {
			err = tx.CreateAssetAccount(vault, mint, pool)
			if nil != err {
				return err
			}
		}

		err = tx.TransferAsset(holding, vault, mint, ledger.SignedBy(admin), vaultAmount, decimals)
		if nil != err {
			return err
		}

		p.log.Infof("mint and fund: %q  mint: %s  supply: %d  vault: %d", entityId, mint, totalSupply, vaultAmount)
		return nil
	})
}

// Vault - committed state of an entity vault
func (p *Program) Vault(entityId string) (*VaultInfo, error) {
	pool, _, err := PoolAddress()
	if nil != err {
		return nil, err
	}
	vault, _, err := VaultAddress(pool, entityId)
	if nil != err {
		return nil, err
	}
	account, err := p.ledger.AssetAccount(vault)
	if nil != err {
		return nil, err
	}

	info := &VaultInfo{
		EntityId: entityId,
		Address:  vault,
		Mint:     account.Mint,
		Owner:    account.Owner,
		Amount:   account.Amount,
	}
	return info, nil
}
