// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/packd/address"
	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/instruction"
	"github.com/bitmark-inc/packd/ledger"
)

// Holding - one pack sub-account
type Holding struct {
	EntityId string          `json:"entityId"`
	Address  address.Address `json:"address"`
	Mint     address.Address `json:"mint"`
	Amount   uint64          `json:"amount,string"`
}

// PackInfo - committed state of a pack
type PackInfo struct {
	Address  address.Address                  `json:"address"`
	Record   *PackState                       `json:"record"`
	Holdings [instruction.EntityCount]Holding `json:"holdings"`
}

// addresses touched by a pack for each entity
type entitySlot struct {
	vault address.Address
	mint  address.Address
	sub   address.Address
	found bool
}

// RevealPack - create a pack and fund its sub-accounts from the vaults
func (p *Program) RevealPack(admin address.Address, entities [instruction.EntityCount]string, amountPerEntity uint64) (address.Address, error) {
	return p.revealPack(nil, admin, entities, amountPerEntity)
}

func (p *Program) revealPack(op *operation, admin address.Address, entities [instruction.EntityCount]string, amountPerEntity uint64) (address.Address, error) {
	if err := p.checkAdmin(admin); nil != err {
		return address.Address{}, err
	}
	pack, bump, err := PackAddress(entities)
	if nil != err {
		return address.Address{}, err
	}
	if 0 == amountPerEntity {
		return address.Address{}, fault.InvalidAmount
	}

	pool, _, err := PoolAddress()
	if nil != err {
		return address.Address{}, err
	}
	poolRecord, _, err := p.poolState(pool)
	if nil != err {
		return address.Address{}, err
	}

	slots, err := p.slots(pool, pack, entities)
	if nil != err {
		return address.Address{}, err
	}

	lock := []address.Address{pack}
	for _, s := range slots {
		if s.found {
			lock = append(lock, s.vault, s.sub)
		}
	}

	record := &PackState{
		Bump:     bump,
		Entities: entities,
	}
	vaultAuthority := ledger.DerivedFrom(poolProof(poolRecord.Bump))

	err = p.run(op, lock, func(tx *ledger.Tx) error {
		if isProgramAccount(tx, pack) {
			return fault.DuplicatePack
		}

		data := record.Pack()
		err := tx.CreateAccount(pack, len(data), Identifier, ledger.DerivedFrom(packProof(record)))
		if nil != err {
			return err
		}
		err = tx.SetData(pack, data)
		if nil != err {
			return err
		}

		for _, s := range slots {
			if !s.found {
				return fault.AccountMissing
			}
			m, err := tx.Mint(s.mint)
			if nil != err {
				return err
			}
			_, err = tx.EnsureAssociated(pack, s.mint)
			if nil != err {
				return err
			}
			err = tx.TransferAsset(s.vault, s.sub, s.mint, vaultAuthority, amountPerEntity, m.Decimals)
			if nil != err {
				return vaultShortfall(err)
			}
		}

		tx.PutPackIndex(pack, data)

		p.log.Infof("reveal pack: %s  entities: %q  amount: %d", pack, entities, amountPerEntity)
		return nil
	})
	if nil != err {
		return address.Address{}, err
	}
	return pack, nil
}

// vault, mint and sub-account of each entity from committed state
//
// a vault's mint is fixed at creation so it is safe to read before locking
func (p *Program) slots(pool address.Address, pack address.Address, entities [instruction.EntityCount]string) ([instruction.EntityCount]entitySlot, error) {
	slots := [instruction.EntityCount]entitySlot{}
	for i, entityId := range entities {
		vault, _, err := VaultAddress(pool, entityId)
		if nil != err {
			return slots, err
		}
		slots[i].vault = vault

		account, err := p.ledger.AssetAccount(vault)
		if nil != err {
			continue
		}
		sub, err := ledger.Associated(pack, account.Mint)
		if nil != err {
			return slots, err
		}
		slots[i].mint = account.Mint
		slots[i].sub = sub
		slots[i].found = true
	}
	return slots, nil
}

// Pack - committed record and holdings of a pack
func (p *Program) Pack(entities [instruction.EntityCount]string) (*PackInfo, error) {
	pack, _, err := PackAddress(entities)
	if nil != err {
		return nil, err
	}
	record, err := p.packState(pack)
	if nil != err {
		return nil, err
	}
	pool, _, err := PoolAddress()
	if nil != err {
		return nil, err
	}
	slots, err := p.slots(pool, pack, record.Entities)
	if nil != err {
		return nil, err
	}

	info := &PackInfo{
		Address: pack,
		Record:  record,
	}
	for i, s := range slots {
		info.Holdings[i].EntityId = record.Entities[i]
		if !s.found {
			continue
		}
		info.Holdings[i].Address = s.sub
		info.Holdings[i].Mint = s.mint
		if account, err := p.ledger.AssetAccount(s.sub); nil == err {
			info.Holdings[i].Amount = account.Amount
		}
	}
	return info, nil
}

// PackEntry - one item of the pack index
type PackEntry struct {
	Address address.Address `json:"address"`
	Record  *PackState      `json:"record"`
}

// ListPacks - packs in address order starting at start
//
// returns the entries and the address to continue from, a zero
// address when the index is exhausted
func (p *Program) ListPacks(start address.Address, count int) ([]PackEntry, address.Address, error) {
	elements, err := p.ledger.PackIndex(start, count)
	if nil != err {
		return nil, address.Address{}, err
	}

	packs := make([]PackEntry, 0, len(elements))
	for _, e := range elements {
		a, err := address.New(e.Key)
		if nil != err {
			return nil, address.Address{}, err
		}
		record, err := UnpackPackState(e.Value)
		if nil != err {
			return nil, address.Address{}, err
		}
		packs = append(packs, PackEntry{Address: a, Record: record})
	}

	if len(packs) < count {
		return packs, address.Address{}, nil
	}
	return packs, successor(packs[len(packs)-1].Address), nil
}

// next address in byte order, zero after the last one
func successor(a address.Address) address.Address {
	for i := len(a) - 1; i >= 0; i -= 1 {
		a[i] += 1
		if 0 != a[i] {
			break
		}
	}
	return a
}

// committed pack record
func (p *Program) packState(pack address.Address) (*PackState, error) {
	account, err := p.ledger.NativeAccount(pack)
	if nil != err {
		return nil, fault.InvalidPackDerivation
	}
	if Identifier != account.Owner {
		return nil, fault.InvalidPackDerivation
	}
	return UnpackPackState(account.Data)
}
