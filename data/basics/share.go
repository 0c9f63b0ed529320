// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package basics

import "fmt"

// Share is the signed quantity type for every monetary amount on the ledger
// (balances, supplies, fees). It mirrors the role of Algorand's MicroAlgos,
// but the chain this core serves models all assets uniformly rather than
// giving its native unit a distinct wire type.
type Share int64

// MaxShareSupply is the ceiling any asset's current_supply or max_supply may
// ever reach.
const MaxShareSupply Share = 1_000_000_000_000_000_00

// AccountID identifies an account by its ledger object id. Object ids in
// this chain's lineage are small dense integers assigned at creation time,
// not cryptographic addresses — signature/authority resolution is a
// separate, out-of-scope collaborator.
type AccountID uint64

func (id AccountID) String() string { return fmt.Sprintf("account:%d", uint64(id)) }

// IsZero reports whether id is the zero value (used as "no account").
func (id AccountID) IsZero() bool { return id == 0 }

// AssetID identifies an asset by its ledger object id.
type AssetID uint64

func (id AssetID) String() string { return fmt.Sprintf("asset:%d", uint64(id)) }

// Two distinguished asset identities threaded throughout the evaluator.
const (
	// CoreAsset is the chain's native unit; historical fee pools are
	// denominated in it.
	CoreAsset AssetID = 0
	// EDCAsset is the primary transactable unit and, in the common case,
	// also the fee-paying asset.
	EDCAsset AssetID = 1
)

// AccountRank selects a tier used to resolve a per-rank EDC fee percent
// after HF636.
type AccountRank int

// Default is the zero rank; every account starts here.
const Default AccountRank = 0

// Asset is an amount denominated in a specific asset, the Go analogue of
// graphene's `asset` value type (amount + asset_id).
type Asset struct {
	Amount  Share
	AssetID AssetID
}

// IsZero reports whether the amount is exactly zero, irrespective of asset.
func (a Asset) IsZero() bool { return a.Amount == 0 }
