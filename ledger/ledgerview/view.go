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

// Package ledgerview declares the abstract ledger object store every
// evaluator reads and mutates through, and memview, an in-memory
// reference implementation of it. The split mirrors the teacher's own
// separation of ledger/ledgercore (types) from the mutable cow overlay
// that reads and writes them — here the overlay is pushed behind an
// interface so ledger/eval and ledger/apply never depend on a concrete
// storage engine.
package ledgerview

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/edcchain/evalcore/data/basics"
	"github.com/edcchain/evalcore/ledger/feesched"
	"github.com/edcchain/evalcore/ledger/ledgercore"
)

// FeeList selects which per-asset custom fee schedule GetCustomFee
// consults: Settings.TransferFees or Settings.BlindTransferFees. Both
// are percentage schedules; only the asset the resulting fee is
// charged in differs between them.
type FeeList int

const (
	// TransferFeeList resolves against Settings.TransferFees.
	TransferFeeList FeeList = iota
	// BlindTransferFeeList resolves against Settings.BlindTransferFees.
	BlindTransferFeeList
)

// SettingsFee is the value GetCustomFee returns. Percent is always
// meaningful; FeeAssetID names the asset the fee is charged in once
// Percent is applied to the transferred amount. For TransferFeeList,
// FeeAssetID is the asset id the lookup was keyed by (callers resolve
// the fee-paying asset separately); for BlindTransferFeeList it is read
// straight from the matching BlindTransferFee entry.
type SettingsFee struct {
	Percent    uint16
	FeeAssetID basics.AssetID
}

// View is the ledger's abstract object store: typed lookups, mutation
// through a mutator callback (the teacher's own accessor shape, see
// ledger/internal's roundCowState, generalized here to graphene-style
// object ids instead of 32-byte addresses), and the handful of
// evaluator-facing derived queries (fee schedule, percent resolution,
// rank-based fee percent) spec.md's "Ledger View" names explicitly.
//
// Implementations must guarantee that a transaction whose evaluation is
// abandoned (do_evaluate returned an error, or a later operation in the
// same transaction failed) leaves every object exactly as it was before
// the transaction began — ledger/eval relies on this to implement
// atomic rejection without buffering its own copy of touched objects.
type View interface {
	// HeadBlockTime is the only clock the evaluator consults; hardfork
	// gating reads this and nothing else.
	HeadBlockTime() time.Time

	// Account, Asset, AssetDynamicData, Settings and WitnessesInfo are
	// the typed find<T>/get<T> half of the contract. The bool result is
	// false when no object with that id exists.
	Account(id basics.AccountID) (*ledgercore.Account, bool)
	Asset(id basics.AssetID) (*ledgercore.Asset, bool)
	AssetDynamicData(id basics.AssetID) (*ledgercore.AssetDynamicData, bool)
	Settings() (*ledgercore.Settings, bool)
	WitnessesInfo() (*ledgercore.WitnessesInfo, bool)

	// ModifyAccount through ModifyWitnessesInfo apply mutator to the
	// named object in place. They return MissingSingleton-kinded errors
	// (ledgercore.Error) when the object does not exist.
	ModifyAccount(id basics.AccountID, mutator func(*ledgercore.Account)) error
	ModifyAsset(id basics.AssetID, mutator func(*ledgercore.Asset)) error
	ModifyAssetDynamicData(id basics.AssetID, mutator func(*ledgercore.AssetDynamicData)) error
	ModifySettings(mutator func(*ledgercore.Settings)) error
	ModifyWitnessesInfo(mutator func(*ledgercore.WitnessesInfo)) error

	// CreateBlindTransfer2Record and CreateFbaAccumulator are the
	// create<T> half of the contract this core actually exercises;
	// Account/Asset creation is out of scope (spec.md §3).
	CreateBlindTransfer2Record(factory func(*ledgercore.BlindTransfer2Record)) uuid.UUID
	CreateFbaAccumulator(factory func(*ledgercore.FbaAccumulator)) uuid.UUID

	// FbaAccumulator and ModifyFbaAccumulator let pay_fba_fee find and
	// credit an existing bucket by its correlation id.
	FbaAccumulator(id uuid.UUID) (*ledgercore.FbaAccumulator, bool)
	ModifyFbaAccumulator(id uuid.UUID, mutator func(*ledgercore.FbaAccumulator)) error

	// AdjustBalance applies a signed delta to account's balance of
	// delta.AssetID, returning an InsufficientBalance-kinded error if
	// the result would go negative.
	AdjustBalance(account basics.AccountID, delta basics.Asset) error
	// GetBalance reads account's balance of asset, defaulting to zero
	// for an account with no entry.
	GetBalance(account basics.AccountID, asset basics.AssetID) basics.Share

	// CurrentFeeSchedule returns the fee parameters in effect for the
	// current head block.
	CurrentFeeSchedule() feesched.Parameters
	// CashbackVestingThreshold is get_global_properties().parameters
	// .cashback_vesting_threshold.
	CashbackVestingThreshold() basics.Share

	// GetCustomFee resolves a per-asset entry from list, reporting
	// whether one is configured.
	GetCustomFee(list FeeList, asset basics.AssetID) (SettingsFee, bool)
	// GetPercent converts a basis-points-like percent value into an
	// exact rational, the single point where percent/fee arithmetic
	// enters decimal math instead of integer truncation.
	GetPercent(percent uint16) decimal.Decimal
	// GetAccountFeeEDCPercentByRank resolves the post-HF636 per-rank EDC
	// fee percent for account.
	GetAccountFeeEDCPercentByRank(account basics.AccountID) uint16

	// ToPrettyString renders asset for diagnostics only; never consulted
	// by consensus-path logic.
	ToPrettyString(asset basics.Asset) string
}
