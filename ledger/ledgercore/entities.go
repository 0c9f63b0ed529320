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

// Package ledgercore holds the object types the ledger view stores and
// mutates, the Go analogue of the teacher's AccountData/AssetParams
// family but reshaped around this chain's graphene-style object-id
// model: small dense integers identify objects instead of the teacher's
// 32-byte addresses, and every asset (not just one native unit) carries
// its own dynamic supply/fee-pool record.
package ledgercore

import (
	"github.com/edcchain/evalcore/config"
	"github.com/edcchain/evalcore/data/basics"
	"github.com/google/uuid"
)

// Account is a ledger account object.
type Account struct {
	ID   basics.AccountID
	Name string

	// Balances holds every asset balance this account carries, keyed by
	// asset id.
	Balances map[basics.AssetID]basics.Share

	// Rank selects the account's tier for the post-HF636 per-rank EDC fee
	// percent.
	Rank basics.AccountRank

	// VerificationIsRequired blocks the account from paying a fee until
	// some out-of-scope verification step completes.
	VerificationIsRequired bool

	// BurningModeEnabled marks an account that destroys incoming
	// transfers instead of crediting them.
	BurningModeEnabled bool

	// EdcLimitTransfersEnabled gates the EDC daily transfer limit check.
	EdcLimitTransfersEnabled bool

	// EdcTransfersMaxAmount overrides Settings.EdcTransfersDailyLimit
	// when positive.
	EdcTransfersMaxAmount basics.Share

	// EdcTransfersAmountCounter accumulates same-day outgoing EDC
	// transfer volume against the daily limit.
	EdcTransfersAmountCounter basics.Share

	// EdcTransfersCount counts outgoing EDC transfers, independent of
	// the limit check.
	EdcTransfersCount uint64

	// EdcBurnt accumulates EDC amounts this account sent to a burning
	// destination (post-HF636 bookkeeping).
	EdcBurnt basics.Share
}

// Balance returns the account's balance of id, defaulting to zero.
func (a *Account) Balance(id basics.AssetID) basics.Share {
	if a.Balances == nil {
		return 0
	}
	return a.Balances[id]
}

// AssetOptions is the configuration block attached to an Asset, the Go
// analogue of graphene's asset_options: permission/flag bits, the core
// exchange rate, and a link to the fee-paying asset for this asset's
// network fees.
type AssetOptions struct {
	// MaxSupply is the asset's configured supply ceiling; the
	// asset-definition operations' Validate requires it in
	// (0, basics.MaxShareSupply].
	MaxSupply basics.Share

	// IssuerPermissions is the set of bits the issuer is allowed to flip
	// in Flags, masked against config.Params.AssetIssuerPermissionMask.
	IssuerPermissions uint32

	// Flags is the live subset of IssuerPermissions currently in effect
	// (whitelist required, transfer restricted, force-settle disabled,
	// globally settled, witness/committee-fed, market-issued).
	Flags uint32

	// CoreExchangeRate converts this asset to and from CoreAsset, used
	// to turn a fee paid in this asset into its CoreAsset equivalent
	// (core_fee_paid).
	CoreExchangeRate basics.Price

	// FeePayingAsset is the asset id a transfer of this asset must pay
	// its fee in (post-HF620).
	FeePayingAsset basics.AssetID

	// WhitelistAuthorities, when non-empty together with the WhiteList
	// flag, are the accounts whose whitelisting decides authorization.
	WhitelistAuthorities []basics.AccountID

	// BlacklistAuthorities are always consulted regardless of the
	// WhiteList flag.
	BlacklistAuthorities []basics.AccountID
}

// HasFlag reports whether bit is set in o.Flags.
func (o AssetOptions) HasFlag(bit uint32) bool { return o.Flags&bit != 0 }

// Asset is an asset definition object.
type Asset struct {
	ID        basics.AssetID
	Issuer    basics.AccountID
	Symbol    string
	Precision uint8
	Options   AssetOptions

	// CanOverride permits the issuer to move this asset out of any
	// account's balance via override_transfer.
	CanOverride bool
}

// TransferRestricted reports whether this asset's flags require the
// issuer to be a party to every transfer.
func (a Asset) TransferRestricted() bool { return a.Options.HasFlag(config.TransferRestricted) }

// MarketIssued reports whether this asset was created by the market
// rather than a direct issuer, forbidding it from being burned by a
// transfer to a burning-mode destination.
func (a Asset) MarketIssued() bool { return a.Options.HasFlag(config.MarketIssued) }

// AssetDynamicData is the mutable half of an asset's state: supply,
// accumulated fees and the legacy fee pool, kept apart from Asset the
// way graphene separates asset_object from asset_dynamic_data_object so
// that a transfer's fee accounting never needs to touch the (rarely
// changing) asset definition.
type AssetDynamicData struct {
	AssetID       basics.AssetID
	CurrentSupply basics.Share

	// AccumulatedFees is the legacy (pre-HF623) fee-pool accrual.
	AccumulatedFees basics.Share

	// FeePool backs this asset's ability to pay network fees when it is
	// used as the fee-paying asset (legacy, pre-HF623).
	FeePool basics.Share

	// FeeBurnt is the post-HF623 destination for collected fees:
	// supply is reduced instead of accruing to a pool.
	FeeBurnt basics.Share
}

// Settings is the chain-wide singleton configuration object, identified
// by object id zero the way graphene reserves id 0 for its global
// property object.
type Settings struct {
	// TransferFees is a percentage fee schedule for plain transfers,
	// keyed by asset id.
	TransferFees map[basics.AssetID]uint16

	// BlindTransferFees is a percentage fee schedule for blind transfers,
	// keyed by the transferred asset's id. Unlike TransferFees, each
	// entry also names the asset the resulting fee is charged in, which
	// need not be the transferred asset.
	BlindTransferFees map[basics.AssetID]BlindTransferFee

	// BlindTransferDefaultFee is the fee charged when no per-asset entry
	// is present in BlindTransferFees.
	BlindTransferDefaultFee basics.Asset

	// EdcTransfersDailyLimit is the default per-account daily EDC
	// transfer cap, overridden by Account.EdcTransfersMaxAmount when set.
	EdcTransfersDailyLimit basics.Share

	// WitnessFeesPercent, when positive, routes part of every burnt EDC
	// fee into WitnessesInfo.WitnessFeesRewardEDCAmount.
	WitnessFeesPercent uint16
}

// GetCustomFee looks up a percentage fee by asset id, reporting whether
// an entry exists.
func (s Settings) GetCustomFee(id basics.AssetID) (uint16, bool) {
	v, ok := s.TransferFees[id]
	return v, ok
}

// BlindTransferFee is one entry of Settings.BlindTransferFees: a
// percentage of the transferred amount, charged in FeeAssetID rather
// than necessarily the transferred asset itself.
type BlindTransferFee struct {
	FeeAssetID basics.AssetID
	Percent    uint16
}

// GetBlindFee looks up a blind-transfer fee percent by the transferred
// asset's id, reporting whether an entry exists.
func (s Settings) GetBlindFee(id basics.AssetID) (BlindTransferFee, bool) {
	v, ok := s.BlindTransferFees[id]
	return v, ok
}

// WitnessesInfo is the second chain-wide singleton object, tracking
// rewards accrued to block witnesses from burnt fees.
type WitnessesInfo struct {
	WitnessFeesRewardEDCAmount basics.Share
}

// RankFeeTable resolves the post-HF636 per-rank EDC fee percent. Ranks
// beyond the configured table fall back to the highest configured rank
// at or below the requested one.
type RankFeeTable map[basics.AccountRank]uint16

// PercentFor returns the fee percent for rank, falling back to the
// highest configured rank at or below it.
func (t RankFeeTable) PercentFor(rank basics.AccountRank) uint16 {
	bestRank, pct, found := basics.Default, uint16(0), false
	for r, p := range t {
		if r <= rank && (!found || r > bestRank) {
			bestRank, pct, found = r, p, true
		}
	}
	return pct
}

// FbaAccumulator buckets fee-backed-asset style accrual by a correlation
// id, mirroring graphene's fba_accumulator_object.
type FbaAccumulator struct {
	ID         uuid.UUID
	AssetID    basics.AssetID
	Accumulated basics.Share
}

// BlindTransfer2Record is the audit record created on every blind
// transfer, carrying the block time it settled at, its memo and the fee
// actually applied.
type BlindTransfer2Record struct {
	ID        uuid.UUID
	From      basics.AccountID
	To        basics.AccountID
	Amount    basics.Asset
	Fee       basics.Asset
	Memo      string
	CreatedAt int64
}
