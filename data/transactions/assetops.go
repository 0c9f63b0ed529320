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

package transactions

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/edcchain/evalcore/config"
	"github.com/edcchain/evalcore/config/bounds"
	"github.com/edcchain/evalcore/data/basics"
	"github.com/edcchain/evalcore/ledger/ledgercore"
)

var symbolPattern = regexp.MustCompile(`^[A-Z][A-Z0-9.]*$`)

// IsValidSymbol reports whether symbol satisfies the asset symbol
// grammar: [A-Z0-9.], starting with an uppercase letter, at most one
// '.', within the configured length bounds.
func IsValidSymbol(symbol string) bool {
	if len(symbol) < bounds.MinAssetSymbolLength || len(symbol) > bounds.MaxAssetSymbolLength {
		return false
	}
	if strings.Count(symbol, ".") > 1 {
		return false
	}
	return symbolPattern.MatchString(symbol)
}

func validateOptions(o ledgercore.AssetOptions) error {
	if o.MaxSupply <= 0 || o.MaxSupply > basics.MaxShareSupply {
		return fmt.Errorf("max supply must be in (0, %d]", basics.MaxShareSupply)
	}
	if o.IssuerPermissions&^config.DefaultParams().AssetIssuerPermissionMask != 0 {
		return fmt.Errorf("issuer_permissions has bits outside the known mask")
	}
	if o.Flags&config.GlobalSettle != 0 {
		return fmt.Errorf("global_settle may only be granted as a permission, never set directly in flags")
	}
	const fedMask = config.WitnessFedAsset | config.CommitteeFedAsset
	if o.Flags&fedMask == fedMask {
		return fmt.Errorf("witness_fed and committee_fed flags are mutually exclusive")
	}
	if err := o.CoreExchangeRate.Validate(); err != nil {
		return err
	}
	if o.CoreExchangeRate.Base.AssetID != basics.CoreAsset && o.CoreExchangeRate.Quote.AssetID != basics.CoreAsset {
		return fmt.Errorf("core_exchange_rate must have CoreAsset on one side")
	}
	if (len(o.WhitelistAuthorities) > 0 || len(o.BlacklistAuthorities) > 0) && o.Flags&config.WhiteList == 0 {
		return fmt.Errorf("white_list flag must be set when whitelist or blacklist authorities are configured")
	}
	return nil
}

// AssetCreateFields creates a new asset.
type AssetCreateFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Issuer    basics.AccountID        `codec:"issuer"`
	Symbol    string                  `codec:"symbol"`
	Precision uint8                   `codec:"precision"`
	Options   ledgercore.AssetOptions `codec:"options"`
	Fee       basics.Asset            `codec:"fee"`
}

// Validate checks the symbol grammar, the embedded options, and the
// precision bound.
func (a AssetCreateFields) Validate() error {
	if a.Fee.Amount < 0 {
		return fmt.Errorf("fee must be non-negative")
	}
	if !IsValidSymbol(a.Symbol) {
		return fmt.Errorf("invalid symbol %q", a.Symbol)
	}
	if a.Precision > bounds.MaxAssetPrecision {
		return fmt.Errorf("precision must be at most %d", bounds.MaxAssetPrecision)
	}
	return validateOptions(a.Options)
}

// AssetUpdateFields mutates an existing asset's options.
type AssetUpdateFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Issuer        basics.AccountID         `codec:"issuer"`
	AssetToUpdate basics.AssetID           `codec:"asset_to_update"`
	NewIssuer     *basics.AccountID        `codec:"new_issuer"`
	NewOptions    ledgercore.AssetOptions  `codec:"new_options"`
	Fee           basics.Asset             `codec:"fee"`
}

// Validate checks that a declared new issuer actually differs from the
// current one, that new_options is valid, and that its core exchange
// rate converts 1 unit of the asset being updated to CORE.
func (a AssetUpdateFields) Validate() error {
	if a.Fee.Amount < 0 {
		return fmt.Errorf("fee must be non-negative")
	}
	if a.NewIssuer != nil && *a.NewIssuer == a.Issuer {
		return fmt.Errorf("new_issuer must differ from the current issuer")
	}
	if err := validateOptions(a.NewOptions); err != nil {
		return err
	}
	converted, err := a.NewOptions.CoreExchangeRate.Mul(basics.Asset{Amount: 1, AssetID: a.AssetToUpdate})
	if err != nil || converted.AssetID != basics.CoreAsset {
		return fmt.Errorf("core_exchange_rate must convert asset_to_update to CoreAsset")
	}
	return nil
}

// AssetUpdate2Fields is the zero-fee successor to AssetUpdateFields.
type AssetUpdate2Fields AssetUpdateFields

// Validate mirrors AssetUpdateFields.Validate.
func (a AssetUpdate2Fields) Validate() error {
	return AssetUpdateFields(a).Validate()
}

// PriceFeed is a single witness/committee-reported price observation.
type PriceFeed struct {
	SettlementPrice  basics.Price `codec:"settlement_price"`
	CoreExchangeRate basics.Price `codec:"core_exchange_rate"`
}

func (f PriceFeed) validate(assetID basics.AssetID) error {
	if f.SettlementPrice.IsNull() {
		return fmt.Errorf("settlement_price must not be null")
	}
	if f.CoreExchangeRate.IsNull() {
		return fmt.Errorf("core_exchange_rate must not be null")
	}
	if err := f.CoreExchangeRate.Validate(); err != nil {
		return err
	}
	if f.SettlementPrice.Base.AssetID != f.CoreExchangeRate.Base.AssetID {
		return fmt.Errorf("settlement_price and core_exchange_rate must share a base asset")
	}
	if f.SettlementPrice.Base.AssetID != assetID && f.SettlementPrice.Quote.AssetID != assetID {
		return fmt.Errorf("settlement_price is not denominated in the fed asset")
	}
	return nil
}

// AssetPublishFeedFields submits a price feed for a market-pegged asset.
type AssetPublishFeedFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Publisher basics.AccountID `codec:"publisher"`
	AssetID   basics.AssetID   `codec:"asset_id"`
	Feed      PriceFeed        `codec:"feed"`
	Fee       basics.Asset     `codec:"fee"`
}

// Validate checks the embedded feed.
func (a AssetPublishFeedFields) Validate() error {
	if a.Fee.Amount < 0 {
		return fmt.Errorf("fee must be non-negative")
	}
	return a.Feed.validate(a.AssetID)
}

// AssetReserveFields burns a quantity of an asset out of the issuer's
// own balance, reducing current_supply.
type AssetReserveFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Payer            basics.AccountID `codec:"payer"`
	AmountToReserve  basics.Asset     `codec:"amount_to_reserve"`
	Fee              basics.Asset     `codec:"fee"`
}

// Validate checks the reserved amount is positive and within range.
func (a AssetReserveFields) Validate() error {
	if a.Fee.Amount < 0 {
		return fmt.Errorf("fee must be non-negative")
	}
	if a.AmountToReserve.Amount <= 0 || a.AmountToReserve.Amount > basics.MaxShareSupply {
		return fmt.Errorf("amount_to_reserve must be in (0, %d]", basics.MaxShareSupply)
	}
	return nil
}

// AssetIssueFields mints new units of an asset to an account.
type AssetIssueFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Issuer      basics.AccountID `codec:"issuer"`
	AssetToIssue basics.Asset    `codec:"asset_to_issue"`
	IssueTo     basics.AccountID `codec:"issue_to"`
	Memo        string           `codec:"memo"`
	Fee         basics.Asset     `codec:"fee"`
}

// Validate checks the issued amount is positive, in range, and never
// CoreAsset (CORE has no issuer to mint from).
func (a AssetIssueFields) Validate() error {
	if a.Fee.Amount < 0 {
		return fmt.Errorf("fee must be non-negative")
	}
	if a.AssetToIssue.Amount <= 0 || a.AssetToIssue.Amount > basics.MaxShareSupply {
		return fmt.Errorf("asset_to_issue amount must be in (0, %d]", basics.MaxShareSupply)
	}
	if a.AssetToIssue.AssetID == basics.CoreAsset {
		return fmt.Errorf("cannot issue CoreAsset")
	}
	return nil
}

// DailyIssueFields mirrors AssetIssueFields for the scheduled daily
// issuance path.
type DailyIssueFields AssetIssueFields

// Validate mirrors AssetIssueFields.Validate.
func (d DailyIssueFields) Validate() error { return AssetIssueFields(d).Validate() }

// ReferralIssueFields mirrors AssetIssueFields for referral-reward
// issuance.
type ReferralIssueFields AssetIssueFields

// Validate mirrors AssetIssueFields.Validate.
func (r ReferralIssueFields) Validate() error { return AssetIssueFields(r).Validate() }

// BonusFields issues a bonus amount to an account. Preserved verbatim
// from the original: unlike AssetIssueFields it has no upper-bound
// check on the amount, only the CoreAsset exclusion.
type BonusFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Issuer       basics.AccountID `codec:"issuer"`
	AssetToIssue basics.Asset     `codec:"asset_to_issue"`
	IssueTo      basics.AccountID `codec:"issue_to"`
	Fee          basics.Asset     `codec:"fee"`
}

// Validate checks only that the asset is not CoreAsset, matching the
// original's asymmetrically permissive bonus_operation::validate.
func (b BonusFields) Validate() error {
	if b.AssetToIssue.AssetID == basics.CoreAsset {
		return fmt.Errorf("cannot issue CoreAsset as a bonus")
	}
	return nil
}

// AssetFundFeePoolFields tops up an asset's legacy CORE fee pool.
type AssetFundFeePoolFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Payer   basics.AccountID `codec:"payer"`
	AssetID basics.AssetID   `codec:"asset_id"`
	Amount  basics.Share     `codec:"amount"`
	Fee     basics.Asset     `codec:"fee"`
}

// Validate requires the fee be paid in CoreAsset and the amount positive.
func (a AssetFundFeePoolFields) Validate() error {
	if a.Fee.Amount < 0 {
		return fmt.Errorf("fee must be non-negative")
	}
	if a.Fee.AssetID != basics.CoreAsset {
		return fmt.Errorf("fee must be paid in CoreAsset")
	}
	if a.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}

// EdcAssetFundFeePoolFields mirrors AssetFundFeePoolFields, requiring
// its fee in EDCAsset instead.
type EdcAssetFundFeePoolFields AssetFundFeePoolFields

// Validate mirrors AssetFundFeePoolFields.Validate with EDCAsset in
// place of CoreAsset.
func (e EdcAssetFundFeePoolFields) Validate() error {
	if e.Fee.Amount < 0 {
		return fmt.Errorf("fee must be non-negative")
	}
	if e.Fee.AssetID != basics.EDCAsset {
		return fmt.Errorf("fee must be paid in EDCAsset")
	}
	if e.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}

// AssetClaimFeesFields withdraws accumulated fees from an asset's
// dynamic data to the issuer.
type AssetClaimFeesFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Issuer        basics.AccountID `codec:"issuer"`
	AmountToClaim basics.Asset     `codec:"amount_to_claim"`
	Fee           basics.Asset     `codec:"fee"`
}

// Validate requires a positive claim amount.
func (a AssetClaimFeesFields) Validate() error {
	if a.Fee.Amount < 0 {
		return fmt.Errorf("fee must be non-negative")
	}
	if a.AmountToClaim.Amount <= 0 {
		return fmt.Errorf("amount_to_claim must be positive")
	}
	return nil
}

// AssetSettleFields requests a market-issued asset be redeemed for its
// backing collateral.
type AssetSettleFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Account basics.AccountID `codec:"account"`
	Amount  basics.Asset     `codec:"amount"`
	Fee     basics.Asset     `codec:"fee"`
}

// Validate requires a non-negative settle amount, matching the
// original's permissive (>= 0, not > 0) check.
func (a AssetSettleFields) Validate() error {
	if a.Fee.Amount < 0 {
		return fmt.Errorf("fee must be non-negative")
	}
	if a.Amount.Amount < 0 {
		return fmt.Errorf("amount must be non-negative")
	}
	return nil
}

// AssetUpdateFeedProducersFields replaces the set of accounts permitted
// to publish a price feed for an asset.
type AssetUpdateFeedProducersFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Issuer      basics.AccountID   `codec:"issuer"`
	AssetID     basics.AssetID     `codec:"asset_id"`
	NewFeedProducers []basics.AccountID `codec:"new_feed_producers"`
	Fee         basics.Asset       `codec:"fee"`
}

// Validate checks only the fee sign, matching the original.
func (a AssetUpdateFeedProducersFields) Validate() error {
	if a.Fee.Amount < 0 {
		return fmt.Errorf("fee must be non-negative")
	}
	return nil
}

// AllowCreateAssetFields is a governance-gated permission grant letting
// an account call AssetCreateFields. Its fee is always zero.
type AllowCreateAssetFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Grantor basics.AccountID `codec:"grantor"`
	Account basics.AccountID `codec:"account"`
}

// Validate is a no-op; the operation carries no content to check beyond
// its own existence.
func (AllowCreateAssetFields) Validate() error { return nil }

// BitassetOptions configures a market-pegged asset.
type BitassetOptions struct {
	MinimumFeeds                 uint8  `codec:"minimum_feeds"`
	ForceSettlementOffsetPercent uint16 `codec:"force_settlement_offset_percent"`
	MaximumForceSettlementVolume uint16 `codec:"maximum_force_settlement_volume"`
}

// Validate checks the feed quorum and the two percent bounds.
func (b BitassetOptions) Validate() error {
	if b.MinimumFeeds == 0 {
		return fmt.Errorf("minimum_feeds must be positive")
	}
	scale := config.DefaultParams().PercentScale
	if b.ForceSettlementOffsetPercent > scale {
		return fmt.Errorf("force_settlement_offset_percent exceeds 100%%")
	}
	if b.MaximumForceSettlementVolume > scale {
		return fmt.Errorf("maximum_force_settlement_volume exceeds 100%%")
	}
	return nil
}

// AssetUpdateBitassetFields mutates a market-pegged asset's bitasset
// options.
type AssetUpdateBitassetFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Issuer     basics.AccountID `codec:"issuer"`
	AssetID    basics.AssetID   `codec:"asset_id"`
	NewOptions BitassetOptions  `codec:"new_options"`
	Fee        basics.Asset     `codec:"fee"`
}

// Validate checks the fee sign and the embedded options.
func (a AssetUpdateBitassetFields) Validate() error {
	if a.Fee.Amount < 0 {
		return fmt.Errorf("fee must be non-negative")
	}
	return a.NewOptions.Validate()
}

// AssetGlobalSettleFields forces every holder of a market-issued asset
// to settle at settle_price, used when a bitasset's collateral fails.
type AssetGlobalSettleFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Issuer        basics.AccountID `codec:"issuer"`
	AssetToSettle basics.AssetID   `codec:"asset_to_settle"`
	SettlePrice   basics.Price     `codec:"settle_price"`
	Fee           basics.Asset     `codec:"fee"`
}

// Validate requires the settle price's base leg to be the asset being
// settled.
func (a AssetGlobalSettleFields) Validate() error {
	if a.Fee.Amount < 0 {
		return fmt.Errorf("fee must be non-negative")
	}
	if a.SettlePrice.Base.AssetID != a.AssetToSettle {
		return fmt.Errorf("settle_price base must be asset_to_settle")
	}
	return nil
}
