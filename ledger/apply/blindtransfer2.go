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

package apply

import (
	"github.com/edcchain/evalcore/data/basics"
	"github.com/edcchain/evalcore/data/transactions"
	"github.com/edcchain/evalcore/ledger/eval"
	"github.com/edcchain/evalcore/ledger/hardfork"
	"github.com/edcchain/evalcore/ledger/ledgercore"
	"github.com/edcchain/evalcore/ledger/ledgerview"
	"github.com/edcchain/evalcore/ledger/policy"
)

// BlindTransfer2 evaluates and applies a blind transfer (spec §4.3).
// Its preflight whitelist/restriction/transfer_restricted checks are
// identical to Transfer's; the fee it resolves is an amount charged in
// a specific fee asset (a percentage of the transferred amount from a
// matching BlindTransferFees entry, or the chain-wide default fee)
// rather than a percentage checked against op.fee, and it always leaves
// an audit record behind on success.
type BlindTransfer2 struct {
	Op transactions.BlindTransfer2Fields

	assetType   *ledgercore.Asset
	toBurning   bool
	edcTransfer bool
	customFee   basics.Asset
}

// FeePayer implements eval.Evaluator.
func (b *BlindTransfer2) FeePayer() basics.AccountID { return b.Op.From }

// OpFee implements eval.Evaluator.
func (b *BlindTransfer2) OpFee() basics.Asset { return b.Op.Fee }

// AmountAsset implements eval.Evaluator.
func (b *BlindTransfer2) AmountAsset() (basics.AssetID, bool) { return b.Op.Amount.AssetID, true }

// DoEvaluate implements eval.Evaluator.
func (b *BlindTransfer2) DoEvaluate(state *eval.TransactionEvaluationState) (basics.Asset, error) {
	view := state.View
	rules := state.Rules

	from, ok := view.Account(b.Op.From)
	if !ok {
		return basics.Asset{}, ledgercore.Newf(ledgercore.MissingSingleton, "account", b.Op.From)
	}
	to, ok := view.Account(b.Op.To)
	if !ok {
		return basics.Asset{}, ledgercore.Newf(ledgercore.MissingSingleton, "account", b.Op.To)
	}
	assetType, ok := view.Asset(b.Op.Amount.AssetID)
	if !ok {
		return basics.Asset{}, ledgercore.Newf(ledgercore.MissingSingleton, "asset", b.Op.Amount.AssetID)
	}

	if !policy.IsAuthorizedAsset(b.Op.From, *assetType) {
		return basics.Asset{}, ledgercore.Newf(ledgercore.TransferFromAccountNotWhitelisted, "account", b.Op.From)
	}
	if !policy.IsAuthorizedAsset(b.Op.To, *assetType) {
		return basics.Asset{}, ledgercore.Newf(ledgercore.TransferToAccountNotWhitelisted, "account", b.Op.To)
	}
	if !policy.NotRestrictedAccount(nil, b.Op.From, policy.Payer) {
		return basics.Asset{}, ledgercore.Newf(ledgercore.TransferFromAccountRestricted, "account", b.Op.From)
	}
	if !policy.NotRestrictedAccount(nil, b.Op.To, policy.Receiver) {
		return basics.Asset{}, ledgercore.Newf(ledgercore.TransferToAccountRestricted, "account", b.Op.To)
	}
	if assetType.TransferRestricted() && b.Op.From != assetType.Issuer && b.Op.To != assetType.Issuer {
		return basics.Asset{}, ledgercore.Newf(ledgercore.TransferRestrictedAsset, "asset", assetType.ID)
	}

	b.edcTransfer = b.Op.Amount.AssetID == basics.EDCAsset
	b.toBurning = to.BurningModeEnabled
	burningExcluded := rules.RankBasedEDCFees && b.toBurning

	if rules.EdcLimitOnBlindTransfer && b.edcTransfer && from.EdcLimitTransfersEnabled && !burningExcluded {
		maxAmount := from.EdcTransfersMaxAmount
		if maxAmount <= 0 {
			settings, ok := view.Settings()
			if !ok {
				return basics.Asset{}, ledgercore.New(ledgercore.MissingSingleton)
			}
			maxAmount = settings.EdcTransfersDailyLimit
		}
		total := from.EdcTransfersAmountCounter + b.Op.Amount.Amount
		exceeded := total >= maxAmount
		if rules.CounterInclusive {
			exceeded = total > maxAmount
		}
		if exceeded {
			return basics.Asset{}, ledgercore.Newf(ledgercore.DailyLimitExceeded, "account", b.Op.From)
		}
	}

	customFee, err := b.resolveCustomFee(view, rules, from, assetType, burningExcluded)
	if err != nil {
		return basics.Asset{}, err
	}
	b.customFee = customFee

	if customFee.AssetID == assetType.ID {
		if view.GetBalance(b.Op.From, assetType.ID) < b.Op.Amount.Amount+customFee.Amount {
			return basics.Asset{}, ledgercore.Newf(ledgercore.InsufficientBalance, "account", b.Op.From)
		}
	} else {
		if view.GetBalance(b.Op.From, assetType.ID) < b.Op.Amount.Amount {
			return basics.Asset{}, ledgercore.Newf(ledgercore.InsufficientBalance, "account", b.Op.From)
		}
		if customFee.Amount > 0 && view.GetBalance(b.Op.From, customFee.AssetID) < customFee.Amount {
			return basics.Asset{}, ledgercore.Newf(ledgercore.InsufficientBalanceForFee, "account", b.Op.From)
		}
	}

	if rules.CustomPercentageFees && customFee.Amount > 0 && b.Op.Fee.AssetID != customFee.AssetID {
		return basics.Asset{}, ledgercore.Newf(ledgercore.WrongFeeAsset, "asset", customFee.AssetID)
	}

	if b.toBurning {
		if assetType.MarketIssued() {
			return basics.Asset{}, ledgercore.Newf(ledgercore.BurnOfMarketIssuedAssetForbidden, "asset", assetType.ID)
		}
		dyn, ok := view.AssetDynamicData(assetType.ID)
		if !ok {
			return basics.Asset{}, ledgercore.Newf(ledgercore.MissingSingleton, "asset_dynamic_data", assetType.ID)
		}
		burnFee := basics.Share(0)
		if customFee.AssetID == assetType.ID {
			burnFee = customFee.Amount
		}
		if dyn.CurrentSupply-(b.Op.Amount.Amount+burnFee) < 0 {
			return basics.Asset{}, ledgercore.Newf(ledgercore.InsufficientBalance, "asset", assetType.ID)
		}
	}

	if err := eval.PrepareFee(state, b.Op.From, b.Op.Fee); err != nil {
		return basics.Asset{}, err
	}

	b.assetType = assetType
	return basics.Asset{}, nil
}

// resolveCustomFee picks the blind-transfer fee (spec §4.3): a
// percentage of the transferred amount, charged in whichever asset the
// matching BlindTransferFees entry names, falling back to the
// chain-wide default when none matches. It gains a post-HF636
// rank-based EDC fee branch ahead of that lookup, mirroring
// transfer.go's resolveFeePercent/GetAccountFeeEDCPercentByRank use.
// The pre-HF636 zero-fee special case for burning destinations is
// preserved verbatim.
func (b *BlindTransfer2) resolveCustomFee(view ledgerview.View, rules hardfork.RuleSet, from *ledgercore.Account, assetType *ledgercore.Asset, burningExcluded bool) (basics.Asset, error) {
	settings, ok := view.Settings()
	if !ok {
		return basics.Asset{}, ledgercore.New(ledgercore.MissingSingleton)
	}
	defaultFee := settings.BlindTransferDefaultFee

	// Pre-HF636 (not yet excluding burning destinations from counters
	// and fees), a burning destination pays no blind-transfer fee at
	// all: the legacy special case spec §4.3 fixes verbatim.
	if b.toBurning && !burningExcluded {
		return basics.Asset{Amount: 0, AssetID: assetType.ID}, nil
	}
	if !rules.CustomPercentageFees {
		return defaultFee, nil
	}
	if burningExcluded {
		return basics.Asset{Amount: 0, AssetID: assetType.ID}, nil
	}

	if rules.RankBasedEDCFees && assetType.ID == basics.EDCAsset && from.Rank > basics.Default {
		percent := view.GetAccountFeeEDCPercentByRank(from.ID)
		amnt := applyPercent(view.GetPercent(percent), b.Op.Amount.Amount)
		return basics.Asset{Amount: amnt, AssetID: basics.EDCAsset}, nil
	}

	if fee, ok := view.GetCustomFee(ledgerview.BlindTransferFeeList, assetType.ID); ok {
		amnt := applyPercent(view.GetPercent(fee.Percent), b.Op.Amount.Amount)
		return basics.Asset{Amount: amnt, AssetID: fee.FeeAssetID}, nil
	}
	return defaultFee, nil
}

// DoApply implements eval.Evaluator. It returns the fee asset actually
// applied, the one piece of evaluator-specific result spec.md's
// OpResult carries for this operation.
func (b *BlindTransfer2) DoApply(state *eval.TransactionEvaluationState) (basics.Asset, error) {
	view := state.View
	rules := state.Rules

	if err := view.AdjustBalance(b.Op.From, basics.Asset{Amount: -b.Op.Amount.Amount, AssetID: b.Op.Amount.AssetID}); err != nil {
		return basics.Asset{}, err
	}

	if !rules.CustomPercentageFees && b.customFee.Amount > 0 {
		if err := view.AdjustBalance(b.Op.From, basics.Asset{Amount: -b.customFee.Amount, AssetID: b.customFee.AssetID}); err != nil {
			return basics.Asset{}, err
		}
		if err := burnIntoSupply(view, b.customFee.AssetID, b.customFee.Amount); err != nil {
			return basics.Asset{}, err
		}
	}

	if b.toBurning {
		if err := burnIntoSupply(view, b.assetType.ID, b.Op.Amount.Amount); err != nil {
			return basics.Asset{}, err
		}
		if rules.RankBasedEDCFees && b.edcTransfer {
			if err := view.ModifyAccount(b.Op.From, func(a *ledgercore.Account) {
				a.EdcBurnt += b.Op.Amount.Amount
			}); err != nil {
				return basics.Asset{}, err
			}
		}
	} else if err := view.AdjustBalance(b.Op.To, b.Op.Amount); err != nil {
		return basics.Asset{}, err
	}

	if rules.CustomPercentageFees && b.edcTransfer {
		trackCounter := !(rules.RankBasedEDCFees && b.toBurning)
		if err := view.ModifyAccount(b.Op.From, func(a *ledgercore.Account) {
			if trackCounter {
				a.EdcTransfersAmountCounter += b.Op.Amount.Amount
			}
			a.EdcTransfersCount++
		}); err != nil {
			return basics.Asset{}, err
		}
	}

	// Read before CreateBlindTransfer2Record: the factory runs while the
	// view holds its own lock, so it must not call back into the view.
	createdAt := view.HeadBlockTime().Unix()
	view.CreateBlindTransfer2Record(func(r *ledgercore.BlindTransfer2Record) {
		r.From = b.Op.From
		r.To = b.Op.To
		r.Amount = b.Op.Amount
		r.Fee = b.customFee
		r.Memo = b.Op.Memo
		r.CreatedAt = createdAt
	})

	if err := eval.ConvertFee(state); err != nil {
		return basics.Asset{}, err
	}
	if err := eval.PayFee(state); err != nil {
		return basics.Asset{}, err
	}
	return b.customFee, nil
}
