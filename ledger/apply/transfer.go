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

// Package apply holds one evaluator per operation variant — the
// teacher's own apply package shape (apply.Payment, apply.AssetConfig,
// one file per txn type dispatched by eval.BlockEvaluator) generalized
// to this chain's value-transfer family. Each evaluator implements
// eval.Evaluator: FeePayer/OpFee/AmountAsset feed the generic
// fee-asset check in eval.StartEvaluate, DoEvaluate is a pure dry-run
// over the ledger view, and DoApply is the only place that mutates it.
package apply

import (
	"github.com/shopspring/decimal"

	"github.com/edcchain/evalcore/data/basics"
	"github.com/edcchain/evalcore/data/transactions"
	"github.com/edcchain/evalcore/ledger/eval"
	"github.com/edcchain/evalcore/ledger/hardfork"
	"github.com/edcchain/evalcore/ledger/ledgercore"
	"github.com/edcchain/evalcore/ledger/ledgerview"
	"github.com/edcchain/evalcore/ledger/policy"
)

// Transfer evaluates and applies a plain value transfer (spec §4.2).
// The fields resolved by DoEvaluate and consumed by DoApply are cached
// on the struct itself rather than on TransactionEvaluationState: they
// are specific to this evaluator's own op, not shared scaffolding.
type Transfer struct {
	Op transactions.TransferFields

	assetType    *ledgercore.Asset
	toBurning    bool
	edcTransfer  bool
	trackCounter bool
}

// FeePayer implements eval.Evaluator.
func (t *Transfer) FeePayer() basics.AccountID { return t.Op.From }

// OpFee implements eval.Evaluator.
func (t *Transfer) OpFee() basics.Asset { return t.Op.Fee }

// AmountAsset implements eval.Evaluator.
func (t *Transfer) AmountAsset() (basics.AssetID, bool) { return t.Op.Amount.AssetID, true }

// DoEvaluate implements eval.Evaluator. It never mutates view: every
// assertion below either returns an error or finishes populating t's
// cached fields for DoApply.
func (t *Transfer) DoEvaluate(state *eval.TransactionEvaluationState) (basics.Asset, error) {
	view := state.View
	rules := state.Rules

	from, ok := view.Account(t.Op.From)
	if !ok {
		return basics.Asset{}, ledgercore.Newf(ledgercore.MissingSingleton, "account", t.Op.From)
	}
	to, ok := view.Account(t.Op.To)
	if !ok {
		return basics.Asset{}, ledgercore.Newf(ledgercore.MissingSingleton, "account", t.Op.To)
	}
	assetType, ok := view.Asset(t.Op.Amount.AssetID)
	if !ok {
		return basics.Asset{}, ledgercore.Newf(ledgercore.MissingSingleton, "asset", t.Op.Amount.AssetID)
	}

	feeAssetType := assetType
	if assetType.Options.FeePayingAsset != assetType.ID {
		if a, found := view.Asset(assetType.Options.FeePayingAsset); found {
			feeAssetType = a
		} else {
			// Legacy test ledgers configure no fee_paying_asset at all;
			// fall back to CORE rather than reject.
			feeAssetType = &ledgercore.Asset{ID: basics.CoreAsset}
		}
	}

	if !policy.IsAuthorizedAsset(t.Op.From, *assetType) {
		return basics.Asset{}, ledgercore.Newf(ledgercore.TransferFromAccountNotWhitelisted, "account", t.Op.From)
	}
	if !policy.IsAuthorizedAsset(t.Op.To, *assetType) {
		return basics.Asset{}, ledgercore.Newf(ledgercore.TransferToAccountNotWhitelisted, "account", t.Op.To)
	}
	if !policy.NotRestrictedAccount(nil, t.Op.From, policy.Payer) {
		return basics.Asset{}, ledgercore.Newf(ledgercore.TransferFromAccountRestricted, "account", t.Op.From)
	}
	if !policy.NotRestrictedAccount(nil, t.Op.To, policy.Receiver) {
		return basics.Asset{}, ledgercore.Newf(ledgercore.TransferToAccountRestricted, "account", t.Op.To)
	}
	if assetType.TransferRestricted() && t.Op.From != assetType.Issuer && t.Op.To != assetType.Issuer {
		return basics.Asset{}, ledgercore.Newf(ledgercore.TransferRestrictedAsset, "asset", assetType.ID)
	}

	t.edcTransfer = t.Op.Amount.AssetID == basics.EDCAsset
	t.toBurning = to.BurningModeEnabled
	burningExcluded := rules.RankBasedEDCFees && t.toBurning

	if rules.CustomPercentageFees && t.edcTransfer && from.EdcLimitTransfersEnabled && !burningExcluded {
		maxAmount := from.EdcTransfersMaxAmount
		if maxAmount <= 0 {
			settings, ok := view.Settings()
			if !ok {
				return basics.Asset{}, ledgercore.New(ledgercore.MissingSingleton)
			}
			maxAmount = settings.EdcTransfersDailyLimit
		}
		total := from.EdcTransfersAmountCounter + t.Op.Amount.Amount
		// Accept requires `max > total` pre-HF631, `max >= total`
		// post-HF631 (spec §4.2); negate for the rejection test.
		exceeded := total >= maxAmount
		if rules.CounterInclusive {
			exceeded = total > maxAmount
		}
		if exceeded {
			return basics.Asset{}, ledgercore.Newf(ledgercore.DailyLimitExceeded, "account", t.Op.From)
		}
	}

	feePercent := resolveFeePercent(view, rules, from, assetType, feeAssetType, t.Op.Fee, burningExcluded)

	var customFee basics.Share
	if feePercent > 0 {
		customFee = applyPercent(view.GetPercent(feePercent), t.Op.Amount.Amount)
		if view.GetBalance(t.Op.From, assetType.ID) < t.Op.Amount.Amount+customFee {
			return basics.Asset{}, ledgercore.Newf(ledgercore.InsufficientBalance, "account", t.Op.From)
		}
		if t.Op.Fee.Amount < customFee {
			return basics.Asset{}, ledgercore.Newf(ledgercore.WrongFeeAmount, "custom_fee", customFee)
		}
	} else if view.GetBalance(t.Op.From, assetType.ID) < t.Op.Amount.Amount {
		return basics.Asset{}, ledgercore.Newf(ledgercore.InsufficientBalance, "account", t.Op.From)
	}

	if t.toBurning {
		if assetType.MarketIssued() {
			return basics.Asset{}, ledgercore.Newf(ledgercore.BurnOfMarketIssuedAssetForbidden, "asset", assetType.ID)
		}
		dyn, ok := view.AssetDynamicData(assetType.ID)
		if !ok {
			return basics.Asset{}, ledgercore.Newf(ledgercore.MissingSingleton, "asset_dynamic_data", assetType.ID)
		}
		if dyn.CurrentSupply-(t.Op.Amount.Amount+customFee) < 0 {
			return basics.Asset{}, ledgercore.Newf(ledgercore.InsufficientBalance, "asset", assetType.ID)
		}
	}

	if err := eval.PrepareFee(state, t.Op.From, t.Op.Fee); err != nil {
		return basics.Asset{}, err
	}

	t.assetType = assetType
	t.trackCounter = !burningExcluded
	return basics.Asset{}, nil
}

// DoApply implements eval.Evaluator.
func (t *Transfer) DoApply(state *eval.TransactionEvaluationState) (basics.Asset, error) {
	view := state.View

	if err := view.AdjustBalance(t.Op.From, basics.Asset{Amount: -t.Op.Amount.Amount, AssetID: t.Op.Amount.AssetID}); err != nil {
		return basics.Asset{}, err
	}

	if t.toBurning {
		if err := burnIntoSupply(view, t.assetType.ID, t.Op.Amount.Amount); err != nil {
			return basics.Asset{}, err
		}
		if state.Rules.RankBasedEDCFees && t.edcTransfer {
			if err := view.ModifyAccount(t.Op.From, func(a *ledgercore.Account) {
				a.EdcBurnt += t.Op.Amount.Amount
			}); err != nil {
				return basics.Asset{}, err
			}
		}
	} else if err := view.AdjustBalance(t.Op.To, t.Op.Amount); err != nil {
		return basics.Asset{}, err
	}

	if state.Rules.CustomPercentageFees && t.edcTransfer {
		counted := t.trackCounter
		if err := view.ModifyAccount(t.Op.From, func(a *ledgercore.Account) {
			if counted {
				a.EdcTransfersAmountCounter += t.Op.Amount.Amount
			}
			a.EdcTransfersCount++
		}); err != nil {
			return basics.Asset{}, err
		}
	}

	if err := eval.ConvertFee(state); err != nil {
		return basics.Asset{}, err
	}
	if err := eval.PayFee(state); err != nil {
		return basics.Asset{}, err
	}
	return basics.Asset{}, nil
}

// resolveFeePercent implements the post-HF627 custom-fee selection
// tree of spec §4.2, preserved verbatim including its HF628/HF636
// asymmetry (see DESIGN.md).
func resolveFeePercent(view ledgerview.View, rules hardfork.RuleSet, from *ledgercore.Account, assetType, feeAssetType *ledgercore.Asset, opFee basics.Asset, burningExcluded bool) uint16 {
	if !rules.CustomPercentageFees {
		return 0
	}
	switch {
	case !rules.SelectFeeByFeeAsset:
		// Pre-HF628: keyed by the transferred amount's asset.
		if fee, ok := view.GetCustomFee(ledgerview.TransferFeeList, assetType.ID); ok {
			return fee.Percent
		}
		return 0
	case rules.RankBasedEDCFees && opFee.AssetID == basics.EDCAsset && from.Rank > basics.Default && !burningExcluded:
		return view.GetAccountFeeEDCPercentByRank(from.ID)
	case !rules.RankBasedEDCFees || !burningExcluded:
		// Post-HF628, pre-HF636 or a non-burning destination: keyed by
		// the fee-paying asset.
		if fee, ok := view.GetCustomFee(ledgerview.TransferFeeList, feeAssetType.ID); ok {
			return fee.Percent
		}
		return 0
	default:
		// Post-HF636, burning destination: excluded from custom fees.
		return 0
	}
}

// applyPercent computes round(amount * percent) with exact decimal
// arithmetic, never floating point.
func applyPercent(percent decimal.Decimal, amount basics.Share) basics.Share {
	return basics.Share(decimal.NewFromInt(int64(amount)).Mul(percent).Round(0).IntPart())
}

// burnIntoSupply decrements asset's current supply and credits its
// fee_burnt accumulator by amount, the shared shape every burning
// destination in this package applies.
func burnIntoSupply(view ledgerview.View, asset basics.AssetID, amount basics.Share) error {
	return view.ModifyAssetDynamicData(asset, func(d *ledgercore.AssetDynamicData) {
		d.CurrentSupply -= amount
		d.FeeBurnt += amount
	})
}
