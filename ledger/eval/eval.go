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

// Package eval holds the generic per-transaction evaluation life-cycle
// every operation evaluator in ledger/apply shares: fee resolution,
// fee-asset authorization, fee conversion/burning and fee payment. The
// split mirrors the teacher's BlockEvaluator/roundCowState pairing: this
// package owns the shared control flow, ledger/apply owns the
// variant-specific do_evaluate/do_apply bodies.
package eval

import (
	"github.com/google/uuid"

	"github.com/edcchain/evalcore/data/basics"
	"github.com/edcchain/evalcore/ledger/hardfork"
	"github.com/edcchain/evalcore/ledger/ledgercore"
	"github.com/edcchain/evalcore/ledger/ledgerview"
	"github.com/edcchain/evalcore/ledger/policy"
	"github.com/edcchain/evalcore/logging"
)

// TransactionEvaluationState is the mutable context one transaction's
// operation evaluation shares across prepare_fee/do_evaluate/do_apply/
// convert_fee/pay_fee, then discards. It is never reused across
// transactions.
type TransactionEvaluationState struct {
	View  ledgerview.View
	Rules hardfork.RuleSet

	// SkipFee suppresses ConvertFee/PayFee/PayFBAFee, the Go analogue of
	// the original's state.skip_fee escape hatch for fee-exempt
	// operations (update_blind_transfer2_settings, allow_create_asset).
	SkipFee bool

	// Fields below are resolved and cached by PrepareFee, mirroring the
	// original prepare_fee's caching of fee_paying_account/fee_asset/
	// fee_asset_dyn_data for the remainder of the operation.
	Payer           basics.AccountID
	PayerAccount    *ledgercore.Account
	Fee             basics.Asset
	FeeAsset        *ledgercore.Asset
	FeeAssetDynData *ledgercore.AssetDynamicData
	CoreFeePaid     basics.Share
}

// Evaluator is the dispatch contract StartEvaluate drives. AmountAsset
// reports the asset a transfer-shaped operation moves, for the
// post-HF620 fee-asset check; ok is false for operations that carry no
// fee-asset-matches-amount-asset constraint (e.g.
// update_blind_transfer2_settings).
type Evaluator interface {
	FeePayer() basics.AccountID
	OpFee() basics.Asset
	AmountAsset() (basics.AssetID, bool)
	DoEvaluate(state *TransactionEvaluationState) (basics.Asset, error)
	DoApply(state *TransactionEvaluationState) (basics.Asset, error)
}

// StartEvaluate runs the generic life-cycle: the post-HF620 fee-asset
// check, then do_evaluate, then — when apply is true — do_apply.
// do_evaluate must not mutate view; ledger/apply evaluators honor this
// by construction (each only calls ledgerview.View mutators from
// DoApply).
func StartEvaluate(view ledgerview.View, rules hardfork.RuleSet, ev Evaluator, apply bool) (basics.Asset, error) {
	if assetID, ok := ev.AmountAsset(); ok && rules.RequireFeeMatchesPayingAsset {
		feePayingAsset := basics.CoreAsset
		if asset, found := view.Asset(assetID); found {
			feePayingAsset = asset.Options.FeePayingAsset
		}
		if ev.OpFee().AssetID != feePayingAsset {
			return basics.Asset{}, ledgercore.Newf(ledgercore.WrongFeeAsset, "asset", assetID)
		}
	}

	state := &TransactionEvaluationState{View: view, Rules: rules}
	result, err := ev.DoEvaluate(state)
	if err != nil {
		logging.Base().WithFields(logging.Fields{"payer": ev.FeePayer()}).Debug("operation rejected in do_evaluate")
		return basics.Asset{}, err
	}
	recordEvaluated()
	if !apply {
		return result, nil
	}
	result, err = ev.DoApply(state)
	if err != nil {
		return basics.Asset{}, err
	}
	recordApplied()
	return result, nil
}

// PrepareFee resolves and validates the fee side of an operation,
// called at the end of each value-transfer evaluator's DoEvaluate,
// after its asset-specific checks. It caches the payer account and fee
// asset on state for ConvertFee/PayFee to reuse.
func PrepareFee(state *TransactionEvaluationState, payer basics.AccountID, fee basics.Asset) error {
	if fee.Amount < 0 {
		return ledgercore.Newf(ledgercore.WrongFeeAmount, "fee", fee)
	}

	payerAccount, ok := state.View.Account(payer)
	if !ok {
		return ledgercore.Newf(ledgercore.MissingSingleton, "account", payer)
	}

	var feeAsset *ledgercore.Asset
	if fee.AssetID != basics.CoreAsset {
		feeAsset, ok = state.View.Asset(fee.AssetID)
		if !ok {
			return ledgercore.Newf(ledgercore.MissingSingleton, "asset", fee.AssetID)
		}
		if state.Rules.RequireFeeAssetAuthorization && !policy.IsAuthorizedAsset(payer, *feeAsset) {
			return ledgercore.Newf(ledgercore.TransferFromAccountNotWhitelisted, "account", payer)
		}
	}

	// The committee restriction list is an external collaborator this
	// core does not persist; a deployment wiring one in passes it
	// through a ledgerview.View-backed policy.RestrictionList instead of
	// nil here.
	if !policy.NotRestrictedAccount(nil, payer, policy.Payer) {
		return ledgercore.Newf(ledgercore.TransferFromAccountRestricted, "account", payer)
	}
	if payerAccount.VerificationIsRequired {
		return ledgercore.Newf(ledgercore.AccountRequiresVerification, "account", payer)
	}

	coreFeePaid := fee.Amount
	if fee.AssetID != basics.CoreAsset {
		converted, err := feeAsset.Options.CoreExchangeRate.Mul(fee)
		if err != nil {
			return ledgercore.Wrap(err)
		}
		if converted.AssetID != basics.CoreAsset {
			return ledgercore.Newf(ledgercore.WrongFeeAsset, "asset", converted.AssetID)
		}
		coreFeePaid = converted.Amount
	}

	var feeAssetDynData *ledgercore.AssetDynamicData
	if fee.AssetID != basics.CoreAsset {
		feeAssetDynData, ok = state.View.AssetDynamicData(fee.AssetID)
		if !ok {
			return ledgercore.Newf(ledgercore.MissingSingleton, "asset_dynamic_data", fee.AssetID)
		}
	}

	state.Payer = payer
	state.PayerAccount = payerAccount
	state.Fee = fee
	state.FeeAsset = feeAsset
	state.FeeAssetDynData = feeAssetDynData
	state.CoreFeePaid = coreFeePaid
	return nil
}

// ConvertFee burns or pools the fee collected by PrepareFee, called
// from DoApply unless state.SkipFee. CORE-denominated fees have no
// fee-asset bookkeeping to perform; CORE is its own fee pool.
func ConvertFee(state *TransactionEvaluationState) error {
	if state.SkipFee || state.Fee.AssetID == basics.CoreAsset {
		return nil
	}

	if state.Rules.BurnFees {
		err := state.View.ModifyAssetDynamicData(state.Fee.AssetID, func(d *ledgercore.AssetDynamicData) {
			d.CurrentSupply -= state.Fee.Amount
			d.FeeBurnt += state.Fee.Amount
		})
		if err != nil {
			return err
		}
		if state.Fee.AssetID == basics.EDCAsset {
			if settings, ok := state.View.Settings(); ok && settings.WitnessFeesPercent > 0 {
				if wErr := state.View.ModifyWitnessesInfo(func(w *ledgercore.WitnessesInfo) {
					w.WitnessFeesRewardEDCAmount += state.Fee.Amount
				}); wErr != nil {
					return wErr
				}
			}
		}
		recordFeeBurnt(state.Fee.AssetID, state.Fee.Amount)
		return nil
	}

	return state.View.ModifyAssetDynamicData(state.Fee.AssetID, func(d *ledgercore.AssetDynamicData) {
		d.AccumulatedFees += state.Fee.Amount
		d.FeePool -= state.CoreFeePaid
	})
}

// PayFee records the payer's core-denominated fee contribution against
// the chain's cashback vesting threshold. The per-account vesting
// ledger itself is the "statistics handle" spec.md §3 leaves as an
// out-of-scope collaborator, so PayFee's observable effect here is
// limited to the metrics counter; a deployment wiring a real statistics
// store plugs it in at this call site.
func PayFee(state *TransactionEvaluationState) error {
	if state.SkipFee {
		return nil
	}
	_ = state.View.CashbackVestingThreshold()
	recordFeePaid(state.CoreFeePaid)
	return nil
}

// PayFBAFee credits core_fee_paid to the fee-backed-asset accumulator
// identified by bucket, falling back to PayFee when no such bucket
// exists.
func PayFBAFee(state *TransactionEvaluationState, bucket uuid.UUID) error {
	if state.SkipFee {
		return nil
	}
	if _, ok := state.View.FbaAccumulator(bucket); ok {
		return state.View.ModifyFbaAccumulator(bucket, func(f *ledgercore.FbaAccumulator) {
			f.Accumulated += state.CoreFeePaid
		})
	}
	return PayFee(state)
}
