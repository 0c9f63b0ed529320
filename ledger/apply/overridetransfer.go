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
	"github.com/edcchain/evalcore/ledger/ledgercore"
	"github.com/edcchain/evalcore/ledger/policy"
)

// OverrideTransfer lets an asset's issuer forcibly move balance between
// two accounts, bypassing the sender's consent entirely (spec §4.4).
// Authorization and restriction checks still apply to both endpoints;
// only the sender's own agreement is skipped.
type OverrideTransfer struct {
	Op transactions.OverrideTransferFields

	assetType *ledgercore.Asset
	toBurning bool
}

// FeePayer implements eval.Evaluator. The issuer, not from, pays the
// fee for an override: from never consented to this operation.
func (o *OverrideTransfer) FeePayer() basics.AccountID { return o.Op.Issuer }

// OpFee implements eval.Evaluator.
func (o *OverrideTransfer) OpFee() basics.Asset { return o.Op.Fee }

// AmountAsset implements eval.Evaluator.
func (o *OverrideTransfer) AmountAsset() (basics.AssetID, bool) { return o.Op.Amount.AssetID, true }

// DoEvaluate implements eval.Evaluator.
func (o *OverrideTransfer) DoEvaluate(state *eval.TransactionEvaluationState) (basics.Asset, error) {
	view := state.View

	assetType, ok := view.Asset(o.Op.Amount.AssetID)
	if !ok {
		return basics.Asset{}, ledgercore.Newf(ledgercore.MissingSingleton, "asset", o.Op.Amount.AssetID)
	}
	if !assetType.CanOverride {
		return basics.Asset{}, ledgercore.Newf(ledgercore.OverrideTransferNotPermitted, "asset", assetType.ID)
	}
	if o.Op.Issuer != assetType.Issuer {
		return basics.Asset{}, ledgercore.Newf(ledgercore.WrongIssuer, "issuer", o.Op.Issuer)
	}

	if _, ok := view.Account(o.Op.From); !ok {
		return basics.Asset{}, ledgercore.Newf(ledgercore.MissingSingleton, "account", o.Op.From)
	}
	to, ok := view.Account(o.Op.To)
	if !ok {
		return basics.Asset{}, ledgercore.Newf(ledgercore.MissingSingleton, "account", o.Op.To)
	}

	if !policy.IsAuthorizedAsset(o.Op.From, *assetType) {
		return basics.Asset{}, ledgercore.Newf(ledgercore.TransferFromAccountNotWhitelisted, "account", o.Op.From)
	}
	if !policy.IsAuthorizedAsset(o.Op.To, *assetType) {
		return basics.Asset{}, ledgercore.Newf(ledgercore.TransferToAccountNotWhitelisted, "account", o.Op.To)
	}
	if !policy.NotRestrictedAccount(nil, o.Op.From, policy.Payer) {
		return basics.Asset{}, ledgercore.Newf(ledgercore.TransferFromAccountRestricted, "account", o.Op.From)
	}
	if !policy.NotRestrictedAccount(nil, o.Op.To, policy.Receiver) {
		return basics.Asset{}, ledgercore.Newf(ledgercore.TransferToAccountRestricted, "account", o.Op.To)
	}

	if view.GetBalance(o.Op.From, assetType.ID) < o.Op.Amount.Amount {
		return basics.Asset{}, ledgercore.Newf(ledgercore.InsufficientBalance, "account", o.Op.From)
	}

	o.toBurning = to.BurningModeEnabled
	if o.toBurning {
		if assetType.MarketIssued() {
			return basics.Asset{}, ledgercore.Newf(ledgercore.BurnOfMarketIssuedAssetForbidden, "asset", assetType.ID)
		}
		dyn, ok := view.AssetDynamicData(assetType.ID)
		if !ok {
			return basics.Asset{}, ledgercore.Newf(ledgercore.MissingSingleton, "asset_dynamic_data", assetType.ID)
		}
		if dyn.CurrentSupply-o.Op.Amount.Amount < 0 {
			return basics.Asset{}, ledgercore.Newf(ledgercore.InsufficientBalance, "asset", assetType.ID)
		}
	}

	if err := eval.PrepareFee(state, o.Op.Issuer, o.Op.Fee); err != nil {
		return basics.Asset{}, err
	}

	o.assetType = assetType
	return basics.Asset{}, nil
}

// DoApply implements eval.Evaluator.
func (o *OverrideTransfer) DoApply(state *eval.TransactionEvaluationState) (basics.Asset, error) {
	view := state.View

	if err := view.AdjustBalance(o.Op.From, basics.Asset{Amount: -o.Op.Amount.Amount, AssetID: o.Op.Amount.AssetID}); err != nil {
		return basics.Asset{}, err
	}

	if o.toBurning {
		if err := burnIntoSupply(view, o.assetType.ID, o.Op.Amount.Amount); err != nil {
			return basics.Asset{}, err
		}
	} else if err := view.AdjustBalance(o.Op.To, o.Op.Amount); err != nil {
		return basics.Asset{}, err
	}

	if err := eval.ConvertFee(state); err != nil {
		return basics.Asset{}, err
	}
	if err := eval.PayFee(state); err != nil {
		return basics.Asset{}, err
	}
	return basics.Asset{}, nil
}
