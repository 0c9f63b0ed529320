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
)

// UpdateBlindTransfer2Settings mutates the chain-wide blind-transfer
// fee schedule (spec §4.5). It carries no value-transfer amount of its
// own, so it is exempt from both the post-HF620 fee-asset check (it
// reports AmountAsset's ok as false) and fee settlement — the same
// state.SkipFee escape hatch ledger/eval.TransactionEvaluationState
// documents for governance-only operations.
type UpdateBlindTransfer2Settings struct {
	Op     transactions.UpdateBlindTransfer2SettingsFields
	Payer  basics.AccountID
	OpFee_ basics.Asset
}

// FeePayer implements eval.Evaluator.
func (u *UpdateBlindTransfer2Settings) FeePayer() basics.AccountID { return u.Payer }

// OpFee implements eval.Evaluator.
func (u *UpdateBlindTransfer2Settings) OpFee() basics.Asset { return u.OpFee_ }

// AmountAsset implements eval.Evaluator. ok is false: this operation
// moves no value and so carries no fee-asset-matches-amount-asset
// constraint.
func (u *UpdateBlindTransfer2Settings) AmountAsset() (basics.AssetID, bool) { return 0, false }

// DoEvaluate implements eval.Evaluator.
func (u *UpdateBlindTransfer2Settings) DoEvaluate(state *eval.TransactionEvaluationState) (basics.Asset, error) {
	if _, ok := state.View.Settings(); !ok {
		return basics.Asset{}, ledgercore.New(ledgercore.MissingSingleton)
	}
	state.SkipFee = true
	return basics.Asset{}, nil
}

// DoApply implements eval.Evaluator.
func (u *UpdateBlindTransfer2Settings) DoApply(state *eval.TransactionEvaluationState) (basics.Asset, error) {
	err := state.View.ModifySettings(func(s *ledgercore.Settings) {
		s.BlindTransferDefaultFee = u.Op.DefaultFee
		if len(u.Op.Fees) == 0 {
			return
		}
		if s.BlindTransferFees == nil {
			s.BlindTransferFees = make(map[basics.AssetID]ledgercore.BlindTransferFee, len(u.Op.Fees))
		}
		for id, fee := range u.Op.Fees {
			s.BlindTransferFees[id] = ledgercore.BlindTransferFee{FeeAssetID: fee.FeeAssetID, Percent: fee.Percent}
		}
	})
	return basics.Asset{}, err
}
