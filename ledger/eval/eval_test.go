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

package eval

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/edcchain/evalcore/data/basics"
	"github.com/edcchain/evalcore/ledger/hardfork"
	"github.com/edcchain/evalcore/ledger/ledgercore"
	"github.com/edcchain/evalcore/ledger/ledgerview"
)

func newView() *ledgerview.MemView {
	v := ledgerview.New(time.Unix(0, 0), 0)
	v.PutAccount(&ledgercore.Account{ID: 1, Balances: map[basics.AssetID]basics.Share{basics.EDCAsset: 1000, basics.CoreAsset: 1000}})
	v.PutAsset(&ledgercore.Asset{ID: basics.EDCAsset, Symbol: "EDC", Options: ledgercore.AssetOptions{FeePayingAsset: basics.EDCAsset}})
	v.PutAssetDynamicData(&ledgercore.AssetDynamicData{AssetID: basics.EDCAsset, CurrentSupply: 1_000_000})
	v.PutSettings(&ledgercore.Settings{})
	v.PutWitnessesInfo(&ledgercore.WitnessesInfo{})
	return v
}

func TestPrepareFeeRejectsNegativeFee(t *testing.T) {
	v := newView()
	state := &TransactionEvaluationState{View: v}
	err := PrepareFee(state, 1, basics.Asset{Amount: -1, AssetID: basics.CoreAsset})
	require.Error(t, err)
}

func TestPrepareFeeCoreAssetSetsCoreFeePaidDirectly(t *testing.T) {
	v := newView()
	state := &TransactionEvaluationState{View: v}
	require.NoError(t, PrepareFee(state, 1, basics.Asset{Amount: 50, AssetID: basics.CoreAsset}))
	require.Equal(t, basics.Share(50), state.CoreFeePaid)
}

func TestPrepareFeeConvertsNonCoreFeeThroughExchangeRate(t *testing.T) {
	v := newView()
	v.PutAsset(&ledgercore.Asset{
		ID: basics.EDCAsset, Symbol: "EDC",
		Options: ledgercore.AssetOptions{
			FeePayingAsset: basics.EDCAsset,
			CoreExchangeRate: basics.Price{
				Base:  basics.Asset{Amount: 1, AssetID: basics.CoreAsset},
				Quote: basics.Asset{Amount: 2, AssetID: basics.EDCAsset},
			},
		},
	})
	state := &TransactionEvaluationState{View: v}
	require.NoError(t, PrepareFee(state, 1, basics.Asset{Amount: 10, AssetID: basics.EDCAsset}))
	require.Equal(t, basics.Share(5), state.CoreFeePaid)
}

func TestPrepareFeeRejectsAccountRequiringVerification(t *testing.T) {
	v := newView()
	v.PutAccount(&ledgercore.Account{ID: 2, VerificationIsRequired: true})
	state := &TransactionEvaluationState{View: v}
	err := PrepareFee(state, 2, basics.Asset{Amount: 0, AssetID: basics.CoreAsset})
	require.Error(t, err)
	require.True(t, ledgercore.New(ledgercore.AccountRequiresVerification).Is(err))
}

func TestConvertFeeBurnsPostHF623(t *testing.T) {
	v := newView()
	state := &TransactionEvaluationState{
		View:  v,
		Rules: hardfork.RuleSet{BurnFees: true},
		Fee:   basics.Asset{Amount: 10, AssetID: basics.EDCAsset},
	}
	require.NoError(t, ConvertFee(state))

	d, _ := v.AssetDynamicData(basics.EDCAsset)
	require.Equal(t, basics.Share(999_990), d.CurrentSupply)
	require.Equal(t, basics.Share(10), d.FeeBurnt)
}

func TestConvertFeeBurnsFeedsWitnessRewardWhenConfigured(t *testing.T) {
	v := newView()
	v.PutSettings(&ledgercore.Settings{WitnessFeesPercent: 100})
	state := &TransactionEvaluationState{
		View:  v,
		Rules: hardfork.RuleSet{BurnFees: true},
		Fee:   basics.Asset{Amount: 10, AssetID: basics.EDCAsset},
	}
	require.NoError(t, ConvertFee(state))

	w, _ := v.WitnessesInfo()
	require.Equal(t, basics.Share(10), w.WitnessFeesRewardEDCAmount)
}

func TestConvertFeePoolsPreHF623(t *testing.T) {
	v := newView()
	state := &TransactionEvaluationState{
		View:        v,
		Rules:       hardfork.RuleSet{BurnFees: false},
		Fee:         basics.Asset{Amount: 10, AssetID: basics.EDCAsset},
		CoreFeePaid: 10,
	}
	require.NoError(t, ConvertFee(state))

	d, _ := v.AssetDynamicData(basics.EDCAsset)
	require.Equal(t, basics.Share(10), d.AccumulatedFees)
	require.Equal(t, basics.Share(-10), d.FeePool)
}

func TestConvertFeeIsNoOpForCoreAssetFee(t *testing.T) {
	v := newView()
	state := &TransactionEvaluationState{View: v, Fee: basics.Asset{Amount: 10, AssetID: basics.CoreAsset}}
	require.NoError(t, ConvertFee(state))
}

func TestConvertFeeSkippedWhenStateSkipsFee(t *testing.T) {
	v := newView()
	state := &TransactionEvaluationState{View: v, SkipFee: true, Fee: basics.Asset{Amount: 10, AssetID: basics.EDCAsset}}
	require.NoError(t, ConvertFee(state))

	d, _ := v.AssetDynamicData(basics.EDCAsset)
	require.Equal(t, basics.Share(1_000_000), d.CurrentSupply, "skip_fee must leave dyn-data untouched")
}

func TestPayFBAFeeCreditsExistingBucketOrFallsBackToPayFee(t *testing.T) {
	v := newView()
	id := v.CreateFbaAccumulator(func(f *ledgercore.FbaAccumulator) { f.AssetID = basics.CoreAsset })

	state := &TransactionEvaluationState{View: v, CoreFeePaid: 7}
	require.NoError(t, PayFBAFee(state, id))

	f, _ := v.FbaAccumulator(id)
	require.Equal(t, basics.Share(7), f.Accumulated)

	require.NoError(t, PayFBAFee(state, uuid.New()), "unknown bucket falls back to PayFee, not an error")
}

type fakeEvaluator struct {
	payer       basics.AccountID
	fee         basics.Asset
	amountAsset basics.AssetID
	hasAmount   bool
	evalErr     error
	applyErr    error
}

func (f fakeEvaluator) FeePayer() basics.AccountID { return f.payer }
func (f fakeEvaluator) OpFee() basics.Asset        { return f.fee }
func (f fakeEvaluator) AmountAsset() (basics.AssetID, bool) {
	return f.amountAsset, f.hasAmount
}
func (f fakeEvaluator) DoEvaluate(*TransactionEvaluationState) (basics.Asset, error) {
	return basics.Asset{}, f.evalErr
}
func (f fakeEvaluator) DoApply(*TransactionEvaluationState) (basics.Asset, error) {
	return basics.Asset{}, f.applyErr
}

func TestStartEvaluateRejectsWrongFeeAssetPostHF620(t *testing.T) {
	v := newView()
	ev := fakeEvaluator{payer: 1, fee: basics.Asset{AssetID: basics.CoreAsset}, amountAsset: basics.EDCAsset, hasAmount: true}
	_, err := StartEvaluate(v, hardfork.RuleSet{RequireFeeMatchesPayingAsset: true}, ev, false)
	require.Error(t, err)
	require.True(t, ledgercore.New(ledgercore.WrongFeeAsset).Is(err))
}

func TestStartEvaluateAcceptsMatchingFeeAsset(t *testing.T) {
	v := newView()
	ev := fakeEvaluator{payer: 1, fee: basics.Asset{AssetID: basics.EDCAsset}, amountAsset: basics.EDCAsset, hasAmount: true}
	_, err := StartEvaluate(v, hardfork.RuleSet{RequireFeeMatchesPayingAsset: true}, ev, false)
	require.NoError(t, err)
}

func TestStartEvaluateSkipsFeeAssetCheckPreHF620(t *testing.T) {
	v := newView()
	ev := fakeEvaluator{payer: 1, fee: basics.Asset{AssetID: basics.CoreAsset}, amountAsset: basics.EDCAsset, hasAmount: true}
	_, err := StartEvaluate(v, hardfork.RuleSet{RequireFeeMatchesPayingAsset: false}, ev, false)
	require.NoError(t, err)
}

func TestStartEvaluateDoesNotCallApplyWhenApplyFalse(t *testing.T) {
	v := newView()
	ev := fakeEvaluator{payer: 1, applyErr: ledgercore.New(ledgercore.ValidationError)}
	_, err := StartEvaluate(v, hardfork.RuleSet{}, ev, false)
	require.NoError(t, err, "DoApply's error must never surface when apply=false")
}
