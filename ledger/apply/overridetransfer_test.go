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
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/edcchain/evalcore/data/basics"
	"github.com/edcchain/evalcore/data/transactions"
	"github.com/edcchain/evalcore/ledger/eval"
	"github.com/edcchain/evalcore/ledger/hardfork"
	"github.com/edcchain/evalcore/ledger/ledgercore"
	"github.com/edcchain/evalcore/ledger/ledgerview"
)

func newOverrideView(canOverride bool) *ledgerview.MemView {
	v := ledgerview.New(time.Unix(0, 0), 0)
	v.PutAccount(&ledgercore.Account{ID: 1, Balances: map[basics.AssetID]basics.Share{basics.EDCAsset: 10}})
	v.PutAccount(&ledgercore.Account{ID: 2})
	v.PutAccount(&ledgercore.Account{ID: 99, Balances: map[basics.AssetID]basics.Share{basics.CoreAsset: 1_000}})
	v.PutAsset(&ledgercore.Asset{ID: basics.EDCAsset, Issuer: 99, CanOverride: canOverride, Options: ledgercore.AssetOptions{FeePayingAsset: basics.CoreAsset}})
	v.PutAssetDynamicData(&ledgercore.AssetDynamicData{AssetID: basics.EDCAsset, CurrentSupply: 1_000_000})
	v.PutSettings(&ledgercore.Settings{})
	v.PutWitnessesInfo(&ledgercore.WitnessesInfo{})
	return v
}

// Scenario 5, spec §8: issuer-forced override transfer.
func TestOverrideTransferMovesBalance(t *testing.T) {
	v := newOverrideView(true)
	op := transactions.OverrideTransferFields{Issuer: 99, From: 1, To: 2, Amount: basics.Asset{Amount: 10, AssetID: basics.EDCAsset}, Fee: basics.Asset{AssetID: basics.CoreAsset}}

	ov := &OverrideTransfer{Op: op}
	_, err := eval.StartEvaluate(v, hardfork.RuleSet{}, ov, true)
	require.NoError(t, err)
	require.Equal(t, basics.Share(0), v.GetBalance(1, basics.EDCAsset))
	require.Equal(t, basics.Share(10), v.GetBalance(2, basics.EDCAsset))
}

func TestOverrideTransferRejectedWhenAssetDoesNotAllowIt(t *testing.T) {
	v := newOverrideView(false)
	op := transactions.OverrideTransferFields{Issuer: 99, From: 1, To: 2, Amount: basics.Asset{Amount: 10, AssetID: basics.EDCAsset}, Fee: basics.Asset{AssetID: basics.CoreAsset}}

	ov := &OverrideTransfer{Op: op}
	_, err := eval.StartEvaluate(v, hardfork.RuleSet{}, ov, true)
	require.Error(t, err)
	require.True(t, ledgercore.New(ledgercore.OverrideTransferNotPermitted).Is(err))
}

func TestOverrideTransferRejectsWrongIssuer(t *testing.T) {
	v := newOverrideView(true)
	op := transactions.OverrideTransferFields{Issuer: 1, From: 1, To: 2, Amount: basics.Asset{Amount: 10, AssetID: basics.EDCAsset}, Fee: basics.Asset{AssetID: basics.CoreAsset}}

	ov := &OverrideTransfer{Op: op}
	_, err := eval.StartEvaluate(v, hardfork.RuleSet{}, ov, true)
	require.Error(t, err)
	require.True(t, ledgercore.New(ledgercore.WrongIssuer).Is(err))
}

func TestOverrideTransferBurnsToBurningDestination(t *testing.T) {
	v := newOverrideView(true)
	v.PutAccount(&ledgercore.Account{ID: 2, BurningModeEnabled: true})
	op := transactions.OverrideTransferFields{Issuer: 99, From: 1, To: 2, Amount: basics.Asset{Amount: 10, AssetID: basics.EDCAsset}, Fee: basics.Asset{AssetID: basics.CoreAsset}}

	ov := &OverrideTransfer{Op: op}
	_, err := eval.StartEvaluate(v, hardfork.RuleSet{}, ov, true)
	require.NoError(t, err)

	d, _ := v.AssetDynamicData(basics.EDCAsset)
	require.Equal(t, basics.Share(1_000_000-10), d.CurrentSupply)
	require.Equal(t, basics.Share(10), d.FeeBurnt)
	require.Equal(t, basics.Share(0), v.GetBalance(2, basics.EDCAsset))
}

// override_transfer_evaluator::do_apply never touches edc_burnt on any
// account — only the asset-level current_supply/fee_burnt move — unlike
// Transfer and BlindTransfer2, which do credit the sender's EdcBurnt
// post-HF636. Guard against that bookkeeping leaking into override
// transfer.
func TestOverrideTransferNeverCreditsSenderEdcBurnt(t *testing.T) {
	v := newOverrideView(true)
	v.PutAccount(&ledgercore.Account{ID: 2, BurningModeEnabled: true})
	op := transactions.OverrideTransferFields{Issuer: 99, From: 1, To: 2, Amount: basics.Asset{Amount: 10, AssetID: basics.EDCAsset}, Fee: basics.Asset{AssetID: basics.CoreAsset}}

	ov := &OverrideTransfer{Op: op}
	_, err := eval.StartEvaluate(v, hardfork.RuleSet{RankBasedEDCFees: true}, ov, true)
	require.NoError(t, err)

	from, _ := v.Account(1)
	require.Equal(t, basics.Share(0), from.EdcBurnt, "override transfer must never mutate the sender's edc_burnt")
}
