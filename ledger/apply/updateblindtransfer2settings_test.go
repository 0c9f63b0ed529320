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

func TestUpdateBlindTransfer2SettingsRequiresExistingSettings(t *testing.T) {
	v := ledgerview.New(time.Unix(0, 0), 0)
	v.PutAccount(&ledgercore.Account{ID: 1, Balances: map[basics.AssetID]basics.Share{basics.CoreAsset: 100}})

	u := &UpdateBlindTransfer2Settings{Op: transactions.UpdateBlindTransfer2SettingsFields{DefaultFee: basics.Asset{Amount: 5, AssetID: basics.EDCAsset}}, Payer: 1}
	_, err := eval.StartEvaluate(v, hardfork.RuleSet{}, u, true)
	require.Error(t, err)
	require.True(t, ledgercore.New(ledgercore.MissingSingleton).Is(err))
}

func TestUpdateBlindTransfer2SettingsMutatesScheduleWithoutChargingAFee(t *testing.T) {
	v := ledgerview.New(time.Unix(0, 0), 0)
	v.PutAccount(&ledgercore.Account{ID: 1, Balances: map[basics.AssetID]basics.Share{basics.CoreAsset: 100}})
	v.PutSettings(&ledgercore.Settings{BlindTransferDefaultFee: basics.Asset{Amount: 1, AssetID: basics.EDCAsset}})

	op := transactions.UpdateBlindTransfer2SettingsFields{
		DefaultFee: basics.Asset{Amount: 5, AssetID: basics.EDCAsset},
		Fees:       map[basics.AssetID]transactions.BlindTransferFeeInput{7: {FeeAssetID: basics.CoreAsset, Percent: 300}},
	}
	u := &UpdateBlindTransfer2Settings{Op: op, Payer: 1}
	_, err := eval.StartEvaluate(v, hardfork.RuleSet{}, u, true)
	require.NoError(t, err)

	s, ok := v.Settings()
	require.True(t, ok)
	require.Equal(t, basics.Asset{Amount: 5, AssetID: basics.EDCAsset}, s.BlindTransferDefaultFee)
	require.Equal(t, ledgercore.BlindTransferFee{FeeAssetID: basics.CoreAsset, Percent: 300}, s.BlindTransferFees[7])

	require.Equal(t, basics.Share(100), v.GetBalance(1, basics.CoreAsset), "the settings update carries no fee of its own")
}

func TestUpdateBlindTransfer2SettingsPreservesExistingFeeEntries(t *testing.T) {
	v := ledgerview.New(time.Unix(0, 0), 0)
	v.PutAccount(&ledgercore.Account{ID: 1})
	v.PutSettings(&ledgercore.Settings{BlindTransferFees: map[basics.AssetID]ledgercore.BlindTransferFee{7: {FeeAssetID: basics.EDCAsset, Percent: 1}}})

	op := transactions.UpdateBlindTransfer2SettingsFields{Fees: map[basics.AssetID]transactions.BlindTransferFeeInput{9: {FeeAssetID: basics.CoreAsset, Percent: 2}}}
	u := &UpdateBlindTransfer2Settings{Op: op, Payer: 1}
	_, err := eval.StartEvaluate(v, hardfork.RuleSet{}, u, true)
	require.NoError(t, err)

	s, _ := v.Settings()
	require.Equal(t, ledgercore.BlindTransferFee{FeeAssetID: basics.EDCAsset, Percent: 1}, s.BlindTransferFees[7])
	require.Equal(t, ledgercore.BlindTransferFee{FeeAssetID: basics.CoreAsset, Percent: 2}, s.BlindTransferFees[9])
}
