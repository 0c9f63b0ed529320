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

package ledgerview

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/edcchain/evalcore/data/basics"
	"github.com/edcchain/evalcore/ledger/ledgercore"
	evtesting "github.com/edcchain/evalcore/ledger/testing"
)

func TestAccountRoundTripWithAndWithoutCache(t *testing.T) {
	evtesting.WithAndWithoutLRUCache(t, 8, func(t *testing.T, cacheSize int) {
		v := New(time.Unix(1000, 0), cacheSize)
		v.PutAccount(&ledgercore.Account{ID: 1, Name: "alice"})

		got, ok := v.Account(1)
		require.True(t, ok)
		require.Equal(t, "alice", got.Name)

		_, ok = v.Account(2)
		require.False(t, ok)
	})
}

func TestModifyAccountMutatesInPlace(t *testing.T) {
	v := New(time.Unix(0, 0), 0)
	v.PutAccount(&ledgercore.Account{ID: 1})

	err := v.ModifyAccount(1, func(a *ledgercore.Account) { a.Rank = 3 })
	require.NoError(t, err)

	got, _ := v.Account(1)
	require.Equal(t, basics.AccountRank(3), got.Rank)
}

func TestModifyAccountMissingReturnsMissingSingleton(t *testing.T) {
	v := New(time.Unix(0, 0), 0)
	err := v.ModifyAccount(42, func(*ledgercore.Account) {})
	require.Error(t, err)
	require.True(t, ledgercore.New(ledgercore.MissingSingleton).Is(err))
}

func TestAdjustBalanceRejectsNegativeResult(t *testing.T) {
	v := New(time.Unix(0, 0), 0)
	v.PutAccount(&ledgercore.Account{ID: 1, Balances: map[basics.AssetID]basics.Share{basics.EDCAsset: 10}})

	require.NoError(t, v.AdjustBalance(1, basics.Asset{Amount: -5, AssetID: basics.EDCAsset}))
	require.Equal(t, basics.Share(5), v.GetBalance(1, basics.EDCAsset))

	err := v.AdjustBalance(1, basics.Asset{Amount: -100, AssetID: basics.EDCAsset})
	require.Error(t, err)
	require.Equal(t, basics.Share(5), v.GetBalance(1, basics.EDCAsset), "rejected adjustment must not mutate balance")
}

func TestGetCustomFeeResolvesByList(t *testing.T) {
	v := New(time.Unix(0, 0), 0)
	v.PutSettings(&ledgercore.Settings{
		TransferFees:      map[basics.AssetID]uint16{basics.EDCAsset: 100},
		BlindTransferFees: map[basics.AssetID]ledgercore.BlindTransferFee{basics.EDCAsset: {FeeAssetID: basics.CoreAsset, Percent: 5}},
	})

	pct, ok := v.GetCustomFee(TransferFeeList, basics.EDCAsset)
	require.True(t, ok)
	require.Equal(t, uint16(100), pct.Percent)

	blind, ok := v.GetCustomFee(BlindTransferFeeList, basics.EDCAsset)
	require.True(t, ok)
	require.Equal(t, uint16(5), blind.Percent)
	require.Equal(t, basics.CoreAsset, blind.FeeAssetID)

	_, ok = v.GetCustomFee(TransferFeeList, basics.CoreAsset)
	require.False(t, ok)
}

func TestGetAccountFeeEDCPercentByRankFallsBackByRank(t *testing.T) {
	v := New(time.Unix(0, 0), 0)
	v.PutAccount(&ledgercore.Account{ID: 1, Rank: 5})
	v.SetRankFees(ledgercore.RankFeeTable{0: 100, 3: 50})

	require.Equal(t, uint16(50), v.GetAccountFeeEDCPercentByRank(1))
}

func TestCreateBlindTransfer2RecordAssignsID(t *testing.T) {
	v := New(time.Unix(0, 0), 0)
	id := v.CreateBlindTransfer2Record(func(r *ledgercore.BlindTransfer2Record) {
		r.From = 1
		r.To = 2
	})
	require.NotEqual(t, id.String(), "")

	r, ok := v.blindRecords[id]
	require.True(t, ok)
	require.Equal(t, basics.AccountID(1), r.From)
}

func TestFbaAccumulatorRoundTrip(t *testing.T) {
	v := New(time.Unix(0, 0), 0)
	id := v.CreateFbaAccumulator(func(f *ledgercore.FbaAccumulator) {
		f.AssetID = basics.CoreAsset
	})

	got, ok := v.FbaAccumulator(id)
	require.True(t, ok)
	require.Equal(t, basics.CoreAsset, got.AssetID)

	require.NoError(t, v.ModifyFbaAccumulator(id, func(f *ledgercore.FbaAccumulator) { f.Accumulated += 5 }))
	got, _ = v.FbaAccumulator(id)
	require.Equal(t, basics.Share(5), got.Accumulated)

	err := v.ModifyFbaAccumulator(uuid.New(), func(*ledgercore.FbaAccumulator) {})
	require.Error(t, err)
}

func TestToPrettyStringUsesAssetSymbol(t *testing.T) {
	v := New(time.Unix(0, 0), 0)
	v.PutAsset(&ledgercore.Asset{ID: basics.EDCAsset, Symbol: "EDC"})

	require.Equal(t, "100 EDC", v.ToPrettyString(basics.Asset{Amount: 100, AssetID: basics.EDCAsset}))
}
