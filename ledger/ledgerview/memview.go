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
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru"
	"github.com/shopspring/decimal"

	"github.com/edcchain/evalcore/config"
	"github.com/edcchain/evalcore/data/basics"
	"github.com/edcchain/evalcore/ledger/feesched"
	"github.com/edcchain/evalcore/ledger/ledgercore"
)

// MemView is a reference View backed by plain maps, with an optional
// read-through LRU in front of the account/asset maps mirroring the
// teacher's own roundCowBase caching of hot ledger objects within a
// block. Suitable for tests, simulation, and as a development backend;
// it persists nothing and is not a storage engine. Mutations apply to
// the stored objects immediately and MemView keeps no undo log: it does
// not roll back what an earlier operation of a transaction changed when
// a later one fails.
type MemView struct {
	mu sync.Mutex

	headBlockTime time.Time

	accounts map[basics.AccountID]*ledgercore.Account
	assets   map[basics.AssetID]*ledgercore.Asset
	dynData  map[basics.AssetID]*ledgercore.AssetDynamicData

	settings  *ledgercore.Settings
	witnesses *ledgercore.WitnessesInfo

	blindRecords    map[uuid.UUID]*ledgercore.BlindTransfer2Record
	fbaAccumulators map[uuid.UUID]*ledgercore.FbaAccumulator

	feeSchedule              feesched.Parameters
	cashbackVestingThreshold basics.Share
	rankFees                 ledgercore.RankFeeTable

	// accountCache and assetCache are nil when New was given cacheSize
	// <= 0, the "without cache" leg of the test matrix every MemView
	// behavior is exercised under.
	accountCache *lru.Cache
	assetCache   *lru.Cache
}

// New builds an empty MemView with head block time t and a read-through
// cache of cacheSize entries per object kind. cacheSize <= 0 disables
// caching entirely; every lookup falls straight through to the backing
// map.
func New(t time.Time, cacheSize int) *MemView {
	v := &MemView{
		headBlockTime:   t,
		accounts:        make(map[basics.AccountID]*ledgercore.Account),
		assets:          make(map[basics.AssetID]*ledgercore.Asset),
		dynData:         make(map[basics.AssetID]*ledgercore.AssetDynamicData),
		blindRecords:    make(map[uuid.UUID]*ledgercore.BlindTransfer2Record),
		fbaAccumulators: make(map[uuid.UUID]*ledgercore.FbaAccumulator),
		rankFees:        make(ledgercore.RankFeeTable),
	}
	if cacheSize > 0 {
		v.accountCache, _ = lru.New(cacheSize)
		v.assetCache, _ = lru.New(cacheSize)
	}
	return v
}

// SetHeadBlockTime lets tests move the simulated chain head forward
// across a hardfork gate without constructing a new view.
func (v *MemView) SetHeadBlockTime(t time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.headBlockTime = t
}

// PutAccount seeds or overwrites an account, bypassing the create<T>
// contract (account creation is out of scope, spec.md §3); test setup
// calls this directly.
func (v *MemView) PutAccount(a *ledgercore.Account) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.accounts[a.ID] = a
	if v.accountCache != nil {
		v.accountCache.Remove(a.ID)
	}
}

// PutAsset seeds or overwrites an asset.
func (v *MemView) PutAsset(a *ledgercore.Asset) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.assets[a.ID] = a
	if v.assetCache != nil {
		v.assetCache.Remove(a.ID)
	}
}

// PutAssetDynamicData seeds or overwrites an asset's dynamic data.
func (v *MemView) PutAssetDynamicData(d *ledgercore.AssetDynamicData) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dynData[d.AssetID] = d
}

// PutSettings seeds the Settings singleton.
func (v *MemView) PutSettings(s *ledgercore.Settings) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.settings = s
}

// PutWitnessesInfo seeds the WitnessesInfo singleton.
func (v *MemView) PutWitnessesInfo(w *ledgercore.WitnessesInfo) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.witnesses = w
}

// SetFeeSchedule installs the parameters CurrentFeeSchedule returns.
func (v *MemView) SetFeeSchedule(p feesched.Parameters) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.feeSchedule = p
}

// SetCashbackVestingThreshold installs the value
// CashbackVestingThreshold returns.
func (v *MemView) SetCashbackVestingThreshold(s basics.Share) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cashbackVestingThreshold = s
}

// SetRankFees installs the table GetAccountFeeEDCPercentByRank consults.
func (v *MemView) SetRankFees(t ledgercore.RankFeeTable) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rankFees = t
}

// HeadBlockTime implements View.
func (v *MemView) HeadBlockTime() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.headBlockTime
}

// Account implements View.
func (v *MemView) Account(id basics.AccountID) (*ledgercore.Account, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.accountCache != nil {
		if cached, ok := v.accountCache.Get(id); ok {
			return cached.(*ledgercore.Account), true
		}
	}
	a, ok := v.accounts[id]
	if ok && v.accountCache != nil {
		v.accountCache.Add(id, a)
	}
	return a, ok
}

// Asset implements View.
func (v *MemView) Asset(id basics.AssetID) (*ledgercore.Asset, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.assetCache != nil {
		if cached, ok := v.assetCache.Get(id); ok {
			return cached.(*ledgercore.Asset), true
		}
	}
	a, ok := v.assets[id]
	if ok && v.assetCache != nil {
		v.assetCache.Add(id, a)
	}
	return a, ok
}

// AssetDynamicData implements View.
func (v *MemView) AssetDynamicData(id basics.AssetID) (*ledgercore.AssetDynamicData, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	d, ok := v.dynData[id]
	return d, ok
}

// Settings implements View.
func (v *MemView) Settings() (*ledgercore.Settings, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.settings, v.settings != nil
}

// WitnessesInfo implements View.
func (v *MemView) WitnessesInfo() (*ledgercore.WitnessesInfo, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.witnesses, v.witnesses != nil
}

// ModifyAccount implements View.
func (v *MemView) ModifyAccount(id basics.AccountID, mutator func(*ledgercore.Account)) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	a, ok := v.accounts[id]
	if !ok {
		return ledgercore.Newf(ledgercore.MissingSingleton, "account", id)
	}
	mutator(a)
	if v.accountCache != nil {
		v.accountCache.Add(id, a)
	}
	return nil
}

// ModifyAsset implements View.
func (v *MemView) ModifyAsset(id basics.AssetID, mutator func(*ledgercore.Asset)) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	a, ok := v.assets[id]
	if !ok {
		return ledgercore.Newf(ledgercore.MissingSingleton, "asset", id)
	}
	mutator(a)
	if v.assetCache != nil {
		v.assetCache.Add(id, a)
	}
	return nil
}

// ModifyAssetDynamicData implements View.
func (v *MemView) ModifyAssetDynamicData(id basics.AssetID, mutator func(*ledgercore.AssetDynamicData)) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	d, ok := v.dynData[id]
	if !ok {
		return ledgercore.Newf(ledgercore.MissingSingleton, "asset_dynamic_data", id)
	}
	mutator(d)
	return nil
}

// ModifySettings implements View.
func (v *MemView) ModifySettings(mutator func(*ledgercore.Settings)) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.settings == nil {
		return ledgercore.New(ledgercore.MissingSingleton)
	}
	mutator(v.settings)
	return nil
}

// ModifyWitnessesInfo implements View.
func (v *MemView) ModifyWitnessesInfo(mutator func(*ledgercore.WitnessesInfo)) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.witnesses == nil {
		return ledgercore.New(ledgercore.MissingSingleton)
	}
	mutator(v.witnesses)
	return nil
}

// CreateBlindTransfer2Record implements View.
func (v *MemView) CreateBlindTransfer2Record(factory func(*ledgercore.BlindTransfer2Record)) uuid.UUID {
	v.mu.Lock()
	defer v.mu.Unlock()
	r := &ledgercore.BlindTransfer2Record{ID: uuid.New()}
	factory(r)
	r.ID = idOrNew(r.ID)
	v.blindRecords[r.ID] = r
	return r.ID
}

// CreateFbaAccumulator implements View.
func (v *MemView) CreateFbaAccumulator(factory func(*ledgercore.FbaAccumulator)) uuid.UUID {
	v.mu.Lock()
	defer v.mu.Unlock()
	f := &ledgercore.FbaAccumulator{ID: uuid.New()}
	factory(f)
	f.ID = idOrNew(f.ID)
	v.fbaAccumulators[f.ID] = f
	return f.ID
}

// FbaAccumulator implements View.
func (v *MemView) FbaAccumulator(id uuid.UUID) (*ledgercore.FbaAccumulator, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	f, ok := v.fbaAccumulators[id]
	return f, ok
}

// ModifyFbaAccumulator implements View.
func (v *MemView) ModifyFbaAccumulator(id uuid.UUID, mutator func(*ledgercore.FbaAccumulator)) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	f, ok := v.fbaAccumulators[id]
	if !ok {
		return ledgercore.Newf(ledgercore.MissingSingleton, "fba_accumulator", id)
	}
	mutator(f)
	return nil
}

// Snapshot returns a copy of the accounts (balance maps included),
// assets, dynamic data and the Settings/WitnessesInfo singletons MemView
// holds, keyed the same way the backing maps are. Blind-transfer records
// and FBA accumulators are not included, and map and slice fields other
// than account balances are shared with the live objects rather than
// copied. Tests use it to check spec.md §8's
// "a rejected do_evaluate leaves the ledger view byte-identical"
// property: snapshot before and after, diff with cmp.Diff, and require
// an empty diff. It never copies the caches themselves, only the
// objects they might be shadowing, so a cache hit/miss makes no
// difference to the comparison.
func (v *MemView) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := Snapshot{
		HeadBlockTime: v.headBlockTime,
		Accounts:      make(map[basics.AccountID]ledgercore.Account, len(v.accounts)),
		Assets:        make(map[basics.AssetID]ledgercore.Asset, len(v.assets)),
		DynamicData:   make(map[basics.AssetID]ledgercore.AssetDynamicData, len(v.dynData)),
	}
	for id, a := range v.accounts {
		cp := *a
		if a.Balances != nil {
			cp.Balances = make(map[basics.AssetID]basics.Share, len(a.Balances))
			for k, val := range a.Balances {
				cp.Balances[k] = val
			}
		}
		s.Accounts[id] = cp
	}
	for id, a := range v.assets {
		s.Assets[id] = *a
	}
	for id, d := range v.dynData {
		s.DynamicData[id] = *d
	}
	if v.settings != nil {
		cp := *v.settings
		s.Settings = &cp
	}
	if v.witnesses != nil {
		cp := *v.witnesses
		s.Witnesses = &cp
	}
	return s
}

// Snapshot is a point-in-time, deeply copied view of a MemView's
// object store, comparable with cmp.Diff.
type Snapshot struct {
	HeadBlockTime time.Time
	Accounts      map[basics.AccountID]ledgercore.Account
	Assets        map[basics.AssetID]ledgercore.Asset
	DynamicData   map[basics.AssetID]ledgercore.AssetDynamicData
	Settings      *ledgercore.Settings
	Witnesses     *ledgercore.WitnessesInfo
}

func idOrNew(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}

// AdjustBalance implements View.
func (v *MemView) AdjustBalance(account basics.AccountID, delta basics.Asset) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	a, ok := v.accounts[account]
	if !ok {
		return ledgercore.Newf(ledgercore.MissingSingleton, "account", account)
	}
	if a.Balances == nil {
		a.Balances = make(map[basics.AssetID]basics.Share)
	}
	result := a.Balances[delta.AssetID] + delta.Amount
	if result < 0 {
		return ledgercore.Newf(ledgercore.InsufficientBalance, "account", account)
	}
	a.Balances[delta.AssetID] = result
	return nil
}

// GetBalance implements View.
func (v *MemView) GetBalance(account basics.AccountID, asset basics.AssetID) basics.Share {
	v.mu.Lock()
	defer v.mu.Unlock()
	a, ok := v.accounts[account]
	if !ok {
		return 0
	}
	return a.Balance(asset)
}

// CurrentFeeSchedule implements View.
func (v *MemView) CurrentFeeSchedule() feesched.Parameters {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.feeSchedule
}

// CashbackVestingThreshold implements View.
func (v *MemView) CashbackVestingThreshold() basics.Share {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cashbackVestingThreshold
}

// GetCustomFee implements View.
func (v *MemView) GetCustomFee(list FeeList, asset basics.AssetID) (SettingsFee, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.settings == nil {
		return SettingsFee{}, false
	}
	switch list {
	case TransferFeeList:
		pct, ok := v.settings.GetCustomFee(asset)
		return SettingsFee{Percent: pct, FeeAssetID: asset}, ok
	case BlindTransferFeeList:
		fee, ok := v.settings.GetBlindFee(asset)
		return SettingsFee{Percent: fee.Percent, FeeAssetID: fee.FeeAssetID}, ok
	default:
		return SettingsFee{}, false
	}
}

// GetPercent implements View.
func (v *MemView) GetPercent(percent uint16) decimal.Decimal {
	p := feesched.Percent{BasisPoints: percent, Scale: config.DefaultParams().PercentScale}
	return p.Rational()
}

// GetAccountFeeEDCPercentByRank implements View.
func (v *MemView) GetAccountFeeEDCPercentByRank(account basics.AccountID) uint16 {
	v.mu.Lock()
	defer v.mu.Unlock()
	a, ok := v.accounts[account]
	if !ok {
		return 0
	}
	return v.rankFees.PercentFor(a.Rank)
}

// ToPrettyString implements View.
func (v *MemView) ToPrettyString(asset basics.Asset) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	a, ok := v.assets[asset.AssetID]
	if !ok {
		return fmt.Sprintf("%d <unknown asset %d>", asset.Amount, asset.AssetID)
	}
	return fmt.Sprintf("%d %s", asset.Amount, a.Symbol)
}
