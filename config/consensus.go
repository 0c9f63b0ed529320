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

// Package config holds the global parameters the evaluator reads. It is a
// deliberately small slice of the teacher's sprawling ConsensusParams: only
// the fields this evaluation core actually consults, the hardfork timeline
// excepted (see ledger/hardfork for that).
package config

import "github.com/edcchain/evalcore/data/basics"

// Params are the global, ledger-wide parameters the evaluator reads outside
// of any one operation's fields.
type Params struct {
	// CashbackVestingThreshold is the default cashback vesting threshold.
	// PayFee reads the threshold through View.CashbackVestingThreshold,
	// not from this struct.
	CashbackVestingThreshold basics.Share

	// AssetIssuerPermissionMask masks the high bits asset_options.validate
	// refuses to see set in issuer_permissions.
	AssetIssuerPermissionMask uint32

	// PercentScale is the denominator "100%" is expressed against
	// (graphene's GRAPHENE_100_PERCENT), used by BitassetOptions' percent
	// bounds and by view.GetPercent's basis-point-like inputs.
	PercentScale uint16
}

// DefaultParams returns the parameter set used by tests and by any
// deployment that hasn't overridden them via governance (out of scope here).
func DefaultParams() Params {
	return Params{
		CashbackVestingThreshold: 100_00000,
		AssetIssuerPermissionMask: asset_issuer_permission_mask,
		PercentScale:              10000,
	}
}

// Bits within AssetIssuerPermissionMask / AssetOptions.Flags, named exactly
// as graphene's asset_issuer_permission_flags so the mask stays obviously
// correct against original_source/.
const (
	WhiteList uint32 = 1 << iota
	TransferRestricted
	DisableForceSettle
	GlobalSettle
	WitnessFedAsset
	CommitteeFedAsset
	MarketIssued

	asset_issuer_permission_mask = WhiteList | TransferRestricted | DisableForceSettle |
		GlobalSettle | WitnessFedAsset | CommitteeFedAsset | MarketIssued
)
