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

package policy

import (
	"testing"

	"github.com/edcchain/evalcore/config"
	"github.com/edcchain/evalcore/data/basics"
	"github.com/edcchain/evalcore/ledger/ledgercore"
	"github.com/stretchr/testify/require"
)

func TestIsAuthorizedAssetNoWhitelistFlagAllowsEveryoneButBlacklist(t *testing.T) {
	asset := ledgercore.Asset{
		Options: ledgercore.AssetOptions{
			BlacklistAuthorities: []basics.AccountID{9},
		},
	}
	require.True(t, IsAuthorizedAsset(1, asset))
	require.False(t, IsAuthorizedAsset(9, asset))
}

func TestIsAuthorizedAssetWhitelistFlagRestrictsToAuthorities(t *testing.T) {
	asset := ledgercore.Asset{
		Options: ledgercore.AssetOptions{
			Flags:                config.WhiteList,
			WhitelistAuthorities: []basics.AccountID{1, 2},
			BlacklistAuthorities: []basics.AccountID{2},
		},
	}
	require.True(t, IsAuthorizedAsset(1, asset))
	require.False(t, IsAuthorizedAsset(2, asset), "blacklist wins even when also whitelisted")
	require.False(t, IsAuthorizedAsset(3, asset))
}

func TestIsAuthorizedAssetWhitelistFlagWithNoAuthoritiesAllowsEveryone(t *testing.T) {
	asset := ledgercore.Asset{
		Options: ledgercore.AssetOptions{Flags: config.WhiteList},
	}
	require.True(t, IsAuthorizedAsset(42, asset))
}

type fakeRestrictions struct {
	banned map[basics.AccountID]Direction
}

func (f fakeRestrictions) IsRestricted(id basics.AccountID, dir Direction) bool {
	d, ok := f.banned[id]
	return ok && d == dir
}

func TestNotRestrictedAccountNilCollaboratorAllowsEveryone(t *testing.T) {
	require.True(t, NotRestrictedAccount(nil, 5, Payer))
}

func TestNotRestrictedAccountChecksDirection(t *testing.T) {
	r := fakeRestrictions{banned: map[basics.AccountID]Direction{7: Payer}}
	require.False(t, NotRestrictedAccount(r, 7, Payer))
	require.True(t, NotRestrictedAccount(r, 7, Receiver))
	require.True(t, NotRestrictedAccount(r, 8, Payer))
}
