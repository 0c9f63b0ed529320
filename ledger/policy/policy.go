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

// Package policy holds the read-only predicates the transfer evaluators
// consult before touching the ledger view: whitelist/blacklist
// resolution and the committee ban list. Kept apart from ledger/eval the
// way the teacher keeps apply.Balances pure queries separate from the
// mutating BlockEvaluator that calls them.
package policy

import (
	"github.com/edcchain/evalcore/config"
	"github.com/edcchain/evalcore/data/basics"
	"github.com/edcchain/evalcore/ledger/ledgercore"
	"github.com/edcchain/evalcore/util"
)

// Direction distinguishes the committee restriction list's two
// independent bans, one per transfer role.
type Direction int

const (
	// Payer is the restriction list checked against a transfer's sender.
	Payer Direction = iota
	// Receiver is the restriction list checked against a transfer's
	// recipient.
	Receiver
)

// RestrictionList reports whether id is banned from acting as dir in a
// transfer. The committee ban list is maintained out of scope; the
// evaluator only ever asks it this one question.
type RestrictionList interface {
	IsRestricted(id basics.AccountID, dir Direction) bool
}

// IsAuthorizedAsset resolves whitelist/blacklist authorization for
// account against asset. The blacklist is always consulted; the
// whitelist only applies when the asset's WhiteList flag is set and the
// account is not itself a configured authority.
func IsAuthorizedAsset(account basics.AccountID, asset ledgercore.Asset) bool {
	if util.MakeSet(asset.Options.BlacklistAuthorities...).Contains(account) {
		return false
	}
	if !asset.Options.HasFlag(config.WhiteList) {
		return true
	}
	whitelist := util.MakeSet(asset.Options.WhitelistAuthorities...)
	if whitelist.Empty() {
		return true
	}
	return whitelist.Contains(account)
}

// NotRestrictedAccount reports whether account is free to act as dir,
// i.e. is not on restrictions' ban list for that direction. A nil
// restrictions collaborator means no bans are configured.
func NotRestrictedAccount(restrictions RestrictionList, account basics.AccountID, dir Direction) bool {
	if restrictions == nil {
		return true
	}
	return !restrictions.IsRestricted(account, dir)
}
