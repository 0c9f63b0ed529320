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

// Package hardfork names the totally ordered, timestamped rule-activation
// gates the evaluator reads, and folds them into a single RuleSet snapshot
// so that no decision point in ledger/eval or ledger/apply compares a
// timestamp directly. The teacher accumulates consensus parameters the
// same way: each named version in config.Consensus is built by copying the
// previous version's struct and flipping the fields that changed
// (config/consensus.go's vXX chain), rather than scattering version
// comparisons through the evaluator.
package hardfork

import "time"

// Gate names a single rule-activation timestamp. Exact wall-clock values
// are a deployment parameter outside this core's scope; what the core
// fixes is the gates' existence, names and total order.
type Gate int

const (
	HF419 Gate = iota
	HF620
	HF623
	HF627
	HF628
	HF631
	HF636
)

var gateNames = map[Gate]string{
	HF419: "HF419",
	HF620: "HF620",
	HF623: "HF623",
	HF627: "HF627",
	HF628: "HF628",
	HF631: "HF631",
	HF636: "HF636",
}

func (g Gate) String() string {
	if name, ok := gateNames[g]; ok {
		return name
	}
	return "HF?"
}

// Timeline maps each gate to the timestamp it activates at. The zero
// Timeline activates nothing (every gate reads as "never reached"),
// which callers can use as a safe default until a real deployment
// timeline is supplied.
type Timeline map[Gate]time.Time

// Reached reports whether t is strictly after the gate's activation time.
// An unconfigured gate is treated as never reached, matching the
// original's behavior before a hardfork's activation time was set.
func (tl Timeline) Reached(g Gate, t time.Time) bool {
	at, ok := tl[g]
	if !ok {
		return false
	}
	return t.After(at)
}

// ReachedOrEqual reports whether t is at or after the gate's activation
// time, used by the few comparisons the original spells with >= rather
// than a strict >.
func (tl Timeline) ReachedOrEqual(g Gate, t time.Time) bool {
	at, ok := tl[g]
	if !ok {
		return false
	}
	return !t.Before(at)
}

// RuleSet is the resolved set of booleans every decision point in
// ledger/eval and ledger/apply reads, computed once per head block time
// instead of re-deriving it from Timeline at every comparison.
type RuleSet struct {
	// RequireFeeAssetAuthorization gates the is_authorized_asset check on
	// the fee payer and fee asset (post-HF419).
	RequireFeeAssetAuthorization bool

	// RequireFeeMatchesPayingAsset gates the check that a transfer's fee
	// is denominated in amount.asset_id(view).params.fee_paying_asset
	// (post-HF620).
	RequireFeeMatchesPayingAsset bool

	// BurnFees selects fee-burning accounting (current_supply -=,
	// fee_burnt +=) over the legacy fee-pool accumulation
	// (accumulated_fees +=, fee_pool -=) (post-HF623).
	BurnFees bool

	// CustomPercentageFees enables the custom percentage fee and EDC
	// daily transfer limit machinery (post-HF627).
	CustomPercentageFees bool

	// SelectFeeByFeeAsset selects the custom fee lookup key to be the
	// fee-paying asset rather than the transferred amount's asset
	// (post-HF628). Preserved verbatim from the original's asymmetric
	// pre/post behavior; see DESIGN.md.
	SelectFeeByFeeAsset bool

	// CounterInclusive makes the EDC daily limit boundary `>=` rather
	// than `>` (post-HF631).
	CounterInclusive bool

	// EdcLimitOnBlindTransfer gates blind_transfer2's own EDC daily
	// transfer limit check (post-HF631); the plain transfer's limit
	// check is gated on CustomPercentageFees (HF627) instead, a
	// genuinely distinct, later gate for this one operation.
	EdcLimitOnBlindTransfer bool

	// RankBasedEDCFees selects a per-rank EDC fee percent for payers
	// above the default rank, and excludes burning-mode destinations
	// from both counters and fees (post-HF636).
	RankBasedEDCFees bool
}

// RulesAt folds tl into the RuleSet active at t. Every caller that needs
// to know "has HFk happened" should call this once per evaluation and
// read the resulting RuleSet, not call Timeline.Reached inline.
func RulesAt(tl Timeline, t time.Time) RuleSet {
	return RuleSet{
		RequireFeeAssetAuthorization: tl.Reached(HF419, t),
		RequireFeeMatchesPayingAsset: tl.Reached(HF620, t),
		BurnFees:                     tl.Reached(HF623, t),
		CustomPercentageFees:         tl.Reached(HF627, t),
		SelectFeeByFeeAsset:          tl.Reached(HF628, t),
		CounterInclusive:             tl.Reached(HF631, t),
		EdcLimitOnBlindTransfer:      tl.Reached(HF631, t),
		RankBasedEDCFees:             tl.ReachedOrEqual(HF636, t),
	}
}
