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

package hardfork

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testTimeline() Timeline {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return Timeline{
		HF419: base,
		HF620: base.AddDate(0, 1, 0),
		HF623: base.AddDate(0, 2, 0),
		HF627: base.AddDate(0, 3, 0),
		HF628: base.AddDate(0, 4, 0),
		HF631: base.AddDate(0, 5, 0),
		HF636: base.AddDate(0, 6, 0),
	}
}

func TestRulesAtBeforeEveryGate(t *testing.T) {
	tl := testTimeline()
	rules := RulesAt(tl, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Equal(t, RuleSet{}, rules)
}

func TestRulesAtAfterEveryGate(t *testing.T) {
	tl := testTimeline()
	rules := RulesAt(tl, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Equal(t, RuleSet{
		RequireFeeAssetAuthorization: true,
		RequireFeeMatchesPayingAsset: true,
		BurnFees:                     true,
		CustomPercentageFees:         true,
		SelectFeeByFeeAsset:          true,
		CounterInclusive:             true,
		EdcLimitOnBlindTransfer:      true,
		RankBasedEDCFees:             true,
	}, rules)
}

func TestHF631BoundaryIsStrictBeforeInclusiveAtAndAfter(t *testing.T) {
	tl := testTimeline()
	at := tl[HF631]

	before := RulesAt(tl, at.Add(-time.Second))
	require.False(t, before.CounterInclusive)

	exactly := RulesAt(tl, at)
	require.True(t, exactly.CounterInclusive, "HF631 uses >= semantics, so the gate instant itself already counts")

	after := RulesAt(tl, at.Add(time.Second))
	require.True(t, after.CounterInclusive)
}

func TestHF636UsesReachedOrEqualUnlikeOtherGates(t *testing.T) {
	tl := testTimeline()
	at := tl[HF636]

	exactly := RulesAt(tl, at)
	require.True(t, exactly.RankBasedEDCFees)

	justBefore := RulesAt(tl, at.Add(-time.Second))
	require.False(t, justBefore.RankBasedEDCFees)
}

func TestUnconfiguredGateNeverReaches(t *testing.T) {
	tl := Timeline{}
	rules := RulesAt(tl, time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Equal(t, RuleSet{}, rules)
}

func TestGateString(t *testing.T) {
	require.Equal(t, "HF627", HF627.String())
	require.Equal(t, "HF?", Gate(999).String())
}
