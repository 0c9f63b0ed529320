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

// Package testing holds evaluator test helpers, shared the way the
// teacher's ledger/testing package is shared by every ledger-adjacent
// test package.
package testing

import (
	"fmt"
	"testing"
	"time"

	"github.com/edcchain/evalcore/ledger/hardfork"
)

// TestHardforkRange runs test once per gate, one subtest a moment before
// the gate activates and one a moment after, the way the teacher's
// TestConsensusRange walks a span of consensus versions. Use this
// instead of hand-writing a pre/post pair for every gate a behavior
// change depends on.
func TestHardforkRange(t *testing.T, tl hardfork.Timeline, gates []hardfork.Gate, test func(t *testing.T, head time.Time, rules hardfork.RuleSet)) {
	for _, g := range gates {
		at, ok := tl[g]
		if !ok {
			continue
		}
		t.Run(fmt.Sprintf("%s-before", g), func(t *testing.T) {
			head := at.Add(-time.Second)
			test(t, head, hardfork.RulesAt(tl, head))
		})
		t.Run(fmt.Sprintf("%s-after", g), func(t *testing.T) {
			head := at.Add(time.Second)
			test(t, head, hardfork.RulesAt(tl, head))
		})
	}
}
