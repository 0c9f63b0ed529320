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

// Package bookkeeping captures the block-level metadata the evaluator needs
// from its surrounding (out-of-scope) block production subsystem: just the
// round number and the timestamp that gates hardfork rule selection.
package bookkeeping

import "time"

// Round is the block height.
type Round uint64

// BlockHeader is the minimal slice of block metadata the evaluator consults.
// Block production, transaction sets and consensus signatures live in the
// (out-of-scope) chain layer; this core only ever reads TimeStamp through
// View.HeadBlockTime.
type BlockHeader struct {
	Round     Round
	TimeStamp time.Time
}
