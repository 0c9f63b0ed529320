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

// Package feesched computes the base fee each operation owes before any
// evaluator runs, the Go analogue of graphene's fee_schedule and its
// per-operation calculate_fee overrides. Every amount here is a pure
// function of the operation's own content; nothing here touches the
// ledger view.
package feesched

import (
	"github.com/edcchain/evalcore/data/basics"
	"github.com/edcchain/evalcore/protocol"
	"github.com/shopspring/decimal"
)

// Parameters is the portion of the fee schedule this core reads: a flat
// fee per operation kind, the long-symbol default and the two short-
// symbol tiers asset_create discounts or surcharges, and the
// per-kilobyte data fee every memo- or option-bearing operation prorates
// against.
type Parameters struct {
	Flat map[protocol.OpType]basics.Share

	// Symbol3Fee and Symbol4Fee are SymbolFee's result for 3- and
	// 4-character symbols; LongSymbolFee covers every other length.
	// SymbolFee does not consult Flat.
	Symbol3Fee    basics.Share
	Symbol4Fee    basics.Share
	LongSymbolFee basics.Share

	// PricePerKByte is charged per 1024 bytes (rounded up) of an
	// operation's canonical encoding, the Go analogue of
	// fc::raw::pack_size-based data fees.
	PricePerKByte basics.Share
}

// Base returns the flat fee configured for op, or zero if unconfigured.
func (p Parameters) Base(op protocol.OpType) basics.Share {
	return p.Flat[op]
}

// DataFee prorates obj's canonical encoding size against
// PricePerKByte, rounding the byte count up to the next kilobyte the way
// the original prorates against fc::raw::pack_size.
func (p Parameters) DataFee(obj interface{}) basics.Share {
	size := protocol.PackSize(obj)
	kb := basics.DivCeil(size, 1024)
	return basics.Share(kb) * p.PricePerKByte
}

// SymbolFee returns the base fee asset_create owes for a symbol of the
// given length, using the discounted 3- and 4-character tiers when they
// apply.
func (p Parameters) SymbolFee(symbolLen int) basics.Share {
	switch symbolLen {
	case 3:
		return p.Symbol3Fee
	case 4:
		return p.Symbol4Fee
	default:
		return p.LongSymbolFee
	}
}

// Percent is a fraction expressed in PercentScale units (graphene's
// GRAPHENE_100_PERCENT-denominated percentages), backed by
// shopspring/decimal so that rounding a fee never depends on floating
// point representation.
type Percent struct {
	// BasisPoints is the raw percent value, out of scale.
	BasisPoints uint16
	Scale       uint16
}

// Rational returns the percent as an exact decimal.Decimal fraction.
func (p Percent) Rational() decimal.Decimal {
	if p.Scale == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(p.BasisPoints)).Div(decimal.NewFromInt(int64(p.Scale)))
}

// Apply computes round(amount * percent), the deterministic fee amount a
// custom percentage fee charges against a transfer's amount.
func (p Percent) Apply(amount basics.Share) basics.Share {
	result := decimal.NewFromInt(int64(amount)).Mul(p.Rational()).Round(0)
	return basics.Share(result.IntPart())
}
