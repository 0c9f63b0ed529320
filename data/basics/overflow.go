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

package basics

import "golang.org/x/exp/constraints"

// OAddS adds 2 Share values, reporting overflow past MaxShareSupply.
func OAddS(a, b Share) (res Share, overflowed bool) {
	res = a + b
	if res < a || res > MaxShareSupply {
		return 0, true
	}
	return res, false
}

// OSubS subtracts b from a, reporting underflow below zero.
func OSubS(a, b Share) (res Share, overflowed bool) {
	res = a - b
	if res > a || res < 0 {
		return 0, true
	}
	return res, false
}

// MinS returns the smaller of 2 Share values
func MinS(a, b Share) Share {
	if a < b {
		return a
	}
	return b
}

// DivCeil provides `math.Ceil` semantics using integer division.  The technique
// avoids slower floating point operations as suggested in https://stackoverflow.com/a/2745086.
//
// The method assumes both numbers are positive and does _not_ check for divide-by-zero.
func DivCeil[T constraints.Integer](numerator, denominator T) T {
	return (numerator + denominator - 1) / denominator
}
