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

import (
	"fmt"
	"math/big"
)

// Price is a ratio of two asset amounts (base/quote), the unit in which
// core_exchange_rate and feed prices are expressed.
type Price struct {
	Base  Asset
	Quote Asset
}

// IsNull reports whether the price has no base or quote amount set, which
// graphene treats as "not configured".
func (p Price) IsNull() bool { return p.Base.Amount == 0 || p.Quote.Amount == 0 }

// Validate checks the structural invariants of a price: both legs positive
// and denominated in two distinct assets.
func (p Price) Validate() error {
	if p.Base.Amount <= 0 || p.Quote.Amount <= 0 {
		return fmt.Errorf("price legs must be strictly positive")
	}
	if p.Base.AssetID == p.Quote.AssetID {
		return fmt.Errorf("price base and quote must be different assets")
	}
	return nil
}

// Mul converts `a` through the price, the Go analogue of graphene's
// `asset * price` operator. `a` must be denominated in either the price's
// base or quote asset; the result is denominated in the other leg.
func (p Price) Mul(a Asset) (Asset, error) {
	switch a.AssetID {
	case p.Base.AssetID:
		return scaleAsset(a, p.Quote.Amount, p.Base.Amount, p.Quote.AssetID)
	case p.Quote.AssetID:
		return scaleAsset(a, p.Base.Amount, p.Quote.Amount, p.Base.AssetID)
	default:
		return Asset{}, fmt.Errorf("asset %d is not a leg of this price", a.AssetID)
	}
}

func scaleAsset(a Asset, num, den Share, resultAsset AssetID) (Asset, error) {
	amt := new(big.Int).Mul(big.NewInt(int64(a.Amount)), big.NewInt(int64(num)))
	amt.Quo(amt, big.NewInt(int64(den)))
	if !amt.IsInt64() || Share(amt.Int64()) > MaxShareSupply || amt.Sign() < 0 {
		return Asset{}, fmt.Errorf("price conversion overflowed share range")
	}
	return Asset{Amount: Share(amt.Int64()), AssetID: resultAsset}, nil
}
