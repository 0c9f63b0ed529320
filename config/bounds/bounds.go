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

// Package bounds holds the raw numeric bounds consulted by validation,
// kept apart from config.Params the way the teacher separates decoding
// bounds from its consensus parameter struct.
package bounds

// MinAssetSymbolLength and MaxAssetSymbolLength bound the `symbol` field of
// asset_create: [A-Z0-9.], first character alphabetic uppercase, at most one
// '.'.
const (
	MinAssetSymbolLength = 3
	MaxAssetSymbolLength = 16
)

// MaxAssetPrecision is the largest number of decimal digits an asset's
// precision may declare.
const MaxAssetPrecision = 12

// MaxMemoBytes bounds the memo payload carried by transfer operations.
const MaxMemoBytes = 2048
