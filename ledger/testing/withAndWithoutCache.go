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

package testing

import "testing"

// WithAndWithoutLRUCache runs test once with the memory view's LRU
// object cache sized for real use and once with it disabled (size 0),
// so a single test asserts the cache never changes observable behavior.
func WithAndWithoutLRUCache(t *testing.T, cacheSize int, test func(t *testing.T, cacheSize int)) {
	t.Run("with lru cache", func(t *testing.T) {
		test(t, cacheSize)
	})
	t.Run("without lru cache", func(t *testing.T) {
		test(t, 0)
	})
}
