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

// Package protocol carries the canonical wire encoding operations are
// measured against. The teacher generates msgp marshalers for its
// transaction types and only falls back to go-codec reflection for stray
// types; this evaluation core has no code generation step, so every
// operation goes through go-codec reflection uniformly.
package protocol

import (
	"sync"

	"github.com/algorand/go-codec/codec"
)

// CodecHandle instantiates msgpack encoders with the teacher's settings:
// canonical field ordering (so two equal values always encode identically,
// which PackSize's callers rely on) and paranoid about decoding errors.
var CodecHandle *codec.MsgpackHandle

func init() {
	CodecHandle = new(codec.MsgpackHandle)
	CodecHandle.ErrorIfNoField = true
	CodecHandle.ErrorIfNoArrayExpand = true
	CodecHandle.Canonical = true
	CodecHandle.RecursiveEmptyCheck = true
	CodecHandle.WriteExt = true
	CodecHandle.PositiveIntUnsigned = true
	CodecHandle.Raw = true
}

var codecBytesPool = sync.Pool{
	New: func() interface{} {
		return codec.NewEncoderBytes(nil, CodecHandle)
	},
}

const initEncodeBufSize = 256

// Encode returns the canonical msgpack encoding of obj.
func Encode(obj interface{}) []byte {
	enc := codecBytesPool.Get().(*codec.Encoder)
	buf := make([]byte, initEncodeBufSize)
	enc.ResetBytes(&buf)
	enc.MustEncode(obj)
	codecBytesPool.Put(enc)
	return buf
}

// PackSize returns the length, in bytes, of obj's canonical encoding. The
// fee schedule prorates memo- and option-bearing operations against this
// value exactly as the original evaluator prorated against
// fc::raw::pack_size.
func PackSize(obj interface{}) int {
	return len(Encode(obj))
}
