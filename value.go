// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package parquetenc

import (
	"bytes"
	"math"
)

// valueBytes returns the canonical PLAIN-layout bytes for v, minus any
// length prefix for the variable-length types. The dictionary encoder
// hashes these bytes; the PLAIN encoder for fixed-width types
// writes them directly.
func valueBytes[T PhysicalValue](v T) []byte {
	switch val := any(v).(type) {
	case bool:
		if val {
			return []byte{1}
		}
		return []byte{0}
	case int32:
		return leBytes(uint64(uint32(val)), 4)
	case int64:
		return leBytes(uint64(val), 8)
	case float32:
		return leBytes(uint64(math.Float32bits(val)), 4)
	case float64:
		return leBytes(math.Float64bits(val), 8)
	case Int96:
		out := make([]byte, 12)
		copy(out, val[:])
		return out
	case ByteArray:
		return val.Bytes()
	case FixedLenByteArray:
		return val.Bytes()
	default:
		panic("parquetenc: unreachable physical value type")
	}
}

func leBytes(v uint64, width int) []byte {
	out := make([]byte, width)
	for i := 0; i < width; i++ {
		out[i] = byte(v >> (8 * uint(i)))
	}
	return out
}

// valuesEqual reports whether a and b are the same value. Int96 and the
// scalar types are natively comparable; the byte-array types are not
// (they embed a slice) and are compared by content instead.
func valuesEqual[T PhysicalValue](a, b T) bool {
	switch av := any(a).(type) {
	case ByteArray:
		return bytes.Equal(av.Bytes(), any(b).(ByteArray).Bytes())
	case FixedLenByteArray:
		return bytes.Equal(av.Bytes(), any(b).(FixedLenByteArray).Bytes())
	default:
		return any(a) == any(b)
	}
}

// valueByteSize returns how many bytes v occupies in the dictionary
// page's PLAIN-encoded entry list. A bool counts as one byte, although
// PLAIN packs booleans one bit each.
func valueByteSize[T PhysicalValue](v T) int {
	switch val := any(v).(type) {
	case ByteArray:
		return 4 + val.Len()
	default:
		return len(valueBytes(v))
	}
}

func boolToU64(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}
