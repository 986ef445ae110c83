// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package parquetenc

// PlainEncoder implements the PLAIN encoding for any supported physical
// type: fixed-width types are written as their little-endian bytes
// back-to-back, BOOLEAN values are bit-packed least-significant-bit
// first, and BYTE_ARRAY values are each preceded by a 4-byte
// little-endian length. FIXED_LEN_BYTE_ARRAY values carry no length
// prefix; their length is a schema-level contract outside this package.
type PlainEncoder[T PhysicalValue] struct {
	buf    *ByteBuffer
	bw     *BitWriter
	isBool bool
}

// NewPlainEncoder returns a PlainEncoder reporting buffer growth to
// tracker, which may be nil.
func NewPlainEncoder[T PhysicalValue](tracker *MemoryTracker) *PlainEncoder[T] {
	var zero T
	_, isBool := any(zero).(bool)
	e := &PlainEncoder[T]{buf: NewBuffer[byte](tracker), isBool: isBool}
	if isBool {
		e.bw = NewBitWriter(64)
	}
	return e
}

func (e *PlainEncoder[T]) Encoding() EncodingID { return Plain }

func (e *PlainEncoder[T]) Put(values []T) (err error) {
	defer recoverPanic(&err)
	for _, v := range values {
		switch val := any(v).(type) {
		case bool:
			ok := e.bw.PutValue(boolToU64(val), 1)
			if !ok {
				panic(generalErrf("plain encoder: bit writer overflow"))
			}
		case ByteArray:
			e.buf.AppendSlice(leBytes(uint64(uint32(val.Len())), 4))
			e.buf.AppendSlice(val.Bytes())
		default:
			e.buf.AppendSlice(valueBytes(v))
		}
	}
	return nil
}

func (e *PlainEncoder[T]) FlushBuffer() (out []byte, err error) {
	defer recoverPanic(&err)
	if e.isBool {
		e.buf.AppendSlice(e.bw.FlushBuffer())
		e.bw.Clear()
	}
	return e.buf.Consume(), nil
}
