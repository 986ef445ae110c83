// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package parquetenc

import "encoding/binary"

// BoolRleEncoder implements the standalone RLE encoding, which Parquet
// only ever uses for BOOLEAN columns. Its output is the RLE/bit-packed
// hybrid stream produced by RleEncoder at a fixed bit width of 1,
// prefixed by its own 4-byte little-endian length.
type BoolRleEncoder struct {
	enc *RleEncoder
}

const boolRleInitialCapacity = 1024

// NewBoolRleEncoder returns a BoolRleEncoder. It does not allocate its
// underlying RleEncoder until the first Put: flushing one that never
// received a Put is a programmer error, not an empty-stream encoding.
func NewBoolRleEncoder() *BoolRleEncoder {
	return &BoolRleEncoder{}
}

func (e *BoolRleEncoder) Encoding() EncodingID { return RLE }

func (e *BoolRleEncoder) Put(values []bool) error {
	if e.enc == nil {
		e.enc = NewRleEncoder(1, boolRleInitialCapacity)
	}
	for _, v := range values {
		if !e.enc.Put(boolToU64(v)) {
			return generalErrf("rle value encoder: output buffer full")
		}
	}
	return nil
}

func (e *BoolRleEncoder) FlushBuffer() ([]byte, error) {
	if e.enc == nil {
		panic("parquetenc: RLE value encoder flushed before any Put")
	}
	body, err := e.enc.FlushBuffer()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 4+len(body))
	binary.LittleEndian.PutUint32(out, uint32(len(body)))
	copy(out[4:], body)
	e.enc.Clear()
	return out, nil
}
