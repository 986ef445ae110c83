// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package parquetenc

// DeltaByteArrayEncoder implements DELTA_BYTE_ARRAY: each value is
// split into a shared prefix length (the length of the common prefix
// with the previous value) and a suffix, encoded respectively as a
// DELTA_BINARY_PACKED int32 stream and a DELTA_LENGTH_BYTE_ARRAY stream.
//
// previous is deliberately not reset by FlushBuffer: only constructing
// a new encoder clears it, so a later batch of Puts keeps comparing
// against the last value the encoder ever saw.
type DeltaByteArrayEncoder struct {
	prefixLengths *DeltaBitPackEncoder[int32]
	suffixes      *DeltaLengthByteArrayEncoder
	previous      []byte
}

func NewDeltaByteArrayEncoder() *DeltaByteArrayEncoder {
	return &DeltaByteArrayEncoder{
		prefixLengths: NewDeltaBitPackEncoder[int32](),
		suffixes:      NewDeltaLengthByteArrayEncoder(),
	}
}

func (e *DeltaByteArrayEncoder) Encoding() EncodingID { return DeltaByteArray }

func (e *DeltaByteArrayEncoder) Put(values []ByteArray) error {
	prefixLens := make([]int32, len(values))
	suffixes := make([]ByteArray, len(values))

	for i, v := range values {
		current := v.Bytes()
		maxPrefix := len(e.previous)
		if len(current) < maxPrefix {
			maxPrefix = len(current)
		}
		matchLen := 0
		for matchLen < maxPrefix && e.previous[matchLen] == current[matchLen] {
			matchLen++
		}
		prefixLens[i] = int32(matchLen)
		suffixes[i] = v.Slice(matchLen, v.Len()-matchLen)

		e.previous = append(e.previous[:0], current...)
	}

	if err := e.prefixLengths.Put(prefixLens); err != nil {
		return err
	}
	return e.suffixes.Put(suffixes)
}

func (e *DeltaByteArrayEncoder) FlushBuffer() ([]byte, error) {
	prefixBytes, err := e.prefixLengths.FlushBuffer()
	if err != nil {
		return nil, err
	}
	suffixBytes, err := e.suffixes.FlushBuffer()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(prefixBytes)+len(suffixBytes))
	out = append(out, prefixBytes...)
	out = append(out, suffixBytes...)
	return out, nil
}
