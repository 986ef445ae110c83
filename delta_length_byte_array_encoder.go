// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package parquetenc

// DeltaLengthByteArrayEncoder implements DELTA_LENGTH_BYTE_ARRAY: every
// value's length is written as a DELTA_BINARY_PACKED stream of int32
// lengths, followed by the values' raw bytes back-to-back with no
// per-value prefix of their own.
type DeltaLengthByteArrayEncoder struct {
	lengths *DeltaBitPackEncoder[int32]
	values  []ByteArray
}

func NewDeltaLengthByteArrayEncoder() *DeltaLengthByteArrayEncoder {
	return &DeltaLengthByteArrayEncoder{lengths: NewDeltaBitPackEncoder[int32]()}
}

func (e *DeltaLengthByteArrayEncoder) Encoding() EncodingID { return DeltaLengthByteArray }

func (e *DeltaLengthByteArrayEncoder) Put(values []ByteArray) error {
	lens := make([]int32, len(values))
	for i, v := range values {
		lens[i] = int32(v.Len())
	}
	if err := e.lengths.Put(lens); err != nil {
		return err
	}
	for _, v := range values {
		e.values = append(e.values, v.Clone())
	}
	return nil
}

func (e *DeltaLengthByteArrayEncoder) FlushBuffer() ([]byte, error) {
	lengthBytes, err := e.lengths.FlushBuffer()
	if err != nil {
		return nil, err
	}

	total := len(lengthBytes)
	for _, v := range e.values {
		total += v.Len()
	}
	out := make([]byte, 0, total)
	out = append(out, lengthBytes...)
	for _, v := range e.values {
		out = append(out, v.Bytes()...)
	}
	e.values = e.values[:0]
	return out, nil
}
