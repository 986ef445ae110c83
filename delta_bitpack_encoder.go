// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package parquetenc

import "math"

// deltaInt is the set of physical types DELTA_BINARY_PACKED supports.
// Any other type argument to DeltaBitPackEncoder fails to compile.
type deltaInt interface {
	int32 | int64
}

// DeltaBitPackEncoder implements DELTA_BINARY_PACKED: values are grouped
// into fixed-size blocks, each block's deltas from the previous value
// are split into mini-blocks, and each mini-block is bit-packed at the
// narrowest width that fits (maxDelta - minDelta) for that mini-block.
// A page header precedes the block stream: block size, mini-block count
// and total value count as ULEB128 varints, then the first value as a
// zig-zag varint.
type DeltaBitPackEncoder[T deltaInt] struct {
	pageHeader *BitWriter
	bw         *BitWriter

	blockSize     int
	numMiniBlocks int
	miniBlockSize int

	totalValues   int
	firstValue    int64
	currentValue  int64
	valuesInBlock int
	deltas        []int64
}

const (
	deltaDefaultBlockSize     = 128
	deltaDefaultNumMiniBlocks = 4
	deltaPageHeaderHint       = 32
	deltaBodyHint             = 1024
)

// NewDeltaBitPackEncoder returns a DeltaBitPackEncoder using Parquet's
// conventional block layout: 128 values per block split across 4
// mini-blocks of 32 values each.
func NewDeltaBitPackEncoder[T deltaInt]() *DeltaBitPackEncoder[T] {
	return &DeltaBitPackEncoder[T]{
		pageHeader:    NewBitWriter(deltaPageHeaderHint),
		bw:            NewBitWriter(deltaBodyHint),
		blockSize:     deltaDefaultBlockSize,
		numMiniBlocks: deltaDefaultNumMiniBlocks,
		miniBlockSize: deltaDefaultBlockSize / deltaDefaultNumMiniBlocks,
		deltas:        make([]int64, deltaDefaultBlockSize),
	}
}

func (e *DeltaBitPackEncoder[T]) Encoding() EncodingID { return DeltaBinaryPacked }

func (e *DeltaBitPackEncoder[T]) asI64(v T) int64 {
	switch x := any(v).(type) {
	case int32:
		return int64(x)
	case int64:
		return x
	}
	panic("parquetenc: unreachable delta physical type")
}

// subtract computes left-right with wraparound at T's native width,
// widened back to int64.
func (e *DeltaBitPackEncoder[T]) subtract(left, right int64) int64 {
	var zero T
	switch any(zero).(type) {
	case int32:
		return int64(int32(left) - int32(right))
	case int64:
		return left - right
	}
	panic("parquetenc: unreachable delta physical type")
}

// subtractU64 computes left-right the same way as subtract, but widens
// the wrapped native-width result through its unsigned counterpart
// first, so the result's bit pattern is the unsigned magnitude
// numRequiredBits needs rather than a sign-extended one.
func (e *DeltaBitPackEncoder[T]) subtractU64(left, right int64) uint64 {
	var zero T
	switch any(zero).(type) {
	case int32:
		return uint64(uint32(int32(left) - int32(right)))
	case int64:
		return uint64(left - right)
	}
	panic("parquetenc: unreachable delta physical type")
}

func (e *DeltaBitPackEncoder[T]) Put(values []T) (err error) {
	defer recoverPanic(&err)
	if len(values) == 0 {
		return nil
	}

	idx := 0
	if e.totalValues == 0 {
		e.firstValue = e.asI64(values[0])
		e.currentValue = e.firstValue
		idx = 1
	}
	e.totalValues += len(values)

	for ; idx < len(values); idx++ {
		v := e.asI64(values[idx])
		e.deltas[e.valuesInBlock] = e.subtract(v, e.currentValue)
		e.currentValue = v
		e.valuesInBlock++
		if e.valuesInBlock == e.blockSize {
			if ferr := e.flushBlockValues(); ferr != nil {
				return ferr
			}
		}
	}
	return nil
}

func (e *DeltaBitPackEncoder[T]) flushBlockValues() error {
	if e.valuesInBlock == 0 {
		return nil
	}

	minDelta := int64(math.MaxInt64)
	for i := 0; i < e.valuesInBlock; i++ {
		if e.deltas[i] < minDelta {
			minDelta = e.deltas[i]
		}
	}
	if !e.bw.PutZigZagVlqInt(minDelta) {
		return generalErrf("delta bit pack encoder: buffer overflow writing min delta")
	}

	reserved, ok := e.bw.GetNextBytePtr(e.numMiniBlocks)
	if !ok {
		return generalErrf("delta bit pack encoder: buffer overflow reserving mini-block widths")
	}

	remaining := e.valuesInBlock
	for i := 0; i < e.numMiniBlocks; i++ {
		n := e.miniBlockSize
		if n > remaining {
			n = remaining
		}
		base := i * e.miniBlockSize

		var bitWidth int
		if n > 0 {
			maxDelta := int64(math.MinInt64)
			for j := 0; j < n; j++ {
				if e.deltas[base+j] > maxDelta {
					maxDelta = e.deltas[base+j]
				}
			}
			bitWidth = numRequiredBits(e.subtractU64(maxDelta, minDelta))
		}
		reserved.Set(i, byte(bitWidth))

		for j := 0; j < n; j++ {
			packed := e.subtractU64(e.deltas[base+j], minDelta)
			if !e.bw.PutValue(packed, uint(bitWidth)) {
				return generalErrf("delta bit pack encoder: buffer overflow writing mini-block values")
			}
		}
		for j := n; j < e.miniBlockSize; j++ {
			if !e.bw.PutValue(0, uint(bitWidth)) {
				return generalErrf("delta bit pack encoder: buffer overflow padding mini-block")
			}
		}
		remaining -= n
	}

	e.valuesInBlock = 0
	return nil
}

func (e *DeltaBitPackEncoder[T]) writePageHeader() {
	e.pageHeader.PutVlqInt(uint64(e.blockSize))
	e.pageHeader.PutVlqInt(uint64(e.numMiniBlocks))
	e.pageHeader.PutVlqInt(uint64(e.totalValues))
	e.pageHeader.PutZigZagVlqInt(e.firstValue)
}

func (e *DeltaBitPackEncoder[T]) FlushBuffer() (out []byte, err error) {
	defer recoverPanic(&err)
	if ferr := e.flushBlockValues(); ferr != nil {
		return nil, ferr
	}
	e.writePageHeader()

	header := e.pageHeader.FlushBuffer()
	body := e.bw.FlushBuffer()
	out = make([]byte, 0, len(header)+len(body))
	out = append(out, header...)
	out = append(out, body...)

	e.pageHeader.Clear()
	e.bw.Clear()
	e.totalValues = 0
	e.firstValue = 0
	e.currentValue = 0
	e.valuesInBlock = 0

	return out, nil
}
