// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package parquetenc

// RleEncoder implements Parquet's RLE/bit-packed hybrid run format: a
// stream of runs, each led by a ULEB128 header whose low bit selects
// between a repeated-value run (header >> 1 is the repeat count,
// followed by one bitWidth-wide value) and a bit-packed run (header >> 1
// is a count of 8-value groups, followed by that many groups of
// bitWidth-wide values, least-significant bit first).
//
// Values are buffered eight at a time so a long run of equal values can
// be recognized and collapsed into a single repeated run instead of
// being bit-packed.
type RleEncoder struct {
	bitWidth int
	bw       *BitWriter

	curValue       uint64
	repeatCount    int
	numBuffered    int
	buffered       [rleLookahead]uint64
	bitPackedCount int

	indicator    ReservedBytes
	hasIndicator bool
}

const rleLookahead = 8

// NewRleEncoder returns an RleEncoder that packs values at bitWidth bits
// each into a growable output buffer seeded with initialCapacity bytes.
func NewRleEncoder(bitWidth, initialCapacity int) *RleEncoder {
	return &RleEncoder{bitWidth: bitWidth, bw: NewBitWriter(initialCapacity)}
}

// NewRleEncoderFromBuf returns an RleEncoder that writes into buf
// starting at startOffset and never grows past len(buf); Put reports
// false once buf is exhausted.
func NewRleEncoderFromBuf(bitWidth int, buf []byte, startOffset int) *RleEncoder {
	return &RleEncoder{bitWidth: bitWidth, bw: NewBitWriterFromBuf(buf, startOffset)}
}

// Put appends one value, which must fit in bitWidth bits. It reports
// false if a fixed-capacity output buffer cannot absorb the run this
// value is part of.
func (e *RleEncoder) Put(v uint64) bool {
	if e.curValue == v {
		e.repeatCount++
		if e.repeatCount > rleLookahead {
			return true
		}
	} else {
		if e.repeatCount >= rleLookahead {
			if !e.flushRepeatedRun() {
				return false
			}
		}
		e.repeatCount = 1
		e.curValue = v
	}

	e.buffered[e.numBuffered] = v
	e.numBuffered++
	if e.numBuffered == rleLookahead {
		return e.flushBufferedValues(false)
	}
	return true
}

func (e *RleEncoder) flushBufferedValues(done bool) bool {
	if e.numBuffered == 0 {
		if done {
			if !e.finalizeIndicator() {
				return false
			}
			if e.repeatCount > 0 {
				return e.flushRepeatedRun()
			}
		}
		return true
	}
	if e.repeatCount >= rleLookahead {
		if !e.finalizeIndicator() {
			return false
		}
		e.numBuffered = 0
		if done {
			return e.flushRepeatedRun()
		}
		return true
	}

	numValues := e.numBuffered
	e.bitPackedCount += numValues

	if !done && e.bitPackedCount%rleLookahead != 0 {
		// Hold off committing until a full group of 8 is ready, unless
		// this is the final flush and the group will be zero-padded.
		return true
	}

	if !e.hasIndicator {
		rb, ok := e.bw.GetNextBytePtr(1)
		if !ok {
			return false
		}
		e.indicator = rb
		e.hasIndicator = true
	}

	for i := 0; i < numValues; i++ {
		if !e.bw.PutValue(e.buffered[i], uint(e.bitWidth)) {
			return false
		}
	}
	e.numBuffered = 0

	// The trailing repeats of curValue just written as literal bits no
	// longer count toward a future run: any continuation is tracked
	// fresh from here.
	e.repeatCount = 0

	if done {
		if !e.finalizeIndicator() {
			return false
		}
	}
	return true
}

// finalizeIndicator patches the currently open bit-packed indicator byte
// with its real group count, zero-padding the final group if it isn't
// full, and clears hasIndicator/bitPackedCount so a later run starts a
// fresh group. It is a no-op if no indicator is currently open.
//
// This must run before any mode switch away from bit-packing — whether
// because the caller is done, or because a run of rleLookahead or more
// equal values has interrupted the bit-packed sequence — since once
// PutValue calls for this group stop, the indicator's group count is
// fixed and nothing else will ever patch it.
func (e *RleEncoder) finalizeIndicator() bool {
	if !e.hasIndicator {
		return true
	}
	if pad := e.bitPackedCount % rleLookahead; pad != 0 {
		for i := 0; i < rleLookahead-pad; i++ {
			if !e.bw.PutValue(0, uint(e.bitWidth)) {
				return false
			}
		}
	}
	numGroups := ceilDiv(e.bitPackedCount, rleLookahead)
	e.indicator.Set(0, byte(numGroups<<1)|1)
	e.hasIndicator = false
	e.bitPackedCount = 0
	return true
}

func (e *RleEncoder) flushRepeatedRun() bool {
	if e.repeatCount == 0 {
		return true
	}
	if !e.bw.PutVlqInt(uint64(e.repeatCount) << 1) {
		return false
	}
	if !e.bw.PutAligned(e.curValue, ceilDiv(e.bitWidth, 8)) {
		return false
	}
	e.repeatCount = 0
	e.numBuffered = 0
	return true
}

// FlushBuffer finalizes any pending run and returns the encoded bytes.
// The encoder may be reused afterwards; Clear resets it explicitly, but
// FlushBuffer leaves state such that a fresh Put sequence following it
// starts a clean new run.
func (e *RleEncoder) FlushBuffer() ([]byte, error) {
	allRepeat := e.bitPackedCount == 0 && (e.repeatCount == e.numBuffered || e.numBuffered == 0)
	var ok bool
	if allRepeat {
		ok = e.flushRepeatedRun()
	} else {
		ok = e.flushBufferedValues(true)
	}
	if !ok {
		return nil, generalErrf("rle encoder: output buffer exhausted at bit width %d", e.bitWidth)
	}
	return e.bw.FlushBuffer(), nil
}

// Clear resets the encoder to its just-constructed state, including its
// underlying BitWriter, so it can encode an unrelated run sequence.
func (e *RleEncoder) Clear() {
	e.curValue = 0
	e.repeatCount = 0
	e.numBuffered = 0
	e.bitPackedCount = 0
	e.hasIndicator = false
	e.bw.Clear()
}

// MinBufferSize returns a buffer size sufficient to encode any single
// RLE run, repeated or bit-packed, at the given bit width. The bound is
// deliberately conservative rather than tight.
func MinBufferSize(bitWidth int) int {
	repeatedRunSize := maxVlqBytes + ceilDiv(bitWidth, 8)
	bitPackedRunSize := 1 + bitWidth
	return max(repeatedRunSize, bitPackedRunSize)
}

// MaxBufferSize returns a buffer size sufficient to encode numValues
// values at the given bit width under any sequence of Put calls. The
// bound is deliberately conservative: it assumes the worst case where
// every group of values forms its own run, rather than the tight bound
// a real run-length-aware sizing pass could compute.
func MaxBufferSize(bitWidth, numValues int) int {
	numGroups := ceilDiv(numValues, rleLookahead)
	bitPackedSize := numGroups * (1 + bitWidth)
	repeatedSize := numValues * (maxVlqBytes + ceilDiv(bitWidth, 8))
	return max(bitPackedSize, repeatedSize)
}

const maxVlqBytes = 10

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
