// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package parquetenc

import "testing"

func TestDeltaBitPackEncoderSmallBlock(t *testing.T) {
	enc := NewDeltaBitPackEncoder[int32]()
	if err := enc.Put([]int32{1, 2, 4}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := enc.FlushBuffer()
	if err != nil {
		t.Fatalf("FlushBuffer: %v", err)
	}

	want := []byte{
		0x80, 0x01, // blockSize = 128, VLQ
		0x04,       // numMiniBlocks = 4, VLQ
		0x03,       // totalValueCount = 3, VLQ
		0x02,       // firstValue = 1, zig-zag VLQ
		0x02,       // minDelta = 1, zig-zag VLQ
		0x01, 0x00, 0x00, 0x00, // mini-block bit widths: 1, 0, 0, 0
		0x02, 0x00, 0x00, 0x00, // mini-block 0 packed: deltas 0, 1 at width 1, zero-padded
	}
	if string(got) != string(want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestDeltaBitPackEncoderSingleValue(t *testing.T) {
	enc := NewDeltaBitPackEncoder[int32]()
	if err := enc.Put([]int32{42}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := enc.FlushBuffer()
	if err != nil {
		t.Fatalf("FlushBuffer: %v", err)
	}
	// blockSize=128, numMiniBlocks=4, totalValueCount=1, firstValue=42,
	// and no block bytes at all since there are no deltas to accumulate.
	want := []byte{
		0x80, 0x01, // blockSize = 128
		0x04,       // numMiniBlocks = 4
		0x01,       // totalValueCount = 1
		0x54,       // firstValue = 42, zig-zag VLQ (84 = 0x54)
	}
	if string(got) != string(want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestDeltaBitPackEncoderSortedInputCompressesWell(t *testing.T) {
	const n = 256
	values := make([]int32, n)
	for i := range values {
		values[i] = int32(i + 1)
	}
	enc := NewDeltaBitPackEncoder[int32]()
	if err := enc.Put(values); err != nil {
		t.Fatalf("Put: %v", err)
	}
	out, err := enc.FlushBuffer()
	if err != nil {
		t.Fatalf("FlushBuffer: %v", err)
	}
	// Every delta is 1, so every mini-block's bit width is 0: the
	// encoded size should stay small and roughly proportional to the
	// number of blocks, not to n.
	if len(out) > 64 {
		t.Errorf("encoded size for a constant-delta run = %d bytes, expected it to stay small", len(out))
	}
}

func TestDeltaBitPackEncoderWrapsAtNativeWidth(t *testing.T) {
	enc := NewDeltaBitPackEncoder[int32]()
	// A delta that overflows int32 must wrap the same way ordinary Go
	// signed-integer subtraction wraps, not be sign-extended from int64.
	big := int32(2147483647)
	small := int32(-2147483648)
	if err := enc.Put([]int32{big, small}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := enc.FlushBuffer(); err != nil {
		t.Fatalf("FlushBuffer: %v", err)
	}
	// MinInt32 - MaxInt32 wraps to 1 in 32-bit two's complement, not to
	// the huge negative value a naive int64 subtraction would produce.
	got := enc.subtract(int64(small), int64(big))
	if got != 1 {
		t.Errorf("subtract wrapped to %d, want 1", got)
	}
}

func TestDeltaBitPackEncoderReusableAcrossFlushes(t *testing.T) {
	enc := NewDeltaBitPackEncoder[int64]()
	_ = enc.Put([]int64{10, 20, 30})
	first, err := enc.FlushBuffer()
	if err != nil {
		t.Fatalf("first FlushBuffer: %v", err)
	}
	_ = enc.Put([]int64{1})
	second, err := enc.FlushBuffer()
	if err != nil {
		t.Fatalf("second FlushBuffer: %v", err)
	}
	if string(first) == string(second) {
		t.Error("expected distinct output across independent flushes")
	}
	// A single-value block has no deltas, so totalValueCount should be 1:
	// the page header's 3rd VLQ, after blockSize (2 bytes) and
	// numMiniBlocks (1 byte).
	if second[3] != 0x01 {
		t.Errorf("totalValueCount byte = %#x, want 0x01", second[3])
	}
}

func TestDeltaBitPackEncoderMonotonicInput(t *testing.T) {
	enc := NewDeltaBitPackEncoder[int64]()
	values := make([]int64, 200) // spans more than one block (blockSize=128)
	for i := range values {
		values[i] = int64(i) * 3
	}
	if err := enc.Put(values); err != nil {
		t.Fatalf("Put: %v", err)
	}
	out, err := enc.FlushBuffer()
	if err != nil {
		t.Fatalf("FlushBuffer: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected non-empty output")
	}
}
