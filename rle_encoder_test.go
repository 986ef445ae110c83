// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package parquetenc

import "testing"

func TestRleEncoderBitPackedRun(t *testing.T) {
	vectors := []struct {
		bitWidth int
		values   []uint64
		expected []byte
	}{
		// indicator (1<<1)|1=3, one 8-value bit-packed group at width 1,
		// zero-padded after the 4 real values.
		{1, []uint64{0, 0, 1, 0}, []byte{0x03, 0x04}},
	}
	for i, v := range vectors {
		enc := NewRleEncoder(v.bitWidth, MinBufferSize(v.bitWidth)*2)
		for _, val := range v.values {
			if !enc.Put(val) {
				t.Fatalf("test %d: Put(%d) failed", i, val)
			}
		}
		got, err := enc.FlushBuffer()
		if err != nil {
			t.Fatalf("test %d: FlushBuffer: %v", i, err)
		}
		if string(got) != string(v.expected) {
			t.Errorf("test %d: got % x, want % x", i, got, v.expected)
		}
	}
}

func TestRleEncoderRepeatedRun(t *testing.T) {
	enc := NewRleEncoder(2, MinBufferSize(2)*2)
	for i := 0; i < 10; i++ {
		if !enc.Put(3) {
			t.Fatalf("Put failed at i=%d", i)
		}
	}
	got, err := enc.FlushBuffer()
	if err != nil {
		t.Fatalf("FlushBuffer: %v", err)
	}
	// header = (10<<1)|0 = 20 = 0x14, one byte since < 128; value 3 at
	// bitWidth 2 occupies ceilDiv(2,8)=1 byte.
	want := []byte{0x14, 0x03}
	if string(got) != string(want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestRleEncoderThreeDistinctValues(t *testing.T) {
	// [1,2,3] at bitWidth 2: never repeats, so it bit-packs into a single
	// zero-padded 8-value group.
	enc := NewRleEncoder(2, MinBufferSize(2)*2)
	for _, v := range []uint64{1, 2, 3} {
		if !enc.Put(v) {
			t.Fatal("Put failed")
		}
	}
	got, err := enc.FlushBuffer()
	if err != nil {
		t.Fatalf("FlushBuffer: %v", err)
	}
	// indicator = (1<<1)|1 = 3; one zero-padded group of 8 values at 2
	// bits each occupies 16 bits = 2 bytes.
	want := []byte{0x03, 0x39, 0x00}
	if string(got) != string(want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestMinAndMaxBufferSize(t *testing.T) {
	if MinBufferSize(1) <= 0 {
		t.Error("MinBufferSize(1) should be positive")
	}
	if got := MaxBufferSize(1, 100); got < MinBufferSize(1) {
		t.Errorf("MaxBufferSize(1, 100) = %d, smaller than MinBufferSize(1) = %d", got, MinBufferSize(1))
	}
}
