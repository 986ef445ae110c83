// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package parquetenc

import "testing"

func TestDeltaByteArrayEncoderPrefixSplitting(t *testing.T) {
	// axis, axle, bye: axis has no predecessor (prefix 0), axle shares
	// prefix "ax" (length 2) with axis, and bye shares no prefix with
	// axle.
	prefixLens := []int32{0, 2, 0}
	suffixes := []string{"axis", "le", "bye"}

	enc := NewDeltaByteArrayEncoder()
	values := []ByteArray{
		NewByteArray([]byte("axis")),
		NewByteArray([]byte("axle")),
		NewByteArray([]byte("bye")),
	}
	if err := enc.Put(values); err != nil {
		t.Fatalf("Put: %v", err)
	}

	wantPrefix := NewDeltaBitPackEncoder[int32]()
	_ = wantPrefix.Put(prefixLens)
	wantPrefixBytes, err := wantPrefix.FlushBuffer()
	if err != nil {
		t.Fatalf("computing expected prefix bytes: %v", err)
	}

	gotOut, err := enc.FlushBuffer()
	if err != nil {
		t.Fatalf("FlushBuffer: %v", err)
	}
	if len(gotOut) < len(wantPrefixBytes) {
		t.Fatalf("output shorter than expected prefix stream")
	}
	if string(gotOut[:len(wantPrefixBytes)]) != string(wantPrefixBytes) {
		t.Errorf("prefix-length stream mismatch:\ngot  % x\nwant % x", gotOut[:len(wantPrefixBytes)], wantPrefixBytes)
	}

	wantSuffixConcat := ""
	for _, s := range suffixes {
		wantSuffixConcat += s
	}
	tail := gotOut[len(wantPrefixBytes):]
	if len(tail) < len(wantSuffixConcat) || string(tail[len(tail)-len(wantSuffixConcat):]) != wantSuffixConcat {
		t.Errorf("suffix bytes tail = %q, want to end with %q", tail, wantSuffixConcat)
	}
}

func TestDeltaByteArrayEncoderPreviousSurvivesFlush(t *testing.T) {
	enc := NewDeltaByteArrayEncoder()
	if err := enc.Put([]ByteArray{NewByteArray([]byte("abcdef"))}); err != nil {
		t.Fatalf("first Put: %v", err)
	}
	if _, err := enc.FlushBuffer(); err != nil {
		t.Fatalf("first FlushBuffer: %v", err)
	}
	if string(enc.previous) != "abcdef" {
		t.Fatalf("previous = %q, want %q", enc.previous, "abcdef")
	}

	// A later Put, after a flush, should still compare against the
	// previous encoder's last-seen value rather than starting fresh.
	if err := enc.Put([]ByteArray{NewByteArray([]byte("abcxyz"))}); err != nil {
		t.Fatalf("second Put: %v", err)
	}
	if string(enc.previous) != "abcxyz" {
		t.Errorf("previous after second Put = %q, want %q", enc.previous, "abcxyz")
	}
}
