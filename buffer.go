// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package parquetenc

import "unsafe"

// Buffer is a growable, type-parametric buffer whose capacity changes
// are reported to a shared MemoryTracker. PlainEncoder accumulates its
// output in one of these; the other encoders keep their state in
// BitWriters and plain slices, whose growth is not reported.
type Buffer[T any] struct {
	data    []T
	tracker *MemoryTracker
}

// NewBuffer returns an empty Buffer reporting capacity changes to
// tracker, which may be nil.
func NewBuffer[T any](tracker *MemoryTracker) *Buffer[T] {
	return &Buffer[T]{tracker: tracker}
}

// ByteBuffer is the Buffer instantiation PlainEncoder accumulates its
// encoded output into.
type ByteBuffer = Buffer[byte]

func (b *Buffer[T]) Len() int   { return len(b.data) }
func (b *Buffer[T]) Data() []T  { return b.data }
func (b *Buffer[T]) At(i int) T { return b.data[i] }

func (b *Buffer[T]) Set(i int, v T) { b.data[i] = v }

// Append adds v to the end of the buffer.
func (b *Buffer[T]) Append(v T) {
	oldCap := cap(b.data)
	b.data = append(b.data, v)
	b.reportDelta(oldCap, cap(b.data))
}

// AppendSlice adds every element of vs to the end of the buffer.
func (b *Buffer[T]) AppendSlice(vs []T) {
	oldCap := cap(b.data)
	b.data = append(b.data, vs...)
	b.reportDelta(oldCap, cap(b.data))
}

// Resize grows or shrinks the buffer to exactly n elements, filling any
// newly-visible elements with fill.
func (b *Buffer[T]) Resize(n int, fill T) {
	if n <= len(b.data) {
		b.data = b.data[:n]
		return
	}
	oldCap := cap(b.data)
	for len(b.data) < n {
		b.data = append(b.data, fill)
	}
	b.reportDelta(oldCap, cap(b.data))
}

// Clear empties the buffer without releasing its backing capacity.
func (b *Buffer[T]) Clear() {
	b.data = b.data[:0]
}

// Consume returns the buffer's contents and resets the buffer to empty,
// reporting the released capacity back to the tracker. The returned
// slice is the buffer's own backing array; callers that intend to keep
// writing into the Buffer after Consume get a fresh, empty one.
func (b *Buffer[T]) Consume() []T {
	out := b.data
	if cap(out) != 0 {
		b.reportDelta(cap(out), 0)
	}
	b.data = nil
	return out
}

func (b *Buffer[T]) reportDelta(oldCap, newCap int) {
	if b.tracker == nil || oldCap == newCap {
		return
	}
	var zero T
	elemSize := int64(unsafe.Sizeof(zero))
	b.tracker.Alloc(int64(newCap-oldCap) * elemSize)
}
