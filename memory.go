// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package parquetenc

import "sync/atomic"

// MemoryTracker accounts for the cumulative capacity of every growable
// Buffer handed the same tracker. A nil *MemoryTracker is valid and
// simply discards every report, so encoders that don't care to track
// memory can be built with one left unset.
//
// A tracker shared by encoders running on more than one goroutine relies
// on exactly this: Alloc and Allocated are safe for concurrent use, but
// nothing else about an encoder is, so sharing a tracker across threads
// is the caller's decision to make independently of this package.
type MemoryTracker struct {
	allocated int64
}

// NewMemoryTracker returns a MemoryTracker starting at zero.
func NewMemoryTracker() *MemoryTracker { return &MemoryTracker{} }

// Alloc reports a change in allocated bytes. delta is negative when a
// buffer shrinks or is released.
func (m *MemoryTracker) Alloc(delta int64) {
	if m == nil {
		return
	}
	atomic.AddInt64(&m.allocated, delta)
}

// Allocated returns the current cumulative byte count.
func (m *MemoryTracker) Allocated() int64 {
	if m == nil {
		return 0
	}
	return atomic.LoadInt64(&m.allocated)
}
