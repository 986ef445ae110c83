// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil generates deterministic pseudo-random column values
// for round-trip encoder tests.
package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"math"
)

// Rand implements a deterministic pseudo-random number generator.
// This differs from math/rand in that the exact output is consistent
// across different versions of Go, which matters for test vectors that
// are meant to keep reproducing the same encoded bytes over time.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Int() (x int) {
	r.Encrypt(r.blk[:], r.blk[:])
	x |= int(r.blk[0]) << 0
	x |= int(r.blk[1]) << 8
	x |= int(r.blk[2]) << 16
	x |= int(r.blk[3]) << 24
	x |= int(r.blk[4]) << 32
	x |= int(r.blk[5]) << 40
	x |= int(r.blk[6]) << 48
	x |= int(r.blk[7]&0x3f) << 56
	return x
}

func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	bb := b
	for len(bb) > 0 {
		r.Encrypt(r.blk[:], r.blk[:])
		cnt := copy(bb, r.blk[:])
		bb = bb[cnt:]
	}
	return b
}

func (r *Rand) Perm(n int) []int {
	m := make([]int, n)
	for i := 0; i < n; i++ {
		j := r.Intn(i + 1)
		m[i] = m[j]
		m[j] = i
	}
	return m
}

// Bool returns a pseudo-random boolean.
func (r *Rand) Bool() bool {
	return r.Intn(2) == 1
}

// Int32 returns a pseudo-random int32 spanning the full value range.
func (r *Rand) Int32() int32 {
	return int32(binary.LittleEndian.Uint32(r.Bytes(4)))
}

// Int64 returns a pseudo-random int64 spanning the full value range.
func (r *Rand) Int64() int64 {
	return int64(binary.LittleEndian.Uint64(r.Bytes(8)))
}

// Float32 returns a pseudo-random float32 bit pattern, not filtered for
// NaN or infinity: callers that need a well-behaved distribution should
// derive one from Int32 instead.
func (r *Rand) Float32() float32 {
	bits := binary.LittleEndian.Uint32(r.Bytes(4))
	return math.Float32frombits(bits)
}

// Float64 returns a pseudo-random float64 bit pattern, not filtered for
// NaN or infinity.
func (r *Rand) Float64() float64 {
	bits := binary.LittleEndian.Uint64(r.Bytes(8))
	return math.Float64frombits(bits)
}

// ByteArray returns a pseudo-random byte slice of length [0, maxLen].
func (r *Rand) ByteArray(maxLen int) []byte {
	n := r.Intn(maxLen + 1)
	return r.Bytes(n)
}

// SortedInt64s returns n strictly increasing int64 values starting from
// a pseudo-random base, the input shape DELTA_BINARY_PACKED is meant to
// compress well.
func (r *Rand) SortedInt64s(n int) []int64 {
	out := make([]int64, n)
	v := r.Int64() % (1 << 40) // keep well clear of the int64 range's edges
	for i := range out {
		v += int64(r.Intn(8)) + 1
		out[i] = v
	}
	return out
}
