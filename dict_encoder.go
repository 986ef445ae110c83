// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package parquetenc

// DictEncoder builds a dictionary of the distinct values it is Put, and
// encodes each Put'd value as an index into that dictionary. It always
// reports Encoding() == PlainDictionary, even when constructed to serve
// an RLE_DICTIONARY request: a page writer layered on top of this core
// picks the wire tag that actually corresponds to what the caller asked
// for, but there is only one dictionary encoder implementation here.
type DictEncoder[T PhysicalValue] struct {
	tracker *MemoryTracker

	hashTableSize int
	hashSlots     []int32

	uniques         []T
	dictEncodedSize int64

	bufferedIndices []int32
}

const (
	dictInitialHashTableSize = 1 << 10
	dictMaxLoadFactor        = 0.7
	dictEmptySlot            = -1
)

// NewDictEncoder returns a DictEncoder reporting allocations to tracker,
// which may be nil.
func NewDictEncoder[T PhysicalValue](tracker *MemoryTracker) *DictEncoder[T] {
	e := &DictEncoder[T]{
		tracker:       tracker,
		hashTableSize: dictInitialHashTableSize,
	}
	e.hashSlots = newEmptySlots(dictInitialHashTableSize)
	tracker.Alloc(int64(dictInitialHashTableSize) * 4)
	return e
}

func newEmptySlots(n int) []int32 {
	s := make([]int32, n)
	for i := range s {
		s[i] = dictEmptySlot
	}
	return s
}

func (e *DictEncoder[T]) Encoding() EncodingID { return PlainDictionary }

// NumEntries reports the number of distinct values currently in the
// dictionary.
func (e *DictEncoder[T]) NumEntries() int { return len(e.uniques) }

// DictEncodedSize reports the byte size the dictionary's entries would
// occupy PLAIN-encoded, i.e. the size of the page WriteDict produces,
// except for BOOLEAN, where each entry is counted as one byte although
// WriteDict bit-packs them.
func (e *DictEncoder[T]) DictEncodedSize() int64 { return e.dictEncodedSize }

func (e *DictEncoder[T]) Put(values []T) (err error) {
	defer recoverPanic(&err)
	for _, v := range values {
		e.putOne(v)
	}
	return nil
}

func (e *DictEncoder[T]) putOne(v T) {
	h := hashBytes(valueBytes(v))
	mask := uint32(e.hashTableSize - 1)
	j := h & mask
	idx := e.hashSlots[j]
	for idx != dictEmptySlot && !valuesEqual(e.uniques[idx], v) {
		j = (j + 1) & mask
		idx = e.hashSlots[j]
	}

	if idx == dictEmptySlot {
		idx = int32(len(e.uniques))
		e.hashSlots[j] = idx
		e.addDictKey(v)
		if float64(len(e.uniques)) > float64(e.hashTableSize)*dictMaxLoadFactor {
			e.doubleTableSize()
		}
	}

	e.bufferedIndices = append(e.bufferedIndices, idx)
}

func (e *DictEncoder[T]) addDictKey(v T) {
	e.uniques = append(e.uniques, v)
	size := int64(valueByteSize(v))
	e.dictEncodedSize += size
	e.tracker.Alloc(size)
}

func (e *DictEncoder[T]) doubleTableSize() {
	newSize := e.hashTableSize * 2
	newSlots := newEmptySlots(newSize)
	mask := uint32(newSize - 1)
	for i := 0; i < e.hashTableSize; i++ {
		idx := e.hashSlots[i]
		if idx == dictEmptySlot {
			continue
		}
		h := hashBytes(valueBytes(e.uniques[idx]))
		j := h & mask
		for newSlots[j] != dictEmptySlot {
			j = (j + 1) & mask
		}
		newSlots[j] = idx
	}
	e.tracker.Alloc(int64(newSize-e.hashTableSize) * 4)
	e.hashTableSize = newSize
	e.hashSlots = newSlots
}

// bitWidth returns the number of bits needed to index the dictionary:
// 0 when empty, 1 for a single entry, and otherwise the number of bits
// required to represent numEntries - 1, equivalent to ceil(log2(n)).
func (e *DictEncoder[T]) bitWidth() int {
	n := len(e.uniques)
	switch {
	case n == 0:
		return 0
	case n == 1:
		return 1
	default:
		return numRequiredBits(uint64(n - 1))
	}
}

// WriteDict PLAIN-encodes the dictionary's entries in insertion order,
// the layout a dictionary page embeds verbatim.
func (e *DictEncoder[T]) WriteDict() ([]byte, error) {
	plain := NewPlainEncoder[T](e.tracker)
	if err := plain.Put(e.uniques); err != nil {
		return nil, err
	}
	return plain.FlushBuffer()
}

// FlushBuffer encodes the buffered indices as a 1-byte bit width
// followed by an RLE/bit-packed hybrid stream at that width, and resets
// the buffered indices (the dictionary itself is not reset: a later
// Put may still add entries and a later WriteDict picks those up too).
func (e *DictEncoder[T]) FlushBuffer() (out []byte, err error) {
	defer recoverPanic(&err)
	bitWidth := e.bitWidth()
	rle := NewRleEncoder(bitWidth, MinBufferSize(bitWidth)*4)
	for _, idx := range e.bufferedIndices {
		if !rle.Put(uint64(idx)) {
			panic(generalErrf("dict encoder: rle buffer overflow"))
		}
	}
	rleBytes, ferr := rle.FlushBuffer()
	if ferr != nil {
		return nil, ferr
	}

	out = make([]byte, 0, 1+len(rleBytes))
	out = append(out, byte(bitWidth))
	out = append(out, rleBytes...)
	e.bufferedIndices = e.bufferedIndices[:0]
	return out, nil
}
