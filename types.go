// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package parquetenc

// PhysicalType identifies the on-disk representation of a column's values.
// It mirrors the parquet.Type enumeration that a real schema layer would
// import from generated Thrift code; this package only consumes its
// values and never constructs the full Thrift metadata around it.
type PhysicalType int

const (
	PhysicalBoolean PhysicalType = iota
	PhysicalInt32
	PhysicalInt64
	PhysicalInt96
	PhysicalFloat
	PhysicalDouble
	PhysicalByteArray
	PhysicalFixedLenByteArray
)

func (t PhysicalType) String() string {
	switch t {
	case PhysicalBoolean:
		return "BOOLEAN"
	case PhysicalInt32:
		return "INT32"
	case PhysicalInt64:
		return "INT64"
	case PhysicalInt96:
		return "INT96"
	case PhysicalFloat:
		return "FLOAT"
	case PhysicalDouble:
		return "DOUBLE"
	case PhysicalByteArray:
		return "BYTE_ARRAY"
	case PhysicalFixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

// EncodingID mirrors the parquet.Encoding enumeration. Values this core
// does not implement (GroupVarInt and BitPacked are deprecated upstream;
// ByteStreamSplit postdates the source this core was distilled from) are
// still defined so the factory can tell "recognized but unimplemented"
// apart from "never heard of this id".
type EncodingID int

const (
	Plain EncodingID = iota
	GroupVarInt
	PlainDictionary
	RLE
	BitPacked
	DeltaBinaryPacked
	DeltaLengthByteArray
	DeltaByteArray
	RLEDictionary
	ByteStreamSplit
)

func (id EncodingID) String() string {
	switch id {
	case Plain:
		return "PLAIN"
	case GroupVarInt:
		return "GROUP_VAR_INT"
	case PlainDictionary:
		return "PLAIN_DICTIONARY"
	case RLE:
		return "RLE"
	case BitPacked:
		return "BIT_PACKED"
	case DeltaBinaryPacked:
		return "DELTA_BINARY_PACKED"
	case DeltaLengthByteArray:
		return "DELTA_LENGTH_BYTE_ARRAY"
	case DeltaByteArray:
		return "DELTA_BYTE_ARRAY"
	case RLEDictionary:
		return "RLE_DICTIONARY"
	case ByteStreamSplit:
		return "BYTE_STREAM_SPLIT"
	default:
		return "UNKNOWN"
	}
}

// Int96 holds a 12-byte INT96 column value. Unlike ByteArray, it is a
// plain array and so is directly comparable with ==, which the
// dictionary encoder's hash table relies on.
type Int96 [12]byte

// rawBytes is the shared storage behind ByteArray and FixedLenByteArray.
// The two are kept as distinct named types, rather than one type plus a
// runtime flag, so that the PLAIN encoder's per-type switch tells a
// length-prefixed value from a fixed-length one by its type, and a value
// of one type cannot be Put into an encoder instantiated for the other.
// The factory rejects the DELTA_* byte-array encodings for
// FixedLenByteArray at construction time, not at compile time.
type rawBytes struct {
	data []byte
}

func (b rawBytes) Len() int      { return len(b.data) }
func (b rawBytes) Bytes() []byte { return b.data }

// ByteArray is an immutable view over a variable-length byte sequence.
// Clone and Slice are cheap: both may share storage with the original.
type ByteArray struct{ rawBytes }

// NewByteArray wraps b as a ByteArray. b is not copied.
func NewByteArray(b []byte) ByteArray { return ByteArray{rawBytes{b}} }

func (b ByteArray) Clone() ByteArray { return ByteArray{rawBytes{b.data}} }

func (b ByteArray) Slice(offset, length int) ByteArray {
	return ByteArray{rawBytes{b.data[offset : offset+length]}}
}

// FixedLenByteArray is an immutable view over a fixed-length byte
// sequence whose length is a schema-level contract external to this
// package; PLAIN encodes it without a length prefix.
type FixedLenByteArray struct{ rawBytes }

func NewFixedLenByteArray(b []byte) FixedLenByteArray {
	return FixedLenByteArray{rawBytes{b}}
}

func (b FixedLenByteArray) Clone() FixedLenByteArray {
	return FixedLenByteArray{rawBytes{b.data}}
}

// ColumnDescriptor is the minimal slice of schema metadata the encoders
// consume. It is opaque beyond these two accessors: everything else a
// real column descriptor carries (name, repetition, logical type,
// nesting) belongs to the schema layer this core deliberately excludes.
type ColumnDescriptor interface {
	PhysicalType() PhysicalType
	TypeLength() int
}

// SimpleColumnDescriptor is a minimal ColumnDescriptor implementation
// sufficient for constructing encoders outside of a full schema layer.
type SimpleColumnDescriptor struct {
	Type   PhysicalType
	Length int
}

func (d SimpleColumnDescriptor) PhysicalType() PhysicalType { return d.Type }
func (d SimpleColumnDescriptor) TypeLength() int            { return d.Length }

// PhysicalValue enumerates the Go types this package's generic encoders
// may be instantiated with. Any other type argument fails to compile,
// which is how this core rejects unsupported physical types statically
// rather than at a runtime factory check wherever Go's type system makes
// that possible.
type PhysicalValue interface {
	bool | int32 | int64 | Int96 | float32 | float64 | ByteArray | FixedLenByteArray
}
