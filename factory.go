// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package parquetenc

// NewEncoder constructs the Encoder for physical type T that implements
// id. It rejects an id this core has never heard of immediately. For an
// id whose implementation only covers a subset of PhysicalValue (RLE:
// BOOLEAN only; the two DELTA_* byte-array encodings: BYTE_ARRAY only;
// DELTA_BINARY_PACKED: INT32/INT64 only), a mismatched T is also
// rejected immediately, with a NotYetImplemented error, rather than
// deferred to the first Put or FlushBuffer. PLAIN and the dictionary
// encoding support every PhysicalValue, so no such check applies to
// them — their compile-time generic parameter is itself the only
// validation needed.
func NewEncoder[T PhysicalValue](id EncodingID, desc ColumnDescriptor, tracker *MemoryTracker) (Encoder[T], error) {
	switch id {
	case Plain:
		return NewPlainEncoder[T](tracker), nil
	case PlainDictionary, RLEDictionary:
		return NewDictEncoder[T](tracker), nil
	case RLE:
		enc, ok := any(NewBoolRleEncoder()).(Encoder[T])
		if !ok {
			return nil, notYetImplementedErrf("RLE encoding is only implemented for BOOLEAN, not %s", desc.PhysicalType())
		}
		return enc, nil
	case DeltaBinaryPacked:
		return newDeltaBitPackEncoderFor[T](desc)
	case DeltaLengthByteArray:
		enc, ok := any(NewDeltaLengthByteArrayEncoder()).(Encoder[T])
		if !ok {
			return nil, notYetImplementedErrf("DELTA_LENGTH_BYTE_ARRAY encoding is only implemented for BYTE_ARRAY, not %s", desc.PhysicalType())
		}
		return enc, nil
	case DeltaByteArray:
		enc, ok := any(NewDeltaByteArrayEncoder()).(Encoder[T])
		if !ok {
			return nil, notYetImplementedErrf("DELTA_BYTE_ARRAY encoding is only implemented for BYTE_ARRAY, not %s", desc.PhysicalType())
		}
		return enc, nil
	case GroupVarInt, BitPacked, ByteStreamSplit:
		return nil, notYetImplementedErrf("%s is a recognized encoding id this core does not implement", id)
	default:
		return nil, notYetImplementedErrf("unknown encoding id %d", id)
	}
}

func newDeltaBitPackEncoderFor[T PhysicalValue](desc ColumnDescriptor) (Encoder[T], error) {
	var zero T
	switch any(zero).(type) {
	case int32:
		return any(NewDeltaBitPackEncoder[int32]()).(Encoder[T]), nil
	case int64:
		return any(NewDeltaBitPackEncoder[int64]()).(Encoder[T]), nil
	default:
		return nil, notYetImplementedErrf("DELTA_BINARY_PACKED encoding is only implemented for INT32 and INT64, not %s", desc.PhysicalType())
	}
}
