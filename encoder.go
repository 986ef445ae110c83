// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package parquetenc

// Encoder is the contract every value encoder in this package satisfies.
// Put accumulates values; FlushBuffer finalizes whatever has been
// accumulated since construction (or since the previous FlushBuffer)
// into its wire bytes and resets the encoder's accumulation state so it
// may be Put into again.
type Encoder[T PhysicalValue] interface {
	Put(values []T) error
	Encoding() EncodingID
	FlushBuffer() ([]byte, error)
}

var (
	_ Encoder[int32]             = (*PlainEncoder[int32])(nil)
	_ Encoder[ByteArray]         = (*PlainEncoder[ByteArray])(nil)
	_ Encoder[int32]             = (*DictEncoder[int32])(nil)
	_ Encoder[bool]              = (*BoolRleEncoder)(nil)
	_ Encoder[int32]             = (*DeltaBitPackEncoder[int32])(nil)
	_ Encoder[int64]             = (*DeltaBitPackEncoder[int64])(nil)
	_ Encoder[ByteArray]         = (*DeltaLengthByteArrayEncoder)(nil)
	_ Encoder[ByteArray]         = (*DeltaByteArrayEncoder)(nil)
)
