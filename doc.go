// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package parquetenc implements the column-value encoding layer of the
// Parquet columnar format: PLAIN, dictionary, RLE, and the three DELTA_*
// encodings, along with the BitWriter and RLE/bit-packed hybrid writer
// they are built from.
//
// This package does not implement a Parquet writer. It has no notion of
// row groups, page headers, Thrift metadata, compression codecs, or
// statistics; it only turns a batch of typed column values into the
// byte layout a page writer would embed verbatim into a data page. A
// ColumnDescriptor is accepted by NewEncoder, which reads only its
// physical type, to name it in errors; it is otherwise opaque to this
// package.
package parquetenc
