// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package caption implements read-only, memory-mapped lookups over a
// time-aligned caption index: an on-disk inverted index whose postings
// carry both a token position and a caption time interval.
//
// # Index format
//
// An index file is the concatenation of document regions, each of the
// form:
//
//	u32 doc_id
//	u32 duration_ms
//	u32 unique_token_count      // U
//	u32 posting_count           // P
//	u32 time_interval_count     // T
//	u32 length                  // L
//	LexiconEntry      x U   // (token_id: D bytes, first_posting_index: D bytes)
//	InvertedEntry     x P   // (start_ms: S bytes, end_delta_ms: E bytes, position: D bytes)
//	TimeIntervalEntry x T   // (start_ms: S bytes, end_delta_ms: E bytes, first_position: D bytes)
//	Token             x L   // token_id: D bytes
//
// D, S and E are the configured datum, start-time and end-time widths
// (1-4 bytes each, little-endian), fixed for the lifetime of one index
// and supplied to Open. Document regions are laid out back to back with
// no padding; the loader fails with ErrMalformedIndex if parsing the
// directory does not consume the file exactly.
//
// A companion metadata file, opened separately with OpenMetadata, holds
// one fixed-size opaque record per token position per document:
//
//	(u32 doc_id, u32 count, count x entry_size opaque bytes)*
//
// Both formats are mapped read-only and never mutated after Open;
// queries read fields directly from the mapping, and individual
// token-id and time-interval reads do not allocate.
package caption
