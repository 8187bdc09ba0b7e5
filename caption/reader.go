package caption

// slice returns the n bytes of the mapping starting at the given
// absolute offset. Any out-of-bounds access is index corruption (§4.1):
// a valid index's header-derived offsets never reach past the file.
func (ix *Index) slice(off, n int) []byte {
	if off < 0 || n < 0 || off+n < off || off+n > len(ix.data.d) {
		corrupt("offset out of bounds")
		return nil
	}
	return ix.data.d[off : off+n]
}

// readU reads an n-byte (1-4) little-endian unsigned field at offset off
// and zero-extends it into a uint32. A branchless shift-or over the n
// bytes, per §9, rather than memcpy-into-a-fixed-width-word-and-mask.
func (ix *Index) readU(off, n int) uint32 {
	b := ix.slice(off, n)
	var v uint32
	for i := 0; i < n; i++ {
		v |= uint32(b[i]) << (8 * uint(i))
	}
	return v
}

// readTimeInterval reads a (start_ms: S bytes, end_delta_ms: E bytes)
// pair at offset off and returns (start, start+delta) per §4.1.
func (ix *Index) readTimeInterval(off int) (start, end uint32) {
	start = ix.readU(off, ix.startTimeSize)
	delta := ix.readU(off+ix.startTimeSize, ix.endTimeSize)
	return start, start + delta
}

// timeIntervalSize is S+E: the on-disk width of one (start, end-delta)
// pair, shared by InvertedEntry and TimeIntervalEntry.
func (ix *Index) timeIntervalSize() int {
	return ix.startTimeSize + ix.endTimeSize
}

// postingSize is the on-disk width of one InvertedEntry: a time interval
// plus a D-byte position.
func (ix *Index) postingSize() int {
	return ix.timeIntervalSize() + ix.datumSize
}

// lexiconEntrySize is the on-disk width of one LexiconEntry: two D-byte
// fields, (token_id, first_posting_index).
func (ix *Index) lexiconEntrySize() int {
	return 2 * ix.datumSize
}
