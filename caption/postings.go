package caption

// postingOffset returns the absolute offset of the idx'th InvertedEntry
// in doc's posting array.
func (ix *Index) postingOffset(d *documentHeader, idx int) int {
	return d.baseOffset + d.invIndexOffset + idx*ix.postingSize()
}

// postingPosition reads only the position field of the idx'th posting,
// the hot path for NgramIntersector's cursor walk (§4.5), which never
// needs the time interval until a match is confirmed.
func (ix *Index) postingPosition(d *documentHeader, idx int) Position {
	off := ix.postingOffset(d, idx) + ix.timeIntervalSize()
	return Position(ix.readU(off, ix.datumSize))
}

// postingTimeInterval reads the (start, end) time interval of the idx'th
// posting, in milliseconds.
func (ix *Index) postingTimeInterval(d *documentHeader, idx int) (startMs, endMs uint32) {
	return ix.readTimeInterval(ix.postingOffset(d, idx))
}

// readPostings materializes count unigram postings starting at posting
// index start, in on-disk (position-ascending) order, per §4.4.
func (ix *Index) readPostings(d *documentHeader, r postingRange) []Posting {
	if r.start+r.count > d.postingCount {
		corrupt("posting range exceeds document posting count")
	}
	out := make([]Posting, r.count)
	for i := 0; i < r.count; i++ {
		startMs, endMs := ix.postingTimeInterval(d, r.start+i)
		pos := ix.postingPosition(d, r.start+i)
		out[i] = Posting{
			Start:    msToSeconds(startMs),
			End:      msToSeconds(endMs),
			Position: pos,
			Length:   1,
		}
	}
	return out
}
