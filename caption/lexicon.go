package caption

// postingRange is what LexiconLookup resolves a token to: the index of
// its first posting and how many contiguous postings follow it.
type postingRange struct {
	start int
	count int
}

// lookupToken binary-searches doc's lexicon for token, mirroring §4.3.
// Lexicon entries are (token_id, first_posting_index) pairs, strictly
// ascending in token_id. The reported count is the gap to the next
// entry's first_posting_index, or to doc.postingCount for the last
// entry; a gap of zero is index corruption, never a valid empty match.
func (ix *Index) lookupToken(d *documentHeader, token TokenId) (postingRange, bool) {
	entrySize := ix.lexiconEntrySize()
	base := d.baseOffset + d.lexiconOffset

	lo, hi := 0, d.uniqueTokenCount
	for lo < hi {
		mid := (lo + hi) / 2
		off := base + mid*entrySize
		pivot := TokenId(ix.readU(off, ix.datumSize))
		switch {
		case pivot == token:
			start := int(ix.readU(off+ix.datumSize, ix.datumSize))
			var end int
			if mid < d.uniqueTokenCount-1 {
				end = int(ix.readU(off+entrySize+ix.datumSize, ix.datumSize))
			} else {
				end = d.postingCount
			}
			count := end - start
			if count <= 0 {
				corrupt("non-positive posting count for lexicon entry")
			}
			return postingRange{start: start, count: count}, true
		case pivot < token:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return postingRange{}, false
}
