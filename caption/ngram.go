package caption

// ngramLookup finds every contiguous occurrence of tokens (length >= 2)
// in document d via the multi-cursor positional intersection of §4.5.
//
// Cursors for the non-anchor tokens (cur[1:]) start at zero and advance
// monotonically across the whole scan of the anchor's postings: because
// anchor positions are ascending, every subsequent target position
// (anchorPos+j) is non-decreasing too, so a cursor is never rewound.
// When a target position can't be reached before a token's postings are
// exhausted, the whole scan ends (no anchor posting further along the
// document can match either); when a target overshoots, only the
// current anchor posting is abandoned and the cursor positions are kept
// as a valid lower bound for the next one (§9).
func (ix *Index) ngramLookup(d *documentHeader, tokens []TokenId) ([]Posting, bool) {
	k := len(tokens)
	ranges := make([]postingRange, k)
	for i, t := range tokens {
		r, ok := ix.lookupToken(d, t)
		if !ok {
			return nil, false
		}
		ranges[i] = r
	}

	cursors := make([]int, k-1)
	var result []Posting

anchorLoop:
	for i := 0; i < ranges[0].count; i++ {
		anchorPos := ix.postingPosition(d, ranges[0].start+i)

		lastIdx := ranges[0].start + i
		for j := 1; j < k; j++ {
			target := anchorPos + Position(j)
			r := ranges[j]

			for {
				candidateIdx := r.start + cursors[j-1]
				pos := ix.postingPosition(d, candidateIdx)
				if pos == target {
					lastIdx = candidateIdx
					break
				} else if pos < target {
					cursors[j-1]++
					if cursors[j-1] == r.count {
						// This token's postings are exhausted: no later
						// anchor can reach a higher target either.
						break anchorLoop
					}
				} else {
					// Overshot: this anchor can't match. Leave the
					// cursor where it is and move to the next anchor.
					continue anchorLoop
				}
			}
		}

		startMs, _ := ix.postingTimeInterval(d, ranges[0].start+i)
		_, endMs := ix.postingTimeInterval(d, lastIdx)
		result = append(result, Posting{
			Start:    msToSeconds(startMs),
			End:      msToSeconds(endMs),
			Position: anchorPos,
			Length:   k,
		})
	}

	if len(result) == 0 {
		return nil, false
	}
	return result, true
}
