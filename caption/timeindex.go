package caption

// findInterval binary-searches doc's time-interval table for the entry
// covering ms, per §4.6: recurse left while ms is before the pivot's
// start, right while ms is past its end, and return immediately on
// overlap. On exhaustion (no interval contains ms) it returns the
// left-insertion point, i.e. the first interval starting at or after ms.
func (ix *Index) findInterval(d *documentHeader, ms uint32) int {
	lo, hi := 0, d.timeIntervalCount
	for lo < hi {
		mid := (lo + hi) / 2
		start, end := ix.timeIntervalAt(d, mid)
		switch {
		case ms < start:
			hi = mid
		case ms > end:
			lo = mid + 1
		default:
			return mid
		}
	}
	return lo
}

// timeIntervalAt reads the (start, end) time interval of the i'th
// TimeIntervalEntry, in milliseconds.
func (ix *Index) timeIntervalAt(d *documentHeader, i int) (startMs, endMs uint32) {
	off := d.baseOffset + d.timeIndexOffset + i*ix.postingSize()
	return ix.readTimeInterval(off)
}

// timeIntervalFirstPosition reads the first_position datum of the i'th
// TimeIntervalEntry.
func (ix *Index) timeIntervalFirstPosition(d *documentHeader, i int) Position {
	off := d.baseOffset + d.timeIndexOffset + i*ix.postingSize() + ix.timeIntervalSize()
	return Position(ix.readU(off, ix.datumSize))
}

// positionAt resolves the token position occupied at the given time, by
// locating its covering interval and reading that interval's
// first_position (§4.6).
func (ix *Index) positionAt(d *documentHeader, ms uint32) Position {
	idx := ix.findInterval(d, ms)
	return ix.timeIntervalFirstPosition(d, idx)
}

// intervalsInRange returns the time intervals overlapping
// [startSeconds, endSeconds], per §4.6. Before the scan, a negative
// startSeconds is raised to 0 and endSeconds is capped at the document's
// duration; startSeconds is not capped, so a range starting after the
// duration matches nothing. A startSeconds beyond what the on-disk
// millisecond format can represent is ErrOutOfRange.
func (ix *Index) intervalsInRange(d *documentHeader, startSeconds, endSeconds float32) ([]Posting, error) {
	const maxRepresentableSeconds = float32(^uint32(0)) / millisPerSecond
	if startSeconds > maxRepresentableSeconds {
		return nil, ErrOutOfRange
	}

	startMs := uint32(0)
	if startSeconds > 0 {
		startMs = secondsToMs(startSeconds)
	}
	endMs := d.durationMs
	if msToSeconds(d.durationMs) >= endSeconds {
		endMs = secondsToMs(endSeconds)
	}

	// Seed one slot early to tolerate boundary rounding (§9): the exact
	// interval containing startMs may be the one just before where
	// binary search lands.
	seed := ix.findInterval(d, startMs)
	if seed > 0 {
		seed--
	}

	var out []Posting
	for i := seed; i < d.timeIntervalCount; i++ {
		istart, iend := ix.timeIntervalAt(d, i)
		if overlapStart := max32u(startMs, istart); overlapStart <= min32u(endMs, iend) {
			pos := ix.timeIntervalFirstPosition(d, i)
			var length int
			if i+1 < d.timeIntervalCount {
				next := ix.timeIntervalFirstPosition(d, i+1)
				if next < pos {
					corrupt("time interval positions are not non-decreasing")
				}
				length = int(next - pos)
			} else {
				length = d.length - int(pos)
			}
			out = append(out, Posting{
				Start:    msToSeconds(max32u(startMs, istart)),
				End:      msToSeconds(min32u(endMs, iend)),
				Position: pos,
				Length:   length,
			})
		}
		if istart > endMs {
			break
		}
	}
	return out, nil
}

func max32u(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

func min32u(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
