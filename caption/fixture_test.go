package caption

import (
	"os"
	"sort"
)

// fixtureInterval describes one TimeIntervalEntry: the caption timespan
// shared by positions [firstPosition, next interval's firstPosition).
type fixtureInterval struct {
	startMs, endMs uint32
	firstPosition  int
}

// fixtureDoc is everything needed to synthesize one document region.
type fixtureDoc struct {
	id         DocumentId
	durationMs uint32
	tokens     []TokenId
	intervals  []fixtureInterval
}

// widths bundles the three configured datum widths a fixture is built
// and read with.
type widths struct {
	datum, start, end int
}

func putLE(buf []byte, v uint32, n int) {
	for i := 0; i < n; i++ {
		buf[i] = byte(v >> (8 * uint(i)))
	}
}

func appendLE(dst []byte, v uint32, n int) []byte {
	buf := make([]byte, n)
	putLE(buf, v, n)
	return append(dst, buf...)
}

// buildIndex serializes docs into the on-disk format from §6.1 using the
// given widths, returning the concatenated bytes.
func buildIndex(w widths, docs []fixtureDoc) []byte {
	var out []byte
	for _, doc := range docs {
		out = append(out, buildRegion(w, doc)...)
	}
	return out
}

func buildRegion(w widths, doc fixtureDoc) []byte {
	length := len(doc.tokens)

	// Positions occupied by each token, in ascending position order
	// (already true by construction) and grouped by ascending token id
	// for the lexicon.
	byToken := make(map[TokenId][]int)
	for pos, t := range doc.tokens {
		byToken[t] = append(byToken[t], pos)
	}
	tokenIDs := make([]TokenId, 0, len(byToken))
	for t := range byToken {
		tokenIDs = append(tokenIDs, t)
	}
	sort.Slice(tokenIDs, func(i, j int) bool { return tokenIDs[i] < tokenIDs[j] })

	// Per-position time interval, derived from doc.intervals.
	startOf := make([]uint32, length)
	endOf := make([]uint32, length)
	for i, iv := range doc.intervals {
		limit := length
		if i+1 < len(doc.intervals) {
			limit = doc.intervals[i+1].firstPosition
		}
		for pos := iv.firstPosition; pos < limit; pos++ {
			startOf[pos] = iv.startMs
			endOf[pos] = iv.endMs
		}
	}

	lexicon := make([]byte, 0, len(tokenIDs)*2*w.datum)
	postings := make([]byte, 0, length*(w.datum+w.start+w.end))
	firstPostingIdx := 0
	for _, t := range tokenIDs {
		lexicon = appendLE(lexicon, uint32(t), w.datum)
		lexicon = appendLE(lexicon, uint32(firstPostingIdx), w.datum)
		for _, pos := range byToken[t] {
			postings = appendLE(postings, startOf[pos], w.start)
			postings = appendLE(postings, endOf[pos]-startOf[pos], w.end)
			postings = appendLE(postings, uint32(pos), w.datum)
		}
		firstPostingIdx += len(byToken[t])
	}

	timeIndex := make([]byte, 0, len(doc.intervals)*(w.datum+w.start+w.end))
	for _, iv := range doc.intervals {
		timeIndex = appendLE(timeIndex, iv.startMs, w.start)
		timeIndex = appendLE(timeIndex, iv.endMs-iv.startMs, w.end)
		timeIndex = appendLE(timeIndex, uint32(iv.firstPosition), w.datum)
	}

	tokens := make([]byte, 0, length*w.datum)
	for _, t := range doc.tokens {
		tokens = appendLE(tokens, uint32(t), w.datum)
	}

	header := make([]byte, 0, documentHeaderSize)
	header = appendLE(header, uint32(doc.id), 4)
	header = appendLE(header, doc.durationMs, 4)
	header = appendLE(header, uint32(len(tokenIDs)), 4)
	header = appendLE(header, uint32(length), 4) // posting_count == length: one posting per token occurrence
	header = appendLE(header, uint32(len(doc.intervals)), 4)
	header = appendLE(header, uint32(length), 4)

	region := append(header, lexicon...)
	region = append(region, postings...)
	region = append(region, timeIndex...)
	region = append(region, tokens...)
	return region
}

// writeTempIndex writes data to a new temp file and opens it, returning
// a cleanup-registered *Index.
func writeTempIndex(t interface {
	TempDir() string
	Fatalf(format string, args ...any)
	Cleanup(func())
}, w widths, docs []fixtureDoc) *Index {
	path := t.TempDir() + "/index.bin"
	data := buildIndex(w, docs)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture index: %v", err)
	}
	ix, err := Open(path, Options{DatumSize: w.datum, StartTimeSize: w.start, EndTimeSize: w.end})
	if err != nil {
		t.Fatalf("opening fixture index: %v", err)
	}
	t.Cleanup(func() { ix.Close() })
	return ix
}
