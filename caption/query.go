package caption

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DocPostings pairs a document id with its postings for one search
// operation. Order across documents is unspecified (§5); within one
// document, Postings is position-ascending.
type DocPostings struct {
	Document DocumentId
	Postings []Posting
}

// dispatch runs work for every document in ids across a bounded worker
// pool (QueryDispatcher, §4.7): data-parallel fan-out, one goroutine per
// document, no suspension points inside a per-document primitive beyond
// the scheduler itself. Unknown document ids are silently skipped, as
// are documents for which work reports no match.
func (ix *Index) dispatch(ids []DocumentId, work func(d *documentHeader) ([]Posting, bool)) []DocPostings {
	slots := make([]*DocPostings, len(ids))

	g := new(errgroup.Group)
	g.SetLimit(ix.concurrency)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			d, ok := ix.docs[id]
			if !ok {
				return nil
			}
			postings, ok := work(d)
			if !ok {
				return nil
			}
			slots[i] = &DocPostings{Document: id, Postings: postings}
			return nil
		})
	}
	_ = g.Wait() // work never returns an error; only nil slots are skipped

	out := make([]DocPostings, 0, len(ids))
	for _, s := range slots {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}

// dispatchContains is dispatch's containment-only counterpart (§4.7):
// it reports just the matching document ids.
func (ix *Index) dispatchContains(ids []DocumentId, has func(d *documentHeader) bool) []DocumentId {
	hits := make([]bool, len(ids))

	g := new(errgroup.Group)
	g.SetLimit(ix.concurrency)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			d, ok := ix.docs[id]
			if !ok {
				return nil
			}
			hits[i] = has(d)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]DocumentId, 0, len(ids))
	for i, id := range ids {
		if hits[i] {
			out = append(out, id)
		}
	}
	return out
}

// UnigramSearch returns, for every document in docIDs (or all documents
// when empty), the postings of token, in position-ascending order.
// Documents without the token and unknown ids are omitted.
func (ix *Index) UnigramSearch(token TokenId, docIDs []DocumentId) []DocPostings {
	ids := ix.documentIDs(docIDs)
	if ix.debug {
		ix.logger.Debug("unigram search", "token", token, "documents", len(ids))
	}
	return ix.dispatch(ids, func(d *documentHeader) ([]Posting, bool) {
		r, ok := ix.lookupToken(d, token)
		if !ok {
			return nil, false
		}
		return ix.readPostings(d, r), true
	})
}

// UnigramContains returns the ids (subset of docIDs, or of every
// document when empty) whose document contains token at least once.
func (ix *Index) UnigramContains(token TokenId, docIDs []DocumentId) []DocumentId {
	ids := ix.documentIDs(docIDs)
	if ix.debug {
		ix.logger.Debug("unigram contains", "token", token, "documents", len(ids))
	}
	return ix.dispatchContains(ids, func(d *documentHeader) bool {
		_, ok := ix.lookupToken(d, token)
		return ok
	})
}

// NgramSearch returns every contiguous occurrence of tokens across
// docIDs (or all documents when empty). A single-token ngram delegates
// to UnigramSearch (§4.5). tokens must be non-empty.
func (ix *Index) NgramSearch(tokens []TokenId, docIDs []DocumentId) ([]DocPostings, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: ngram cannot be empty", ErrInvalidArgument)
	}
	if len(tokens) == 1 {
		return ix.UnigramSearch(tokens[0], docIDs), nil
	}

	ids := ix.documentIDs(docIDs)
	if ix.debug {
		ix.logger.Debug("ngram search", "tokens", tokens, "documents", len(ids))
	}
	return ix.dispatch(ids, func(d *documentHeader) ([]Posting, bool) {
		return ix.ngramLookup(d, tokens)
	}), nil
}

// NgramContains returns the document ids (subset of docIDs, or all
// documents when empty) containing tokens as a contiguous sequence at
// least once. tokens must be non-empty.
func (ix *Index) NgramContains(tokens []TokenId, docIDs []DocumentId) ([]DocumentId, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: ngram cannot be empty", ErrInvalidArgument)
	}
	if len(tokens) == 1 {
		return ix.UnigramContains(tokens[0], docIDs), nil
	}

	ids := ix.documentIDs(docIDs)
	if ix.debug {
		ix.logger.Debug("ngram contains", "tokens", tokens, "documents", len(ids))
	}
	return ix.dispatchContains(ids, func(d *documentHeader) bool {
		_, ok := ix.ngramLookup(d, tokens)
		return ok
	}), nil
}

// Tokens returns the token ids occupying [position, position+n) in
// doc_id, clipped to the document's length (§6.3).
func (ix *Index) Tokens(id DocumentId, position Position, n int) ([]TokenId, error) {
	d, ok := ix.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: document %d", ErrNotFound, id)
	}
	if ix.debug {
		ix.logger.Debug("tokens", "document", id, "position", position, "n", n)
	}

	min := int(position)
	if min > d.length {
		min = d.length
	}
	max := int(position) + n
	if max > d.length {
		max = d.length
	}
	if max < min {
		max = min
	}

	out := make([]TokenId, 0, max-min)
	for pos := min; pos < max; pos++ {
		off := d.baseOffset + d.tokensOffset + pos*ix.datumSize
		out = append(out, TokenId(ix.readU(off, ix.datumSize)))
	}
	return out, nil
}

// Intervals returns the time intervals of doc_id overlapping
// [startSeconds, endSeconds] (§4.6, §6.3).
func (ix *Index) Intervals(id DocumentId, startSeconds, endSeconds float32) ([]Posting, error) {
	d, ok := ix.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: document %d", ErrNotFound, id)
	}
	if ix.debug {
		ix.logger.Debug("intervals", "document", id, "start", startSeconds, "end", endSeconds)
	}
	return ix.intervalsInRange(d, startSeconds, endSeconds)
}

// Position returns the token position occupying timeSeconds in doc_id.
func (ix *Index) Position(id DocumentId, timeSeconds float32) (Position, error) {
	d, ok := ix.docs[id]
	if !ok {
		return 0, fmt.Errorf("%w: document %d", ErrNotFound, id)
	}
	if ix.debug {
		ix.logger.Debug("position", "document", id, "time", timeSeconds)
	}
	return ix.positionAt(d, secondsToMs(timeSeconds)), nil
}
