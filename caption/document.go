package caption

import (
	"fmt"
	"log/slog"
	"runtime"
	"sort"
)

// documentHeader is the in-memory decoding of one document region's
// fixed 6-word header plus the four sub-region offsets derived from it
// (§3, §4.2). All offsets are absolute within the mapping.
type documentHeader struct {
	baseOffset int

	durationMs uint32

	lexiconOffset    int
	uniqueTokenCount int

	invIndexOffset int
	postingCount   int

	timeIndexOffset   int
	timeIntervalCount int

	tokensOffset int
	length       int
}

const documentHeaderWords = 6
const documentHeaderSize = documentHeaderWords * 4

// Options configures how an index file is interpreted. The three widths
// are index-wide, chosen when the index was built; Open does not infer
// them.
type Options struct {
	// DatumSize is the byte width (1-4) of every token id, posting
	// position and first_posting_index/first_position field.
	DatumSize int
	// StartTimeSize is the byte width (1-4) of a stored start_ms field.
	StartTimeSize int
	// EndTimeSize is the byte width (1-4) of a stored end_delta_ms
	// field.
	EndTimeSize int
	// Debug logs one line per query through Logger (or the default
	// slog logger) at slog.LevelDebug, restoring the debug tracing the
	// Rust implementation this package is based on did with eprintln!.
	Debug bool
	// Logger receives debug lines when Debug is set. Defaults to
	// slog.Default().
	Logger *slog.Logger
	// Concurrency bounds how many documents QueryDispatcher touches at
	// once. Defaults to runtime.GOMAXPROCS(0).
	Concurrency int
}

func (o Options) widths() (datum, start, end int) {
	return o.DatumSize, o.StartTimeSize, o.EndTimeSize
}

func (o Options) validate() error {
	for _, w := range []int{o.DatumSize, o.StartTimeSize, o.EndTimeSize} {
		if w < 1 || w > 4 {
			return fmt.Errorf("%w: datum widths must be in [1,4], got %d", ErrInvalidArgument, w)
		}
	}
	return nil
}

// Index is a read-only handle over one memory-mapped caption index file.
// It is safe for concurrent use by multiple goroutines: construction is
// the only phase that writes to it, and every field is immutable
// afterward (§5).
type Index struct {
	data mmapData

	docs  map[DocumentId]*documentHeader
	order []DocumentId // ascending DocumentId, for full-scan iteration

	datumSize     int
	startTimeSize int
	endTimeSize   int

	debug       bool
	logger      *slog.Logger
	concurrency int
}

// Open maps path read-only and parses its document directory (§4.2).
// The mapping is held for the lifetime of the returned Index; callers
// must call Close when done with it.
func Open(path string, opts Options) (*Index, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	m, err := mmapOpen(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ix := &Index{
		data:          m,
		datumSize:     opts.DatumSize,
		startTimeSize: opts.StartTimeSize,
		endTimeSize:   opts.EndTimeSize,
		debug:         opts.Debug,
		logger:        logger,
		concurrency:   concurrency,
	}

	docs, order, err := ix.parseDocuments()
	if err != nil {
		m.Close()
		return nil, err
	}
	ix.docs = docs
	ix.order = order

	adviseRandomAccess(m.f)

	if ix.debug {
		ix.logger.Debug("opened caption index", "path", path, "documents", len(order))
	}
	return ix, nil
}

// parseDocuments walks the mapping from offset 0, decoding one
// documentHeader per region until the file is exhausted. It fails with
// ErrMalformedIndex if the regions do not consume the file exactly
// (§4.2), if a header is truncated, or if a document id repeats.
// Lexicon entries are not read here; a zero or negative posting count
// is caught later, at lookup time, as corruption (see lookupToken).
func (ix *Index) parseDocuments() (map[DocumentId]*documentHeader, []DocumentId, error) {
	docs := make(map[DocumentId]*documentHeader)
	order := make([]DocumentId, 0)

	size := len(ix.data.d)
	offset := 0
	for offset < size {
		base := offset
		if base+documentHeaderSize > size {
			return nil, nil, fmt.Errorf("%w: truncated document header at offset %d", ErrMalformedIndex, base)
		}

		docID := DocumentId(ix.readU(base, 4))
		durationMs := ix.readU(base+4, 4)
		uniqueTokenCount := int(ix.readU(base+8, 4))
		postingCount := int(ix.readU(base+12, 4))
		timeIntervalCount := int(ix.readU(base+16, 4))
		length := int(ix.readU(base+20, 4))

		lexiconOffset := documentHeaderSize
		invIndexOffset := lexiconOffset + uniqueTokenCount*ix.lexiconEntrySize()
		timeIndexOffset := invIndexOffset + postingCount*ix.postingSize()
		tokensOffset := timeIndexOffset + timeIntervalCount*ix.postingSize()
		regionSize := tokensOffset + length*ix.datumSize

		if base+regionSize > size {
			return nil, nil, fmt.Errorf("%w: document %d region overruns file", ErrMalformedIndex, docID)
		}
		if _, exists := docs[docID]; exists {
			return nil, nil, fmt.Errorf("%w: duplicate document id %d", ErrMalformedIndex, docID)
		}

		docs[docID] = &documentHeader{
			baseOffset:        base,
			durationMs:        durationMs,
			lexiconOffset:     lexiconOffset,
			uniqueTokenCount:  uniqueTokenCount,
			invIndexOffset:    invIndexOffset,
			postingCount:      postingCount,
			timeIndexOffset:   timeIndexOffset,
			timeIntervalCount: timeIntervalCount,
			tokensOffset:      tokensOffset,
			length:            length,
		}
		order = append(order, docID)
		offset += regionSize
	}
	if offset != size {
		return nil, nil, fmt.Errorf("%w: parsed %d bytes but file is %d bytes", ErrMalformedIndex, offset, size)
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	return docs, order, nil
}

// Close unmaps the underlying file. The Index must not be used
// afterward.
func (ix *Index) Close() error {
	return ix.data.Close()
}

// DocumentExists reports whether doc_id names a document in this index.
func (ix *Index) DocumentExists(id DocumentId) bool {
	_, ok := ix.docs[id]
	return ok
}

// DocumentLength returns the document's token count and duration in
// seconds, or ErrNotFound.
func (ix *Index) DocumentLength(id DocumentId) (tokenCount int, durationSeconds float32, err error) {
	d, ok := ix.docs[id]
	if !ok {
		return 0, 0, fmt.Errorf("%w: document %d", ErrNotFound, id)
	}
	return d.length, msToSeconds(d.durationMs), nil
}

// documentIDs resolves a caller-supplied filter against the loaded
// document set per §4.7: an empty filter means every document, in
// ascending id order; a non-empty filter is sorted ascending and
// unknown ids are dropped (resolved lazily by the per-document lookup).
func (ix *Index) documentIDs(filter []DocumentId) []DocumentId {
	if len(filter) == 0 {
		return ix.order
	}
	sorted := append([]DocumentId(nil), filter...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}
