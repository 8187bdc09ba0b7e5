package caption

import (
	"errors"
	"log"
)

// Sentinel errors returned from the public query API (§7). Corruption is
// not among them: it is treated as a programmer/data-integrity fault and
// aborts rather than returning, via corrupt() below.
var (
	// ErrNotFound is returned by single-document operations when the
	// requested document id is not present in the index.
	ErrNotFound = errors.New("caption: document not found")

	// ErrInvalidArgument is returned for a caller error such as an empty
	// n-gram, distinct from any property of the index itself.
	ErrInvalidArgument = errors.New("caption: invalid argument")

	// ErrMalformedIndex is returned only from Open/OpenMetadata, when
	// the document (or metadata) directory does not parse to exactly
	// consume the file.
	ErrMalformedIndex = errors.New("caption: malformed index")

	// ErrOutOfRange is returned when a query time exceeds what the
	// on-disk format can represent.
	ErrOutOfRange = errors.New("caption: time out of representable range")

	// ErrIO is returned when the index file cannot be opened or mapped.
	ErrIO = errors.New("caption: i/o error")
)

// panicOnCorrupt lets tests assert that a corrupt fixture is actually
// detected, without killing the test binary via log.Fatal. Mirrors the
// same escape hatch in the trigram-index teacher this package is built
// from.
var panicOnCorrupt = false

// corrupt reports an index-corruption fault: a violation of an invariant
// from §3 that the format guarantees. The checks that call it are an
// out-of-bounds read, a non-positive lexicon posting count, a posting
// range past the document's posting count, and time-interval positions
// that decrease. These can only arise from a broken index file, never
// from caller input, so they are fatal.
func corrupt(why string) {
	if panicOnCorrupt {
		panic("caption: corrupt index: " + why)
	}
	log.Fatalf("caption: corrupt index: %s", why)
}
