package caption

import (
	"fmt"
)

// metadataEntry records one document's opaque record array: where its
// payload begins in the mapping and how many entry_size records it
// holds.
type metadataEntry struct {
	payloadOffset int
	count         int
}

// Metadata is a read-only handle over a memory-mapped metadata file
// (§4.8, §6.2): a flat, independent service returning fixed-size opaque
// per-position records, such as part-of-speech tags, for a document.
type Metadata struct {
	data      mmapData
	docs      map[DocumentId]metadataEntry
	entrySize int
}

// OpenMetadata maps path read-only and parses its document directory.
// entrySize is the fixed width in bytes of one opaque record; it is
// configuration, not discoverable from the file.
func OpenMetadata(path string, entrySize int) (*Metadata, error) {
	if entrySize <= 0 {
		return nil, fmt.Errorf("%w: entrySize must be positive, got %d", ErrInvalidArgument, entrySize)
	}
	m, err := mmapOpen(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	meta := &Metadata{data: m, entrySize: entrySize}
	docs, err := meta.parse()
	if err != nil {
		m.Close()
		return nil, err
	}
	meta.docs = docs
	return meta, nil
}

func (m *Metadata) readU32(off int) uint32 {
	if off < 0 || off+4 > len(m.data.d) {
		corrupt("metadata offset out of bounds")
	}
	b := m.data.d[off : off+4]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func (m *Metadata) parse() (map[DocumentId]metadataEntry, error) {
	docs := make(map[DocumentId]metadataEntry)
	size := len(m.data.d)
	offset := 0
	const u32Size = 4

	for offset < size {
		if offset+2*u32Size > size {
			return nil, fmt.Errorf("%w: truncated metadata record header at offset %d", ErrMalformedIndex, offset)
		}
		docID := DocumentId(m.readU32(offset))
		count := int(m.readU32(offset + u32Size))
		payloadOffset := offset + 2*u32Size
		recordSize := 2*u32Size + count*m.entrySize

		if offset+recordSize > size {
			return nil, fmt.Errorf("%w: document %d metadata overruns file", ErrMalformedIndex, docID)
		}
		if _, exists := docs[docID]; exists {
			return nil, fmt.Errorf("%w: duplicate document id %d", ErrMalformedIndex, docID)
		}

		docs[docID] = metadataEntry{payloadOffset: payloadOffset, count: count}
		offset += recordSize
	}
	if offset != size {
		return nil, fmt.Errorf("%w: parsed %d bytes but file is %d bytes", ErrMalformedIndex, offset, size)
	}
	return docs, nil
}

// Close unmaps the underlying file.
func (m *Metadata) Close() error {
	return m.data.Close()
}

// Get returns the n (or fewer, clipped to the document's record count)
// opaque entry_size-byte records starting at position in doc_id
// (§4.8). Each returned slice aliases the mapping directly; callers must
// copy it before the Metadata is closed if it needs to outlive the map.
func (m *Metadata) Get(id DocumentId, position Position, n int) ([][]byte, error) {
	e, ok := m.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: document %d", ErrNotFound, id)
	}

	min := int(position)
	if min > e.count {
		min = e.count
	}
	max := min + n
	if max > e.count {
		max = e.count
	}
	if max < min {
		max = min
	}

	out := make([][]byte, 0, max-min)
	for i := min; i < max; i++ {
		off := e.payloadOffset + i*m.entrySize
		out = append(out, m.data.d[off:off+m.entrySize])
	}
	return out, nil
}
