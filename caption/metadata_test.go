package caption

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildMetadataFile(t *testing.T, entries map[DocumentId][][]byte) string {
	var data []byte
	for id, records := range entries {
		data = appendLE(data, uint32(id), 4)
		data = appendLE(data, uint32(len(records)), 4)
		for _, rec := range records {
			data = append(data, rec...)
		}
	}
	path := t.TempDir() + "/meta.bin"
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestMetadataGet(t *testing.T) {
	path := buildMetadataFile(t, map[DocumentId][][]byte{
		7: {{1, 2}, {3, 4}, {5, 6}},
	})
	m, err := OpenMetadata(path, 2)
	require.NoError(t, err)
	defer m.Close()

	recs, err := m.Get(7, 1, 10)
	require.NoError(t, err)
	require.Equal(t, [][]byte{{3, 4}, {5, 6}}, recs)
}

func TestMetadataUnknownDocument(t *testing.T) {
	path := buildMetadataFile(t, map[DocumentId][][]byte{7: {{1}}})
	m, err := OpenMetadata(path, 1)
	require.NoError(t, err)
	defer m.Close()

	_, err = m.Get(99, 0, 1)
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestMetadataClipsToCount(t *testing.T) {
	path := buildMetadataFile(t, map[DocumentId][][]byte{1: {{9}, {8}}})
	m, err := OpenMetadata(path, 1)
	require.NoError(t, err)
	defer m.Close()

	recs, err := m.Get(1, 1, 50)
	require.NoError(t, err)
	require.Equal(t, [][]byte{{8}}, recs)

	recs, err = m.Get(1, 5, 50)
	require.NoError(t, err)
	require.Empty(t, recs)
}

func TestOpenMetadataMalformed(t *testing.T) {
	path := t.TempDir() + "/bad.bin"
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	_, err := OpenMetadata(path, 4)
	require.True(t, errors.Is(err, ErrMalformedIndex))
}
