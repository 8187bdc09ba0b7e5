package caption

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenRejectsTruncatedFile(t *testing.T) {
	path := t.TempDir() + "/index.bin"
	data := buildIndex(widths{datum: 2, start: 2, end: 2}, []fixtureDoc{doc7()})
	require.NoError(t, os.WriteFile(path, data[:len(data)-3], 0o644))

	_, err := Open(path, Options{DatumSize: 2, StartTimeSize: 2, EndTimeSize: 2})
	require.True(t, errors.Is(err, ErrMalformedIndex))
}

func TestOpenRejectsTrailingGarbage(t *testing.T) {
	path := t.TempDir() + "/index.bin"
	data := buildIndex(widths{datum: 2, start: 2, end: 2}, []fixtureDoc{doc7()})
	data = append(data, 0xFF, 0xFF, 0xFF)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err := Open(path, Options{DatumSize: 2, StartTimeSize: 2, EndTimeSize: 2})
	require.True(t, errors.Is(err, ErrMalformedIndex))
}

func TestOpenRejectsInvalidWidths(t *testing.T) {
	path := t.TempDir() + "/index.bin"
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := Open(path, Options{DatumSize: 5, StartTimeSize: 2, EndTimeSize: 2})
	require.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestOpenEmptyIndexHasNoDocuments(t *testing.T) {
	path := t.TempDir() + "/index.bin"
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	ix, err := Open(path, Options{DatumSize: 2, StartTimeSize: 2, EndTimeSize: 2})
	require.NoError(t, err)
	defer ix.Close()

	require.False(t, ix.DocumentExists(0))
	require.Empty(t, ix.UnigramSearch(0, nil))
}

func TestOpenMultipleDocumentsPreservesEachRegion(t *testing.T) {
	docs := []fixtureDoc{
		doc7(),
		{id: 1, durationMs: 400, tokens: []TokenId{2, 2, 3}, intervals: []fixtureInterval{{startMs: 0, endMs: 400, firstPosition: 0}}},
		{id: 42, durationMs: 100, tokens: []TokenId{9}, intervals: []fixtureInterval{{startMs: 0, endMs: 100, firstPosition: 0}}},
	}
	ix := writeTempIndex(t, widths{datum: 2, start: 2, end: 2}, docs)

	for _, d := range docs {
		require.True(t, ix.DocumentExists(d.id))
		n, _, err := ix.DocumentLength(d.id)
		require.NoError(t, err)
		require.Equal(t, len(d.tokens), n)
	}
	require.Equal(t, []DocumentId{1, 7, 42}, ix.order)
}

func TestOpenAndCloseRoundTrip(t *testing.T) {
	path := t.TempDir() + "/index.bin"
	data := buildIndex(widths{datum: 2, start: 2, end: 2}, []fixtureDoc{doc7()})
	require.NoError(t, os.WriteFile(path, data, 0o644))

	ix, err := Open(path, Options{DatumSize: 2, StartTimeSize: 2, EndTimeSize: 2})
	require.NoError(t, err)
	require.True(t, ix.DocumentExists(7))
	require.NoError(t, ix.Close())
}
