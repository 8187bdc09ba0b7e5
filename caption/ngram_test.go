package caption

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNgramRepeatedTokenOverlap exercises §9's "repeated token in an
// n-gram" open question: "the the the" against the query "the the"
// should report two overlapping matches, at positions 0 and 1, because
// the inner cursor for the second "the" advances independently of the
// anchor index.
func TestNgramRepeatedTokenOverlap(t *testing.T) {
	const the TokenId = 1
	ix := writeTempIndex(t, widths{datum: 1, start: 2, end: 1}, []fixtureDoc{
		{
			id:         1,
			durationMs: 300,
			tokens:     []TokenId{the, the, the},
			intervals:  []fixtureInterval{{startMs: 0, endMs: 300, firstPosition: 0}},
		},
	})

	results, err := ix.NgramSearch([]TokenId{the, the}, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, []Position{0, 1}, positions(results[0].Postings))
	for _, p := range results[0].Postings {
		require.Equal(t, 2, p.Length)
	}
}

// TestNgramOfOneDelegatesToUnigram checks invariant 4 from §8:
// unigram_search(t, D) == ngram_search([t], D).
func TestNgramOfOneDelegatesToUnigram(t *testing.T) {
	ix := openDoc7(t)

	uni := ix.UnigramSearch(5, nil)
	ng, err := ix.NgramSearch([]TokenId{5}, nil)
	require.NoError(t, err)
	require.Equal(t, uni, ng)
}

// TestNgramMissingTokenIsNoMatch checks invariant 6 from §8: containment
// consistency when a token in the query never appears in the document.
func TestNgramMissingTokenIsNoMatch(t *testing.T) {
	ix := openDoc7(t)

	results, err := ix.NgramSearch([]TokenId{5, 404}, nil)
	require.NoError(t, err)
	require.Empty(t, results)

	ids, err := ix.NgramContains([]TokenId{5, 404}, nil)
	require.NoError(t, err)
	require.Empty(t, ids)
}

// TestNgramThreeTokenCrossesWholeDocument walks a longer sequence so the
// cursor for each later token has to advance multiple times without
// ever rewinding.
func TestNgramThreeTokenCrossesWholeDocument(t *testing.T) {
	// tokens: A B C A B C A B C -> "A B C" matches at 0,3,6.
	var A, B, C TokenId = 10, 20, 30
	ix := writeTempIndex(t, widths{datum: 1, start: 2, end: 1}, []fixtureDoc{
		{
			id:         1,
			durationMs: 900,
			tokens:     []TokenId{A, B, C, A, B, C, A, B, C},
			intervals:  []fixtureInterval{{startMs: 0, endMs: 900, firstPosition: 0}},
		},
	})

	results, err := ix.NgramSearch([]TokenId{A, B, C}, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, []Position{0, 3, 6}, positions(results[0].Postings))
	for _, p := range results[0].Postings {
		require.Equal(t, 3, p.Length)
	}
}

// TestNgramSubsetOfUnigram checks invariant 5 from §8: every n-gram
// match's starting position appears in the unigram postings of its
// first token.
func TestNgramSubsetOfUnigram(t *testing.T) {
	var A, B TokenId = 10, 20
	ix := writeTempIndex(t, widths{datum: 1, start: 2, end: 1}, []fixtureDoc{
		{
			id:         1,
			durationMs: 500,
			tokens:     []TokenId{A, B, A, A, B},
			intervals:  []fixtureInterval{{startMs: 0, endMs: 500, firstPosition: 0}},
		},
	})

	ngrams, err := ix.NgramSearch([]TokenId{A, B}, nil)
	require.NoError(t, err)
	require.Len(t, ngrams, 1)

	unigrams := ix.UnigramSearch(A, nil)
	require.Len(t, unigrams, 1)
	unigramPositions := make(map[Position]bool)
	for _, p := range unigrams[0].Postings {
		unigramPositions[p.Position] = true
	}
	for _, p := range ngrams[0].Postings {
		require.True(t, unigramPositions[p.Position])
	}
}
