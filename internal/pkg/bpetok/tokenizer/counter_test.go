package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountPairs(t *testing.T) {
	counts := CountPairs([]Token{1, 2, 1, 2})

	require.Equal(t, 2, counts.Len())
	require.Equal(t, 2, counts.Get(Pair{1, 2}))
	require.Equal(t, 1, counts.Get(Pair{2, 1}))
	require.Zero(t, counts.Get(Pair{2, 2}))
}

func TestCountPairsShortSequences(t *testing.T) {
	require.Zero(t, CountPairs(nil).Len())
	require.Zero(t, CountPairs([]Token{42}).Len())
}

func TestCountPairsTotal(t *testing.T) {
	sequences := [][]Token{
		nil,
		{7},
		{1, 2},
		{1, 1, 1, 1, 1},
		{104, 105, 32, 104, 105},
	}
	for _, seq := range sequences {
		want := len(seq) - 1
		if want < 0 {
			want = 0
		}
		require.Equal(t, want, CountPairs(seq).Total())
	}
}

func TestCountPairsFirstOccurrenceOrder(t *testing.T) {
	counts := CountPairs([]Token{5, 6, 5, 6, 7})
	require.Equal(t, []Pair{{5, 6}, {6, 5}, {6, 7}}, counts.Pairs())
}

func TestMaxPrefersHighestCount(t *testing.T) {
	counts := CountPairs([]Token{1, 2, 3, 2, 3})
	p, n, ok := counts.Max()
	require.True(t, ok)
	require.Equal(t, Pair{2, 3}, p)
	require.Equal(t, 2, n)
}

func TestMaxTieBreaksTowardFirstSeen(t *testing.T) {
	// every pair occurs once; the earliest occurrence must win
	counts := CountPairs([]Token{5, 6, 7, 8})
	p, n, ok := counts.Max()
	require.True(t, ok)
	require.Equal(t, Pair{5, 6}, p)
	require.Equal(t, 1, n)
}

func TestMaxEmptyMapping(t *testing.T) {
	_, _, ok := CountPairs([]Token{9}).Max()
	require.False(t, ok)
}
