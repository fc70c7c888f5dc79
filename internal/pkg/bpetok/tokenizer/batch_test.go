package tokenizer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeBatchMatchesSequential(t *testing.T) {
	corpus := strings.Repeat("the quick brown fox jumps over the lazy dog. ", 3)
	table := Train(corpus, 25)

	texts := []string{
		"the quick brown fox",
		"",
		"jumps over",
		"the lazy dog.",
		"héllo",
	}

	results, err := EncodeBatch(context.Background(), table, texts)
	require.NoError(t, err)
	require.Len(t, results, len(texts))
	for i, text := range texts {
		require.Equal(t, Encode(text, table), results[i], "text %d", i)
	}
}

func TestEncodeBatchEmptyInput(t *testing.T) {
	table := Train("abab", 1)
	results, err := EncodeBatch(context.Background(), table, nil)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestEncodeBatchCancelledContext(t *testing.T) {
	table := Train("abab", 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := EncodeBatch(ctx, table, []string{"ab", "ab"})
	require.ErrorIs(t, err, context.Canceled)
}
