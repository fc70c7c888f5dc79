package tokenizer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EncodeBatch encodes independent texts concurrently against a shared,
// read-only table using a bounded worker pool. Results keep input order:
// results[i] equals Encode(texts[i], table). The only failure mode is
// context cancellation, in which case the partial results are discarded.
func EncodeBatch(ctx context.Context, table *MergeTable, texts []string) ([][]Token, error) {
	results := make([][]Token, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, text := range texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Encode(text, table)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
