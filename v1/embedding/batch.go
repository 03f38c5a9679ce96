package embedding

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// GenerateBatched splits texts into chunks of at most batchSize and runs
// fn sequentially over each chunk, concatenating the results in input
// order.
//
// Providers enforce a hard batch-size ceiling per call; this helper lets
// callers embed arbitrarily large inputs without tracking the ceiling
// themselves. It is strictly opt-in: a Function never batches on its own.
func GenerateBatched(ctx context.Context, fn Function, texts []string, batchSize int) ([][]float32, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("embedding: batch size must be positive, got %d", batchSize)
	}
	if len(texts) == 0 {
		return nil, nil
	}

	out := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += batchSize {
		end := start + batchSize
		if end > len(texts) {
			end = len(texts)
		}

		vectors, err := fn.Generate(ctx, texts[start:end])
		if err != nil {
			return nil, err
		}
		if len(vectors) != end-start {
			return nil, fmt.Errorf("embedding: batch returned %d vectors for %d texts", len(vectors), end-start)
		}
		out = append(out, vectors...)
	}

	return out, nil
}

// GenerateParallel behaves like GenerateBatched but runs up to maxParallel
// chunks concurrently. Results are written into their original positions,
// so ordering is preserved regardless of completion order. The first chunk
// error cancels the remaining ones.
func GenerateParallel(ctx context.Context, fn Function, texts []string, batchSize, maxParallel int) ([][]float32, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("embedding: batch size must be positive, got %d", batchSize)
	}
	if maxParallel <= 1 {
		return GenerateBatched(ctx, fn, texts, batchSize)
	}
	if len(texts) == 0 {
		return nil, nil
	}

	out := make([][]float32, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for start := 0; start < len(texts); start += batchSize {
		end := start + batchSize
		if end > len(texts) {
			end = len(texts)
		}

		g.Go(func() error {
			vectors, err := fn.Generate(ctx, texts[start:end])
			if err != nil {
				return err
			}
			if len(vectors) != end-start {
				return fmt.Errorf("embedding: batch returned %d vectors for %d texts", len(vectors), end-start)
			}
			copy(out[start:end], vectors)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
