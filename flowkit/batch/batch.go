package batch

import (
	"context"
	"fmt"

	"github.com/parallax-labs/lib-flowkit/flowkit"
	"github.com/parallax-labs/lib-flowkit/flowkit/errgroup"
	"github.com/parallax-labs/lib-flowkit/flowkit/metrics"
	"github.com/parallax-labs/lib-flowkit/flowkit/safe"
)

// DefaultConcurrency bounds in-flight processors when callers have no
// specific limit in mind.
const DefaultConcurrency = 5

// ErrInvalidConcurrency is returned when the concurrency limit is zero or
// negative.
var ErrInvalidConcurrency = fmt.Errorf("non-positive concurrency: %w", flowkit.ErrInvalidArgument)

// Process applies fn to every item with at most concurrency invocations in
// flight, returning results in input order. Processing is chunked: all
// invocations of one chunk settle before the next chunk starts.
//
// The first per-item failure fails the whole batch. The failing chunk's
// remaining in-flight items are awaited but their results discarded; later
// chunks never start; the error reaches the caller unchanged. Context
// cancellation between chunks aborts with the context error.
//
// An empty input yields an empty slice without invoking fn.
func Process[T, R any](ctx context.Context, items []T, concurrency int, fn func(context.Context, T) (R, error)) ([]R, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil processor", flowkit.ErrInvalidArgument)
	}

	if concurrency <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidConcurrency, concurrency)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]R, len(items))

	chunks, err := safe.Chunk(items, concurrency)
	if err != nil {
		return nil, err
	}

	offset := 0

	for _, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		grp, grpCtx := errgroup.WithContext(ctx)

		for i, item := range chunk {
			index := offset + i

			grp.Go(func() error {
				out, err := fn(grpCtx, item)
				if err != nil {
					return err
				}

				// Each goroutine owns exactly one index.
				results[index] = out

				return nil
			})
		}

		if err := grp.Wait(); err != nil {
			return nil, err
		}

		offset += len(chunk)
	}

	_ = metrics.Default().Counter(metrics.MetricBatchItems).Add(ctx, int64(len(items)))

	return results, nil
}

// ProcessDefault is Process with DefaultConcurrency.
func ProcessDefault[T, R any](ctx context.Context, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	return Process(ctx, items, DefaultConcurrency, fn)
}
