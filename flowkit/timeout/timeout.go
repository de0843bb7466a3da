// Package timeout races an operation against a deadline.
//
// The losing operation is abandoned, never cancelled: its goroutine runs to
// completion and its outcome has no effect on the caller. Late failures are
// forwarded to the process error reporter when one is configured (see
// flowkit/runtime); otherwise they are discarded.
package timeout

import (
	"context"
	"fmt"
	"time"

	"github.com/parallax-labs/lib-flowkit/flowkit"
	"github.com/parallax-labs/lib-flowkit/flowkit/metrics"
	"github.com/parallax-labs/lib-flowkit/flowkit/runtime"
)

// ErrInvalidTimeout is returned when the limit is zero or negative.
var ErrInvalidTimeout = fmt.Errorf("non-positive timeout: %w", flowkit.ErrInvalidArgument)

// Result carries the outcome of an in-flight operation.
type Result[T any] struct {
	Value T
	Err   error
}

// Do starts fn in its own goroutine and waits up to limit for it to settle.
// If fn completes first its result is returned; otherwise Do fails with
// flowkit.ErrTimeout at or after limit has elapsed, never before.
//
// fn is not cancelled on timeout: it receives the caller's ctx unchanged and
// keeps running in the background. Panics inside fn are recovered and
// converted to errors so an abandoned operation cannot crash the process.
func Do[T any](ctx context.Context, limit time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	if fn == nil {
		return zero, fmt.Errorf("%w: nil operation", flowkit.ErrInvalidArgument)
	}

	if limit <= 0 {
		return zero, fmt.Errorf("%w: got %v", ErrInvalidTimeout, limit)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	// Buffered so the operation goroutine never blocks after abandonment.
	results := make(chan Result[T], 1)

	go func() {
		defer func() {
			if recovered := recover(); recovered != nil {
				results <- Result[T]{Err: runtime.PanicError(recovered)}
			}
		}()

		value, err := fn(ctx)
		results <- Result[T]{Value: value, Err: err}
	}()

	return Await(ctx, limit, results)
}

// Await waits up to limit for an already-in-flight operation to deliver its
// outcome on results. If the deadline or the caller's context wins, the
// pending operation is abandoned: a drain goroutine consumes its eventual
// outcome and reports late failures to the configured error reporter.
func Await[T any](ctx context.Context, limit time.Duration, results <-chan Result[T]) (T, error) {
	var zero T

	if limit <= 0 {
		return zero, fmt.Errorf("%w: got %v", ErrInvalidTimeout, limit)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	timer := time.NewTimer(limit)
	defer timer.Stop()

	select {
	case res := <-results:
		return res.Value, res.Err
	case <-ctx.Done():
		go drain(results)
		return zero, fmt.Errorf("context done: %w", ctx.Err())
	case <-timer.C:
		go drain(results)
		metrics.Default().Counter(metrics.MetricTimeoutExpired).AddOne(ctx)

		return zero, fmt.Errorf("%w after %v", flowkit.ErrTimeout, limit)
	}
}

// drain consumes the abandoned operation's outcome so unbuffered producers
// are not leaked, forwarding failures to the error reporter.
func drain[T any](results <-chan Result[T]) {
	res, ok := <-results
	if !ok || res.Err == nil {
		return
	}

	runtime.Report(context.Background(), res.Err, "timeout", "Await")
}
