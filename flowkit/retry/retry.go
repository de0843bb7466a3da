package retry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/parallax-labs/lib-flowkit/flowkit"
	"github.com/parallax-labs/lib-flowkit/flowkit/backoff"
	libLog "github.com/parallax-labs/lib-flowkit/flowkit/log"
	"github.com/parallax-labs/lib-flowkit/flowkit/metrics"
)

// Default retry budget: up to 4 total attempts with a 1s base delay,
// yielding inter-attempt waits of 1s, 2s, 4s.
const (
	DefaultMaxRetries = 3
	DefaultBaseDelay  = time.Second
)

type config struct {
	maxRetries int
	baseDelay  time.Duration
	jitter     bool
	logger     libLog.Logger
	metrics    *metrics.Factory
	name       string
}

// Option customizes a single Do invocation.
type Option func(*config) error

// WithMaxRetries sets how many times the operation is retried after the
// initial attempt. Negative values are rejected.
func WithMaxRetries(n int) Option {
	return func(cfg *config) error {
		if n < 0 {
			return fmt.Errorf("%w: negative max retries %d", flowkit.ErrInvalidArgument, n)
		}

		cfg.maxRetries = n

		return nil
	}
}

// WithBaseDelay sets the base delay of the exponential schedule.
// Negative values are rejected; zero disables waiting between attempts.
func WithBaseDelay(d time.Duration) Option {
	return func(cfg *config) error {
		if d < 0 {
			return fmt.Errorf("%w: negative base delay %v", flowkit.ErrInvalidArgument, d)
		}

		cfg.baseDelay = d

		return nil
	}
}

// WithJitter randomizes each delay uniformly in [0, scheduled delay).
// Off by default: the unjittered schedule is part of the package contract.
func WithJitter() Option {
	return func(cfg *config) error {
		cfg.jitter = true
		return nil
	}
}

// WithLogger enables per-attempt debug/warn logging.
func WithLogger(logger libLog.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = logger
		return nil
	}
}

// WithMetrics records attempt counts and delays through the given factory.
func WithMetrics(factory *metrics.Factory) Option {
	return func(cfg *config) error {
		cfg.metrics = factory
		return nil
	}
}

// WithName labels log entries and metric attributes with an operation name.
func WithName(name string) Option {
	return func(cfg *config) error {
		cfg.name = name
		return nil
	}
}

// Do invokes op up to maxRetries+1 times, waiting baseDelay * 2^i between
// attempt i and attempt i+1. The first success returns immediately. When the
// final attempt fails, the last failure is returned wrapped in
// flowkit.ErrOperationFailed; earlier failures are discarded.
//
// Retries are unconditional on error kind. Context cancellation during a
// backoff wait aborts the loop with the context error.
func Do[T any](ctx context.Context, op func(context.Context) (T, error), opts ...Option) (T, error) {
	var zero T

	cfg := config{
		maxRetries: DefaultMaxRetries,
		baseDelay:  DefaultBaseDelay,
		logger:     libLog.NewNop(),
	}

	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return zero, err
		}
	}

	if op == nil {
		return zero, fmt.Errorf("%w: nil operation", flowkit.ErrInvalidArgument)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	attempts := cfg.maxRetries + 1

	var lastErr error

	for attempt := range attempts {
		if attempt > 0 {
			delay := backoff.Delay(cfg.baseDelay, attempt-1)
			if cfg.jitter {
				delay = backoff.FullJitter(delay)
			}

			cfg.logger.Log(ctx, libLog.LevelDebug, "retrying after backoff",
				libLog.String("operation", cfg.name),
				libLog.Int("attempt", attempt),
				libLog.Duration("delay", delay),
				libLog.Err(lastErr),
			)

			if err := backoff.Sleep(ctx, delay); err != nil {
				return zero, err
			}

			cfg.recordDelay(ctx, delay)
		}

		cfg.countAttempt(ctx)

		result, err := op(ctx)
		if err == nil {
			return result, nil
		}

		lastErr = err
	}

	cfg.countExhausted(ctx)
	cfg.logger.Log(ctx, libLog.LevelWarn, "retry budget exhausted",
		libLog.String("operation", cfg.name),
		libLog.Int("attempts", attempts),
		libLog.Err(lastErr),
	)

	return zero, fmt.Errorf("%w after %d attempts: %w", flowkit.ErrOperationFailed, attempts, lastErr)
}

func (cfg *config) countAttempt(ctx context.Context) {
	if cfg.metrics == nil {
		return
	}

	cfg.metrics.Counter(metrics.MetricRetryAttempts).
		WithAttributes(attribute.String("operation", cfg.name)).
		AddOne(ctx)
}

func (cfg *config) countExhausted(ctx context.Context) {
	if cfg.metrics == nil {
		return
	}

	cfg.metrics.Counter(metrics.MetricRetryExhausted).
		WithAttributes(attribute.String("operation", cfg.name)).
		AddOne(ctx)
}

func (cfg *config) recordDelay(ctx context.Context, delay time.Duration) {
	if cfg.metrics == nil {
		return
	}

	_ = cfg.metrics.Histogram(metrics.MetricRetryDelay).
		WithAttributes(attribute.String("operation", cfg.name)).
		Record(ctx, delay.Seconds())
}
