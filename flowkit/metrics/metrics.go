package metrics

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	libLog "github.com/parallax-labs/lib-flowkit/flowkit/log"
)

// Instrument names emitted by flowkit packages.
const (
	MetricRetryAttempts       = "flow.retry.attempts"
	MetricRetryExhausted      = "flow.retry.exhausted"
	MetricBatchItems          = "flow.batch.items"
	MetricTimeoutExpired      = "flow.timeout.expired"
	MetricBreakerStateChanges = "flow.breaker.state_changes"
	MetricRetryDelay          = "flow.retry.delay_seconds"
)

// ErrNilCounter is returned when a counter builder has no instrument.
var ErrNilCounter = errors.New("counter instrument is nil")

// ErrNilHistogram is returned when a histogram builder has no instrument.
var ErrNilHistogram = errors.New("histogram instrument is nil")

// Factory creates and caches metric instruments from a single meter.
// Instrument creation failures are logged once and surface as no-op builders,
// so recording never fails a caller's hot path.
type Factory struct {
	meter      metric.Meter
	logger     libLog.Logger
	mu         sync.Mutex
	counters   map[string]metric.Int64Counter
	histograms map[string]metric.Float64Histogram
}

// NewFactory creates a metric factory over the given meter.
// A nil logger disables instrument-creation diagnostics.
func NewFactory(meter metric.Meter, logger libLog.Logger) *Factory {
	if logger == nil {
		logger = libLog.NewNop()
	}

	return &Factory{
		meter:      meter,
		logger:     logger,
		counters:   make(map[string]metric.Int64Counter),
		histograms: make(map[string]metric.Float64Histogram),
	}
}

// Counter returns a builder for the named Int64Counter, creating and caching
// the instrument on first use.
func (f *Factory) Counter(name string) *CounterBuilder {
	if f == nil {
		return &CounterBuilder{}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	counter, ok := f.counters[name]
	if !ok {
		var err error

		counter, err = f.meter.Int64Counter(name)
		if err != nil {
			f.logger.Log(context.Background(), libLog.LevelError, "failed to create counter",
				libLog.String("name", name), libLog.Err(err))

			return &CounterBuilder{}
		}

		f.counters[name] = counter
	}

	return &CounterBuilder{counter: counter}
}

// Histogram returns a builder for the named Float64Histogram, creating and
// caching the instrument on first use.
func (f *Factory) Histogram(name string) *HistogramBuilder {
	if f == nil {
		return &HistogramBuilder{}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	histogram, ok := f.histograms[name]
	if !ok {
		var err error

		histogram, err = f.meter.Float64Histogram(name)
		if err != nil {
			f.logger.Log(context.Background(), libLog.LevelError, "failed to create histogram",
				libLog.String("name", name), libLog.Err(err))

			return &HistogramBuilder{}
		}

		f.histograms[name] = histogram
	}

	return &HistogramBuilder{histogram: histogram}
}

// CounterBuilder provides a fluent API for recording counter increments with
// optional attributes.
type CounterBuilder struct {
	counter metric.Int64Counter
	attrs   []attribute.KeyValue
}

// WithAttributes returns a builder with additional attributes appended.
func (c *CounterBuilder) WithAttributes(attrs ...attribute.KeyValue) *CounterBuilder {
	merged := make([]attribute.KeyValue, 0, len(c.attrs)+len(attrs))
	merged = append(merged, c.attrs...)
	merged = append(merged, attrs...)

	return &CounterBuilder{counter: c.counter, attrs: merged}
}

// Add records a counter increment.
func (c *CounterBuilder) Add(ctx context.Context, value int64) error {
	if c.counter == nil {
		return ErrNilCounter
	}

	c.counter.Add(ctx, value, metric.WithAttributes(c.attrs...))

	return nil
}

// AddOne records a single counter increment, ignoring instrument errors.
func (c *CounterBuilder) AddOne(ctx context.Context) {
	_ = c.Add(ctx, 1)
}

// HistogramBuilder provides a fluent API for recording histogram samples with
// optional attributes.
type HistogramBuilder struct {
	histogram metric.Float64Histogram
	attrs     []attribute.KeyValue
}

// WithAttributes returns a builder with additional attributes appended.
func (h *HistogramBuilder) WithAttributes(attrs ...attribute.KeyValue) *HistogramBuilder {
	merged := make([]attribute.KeyValue, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)

	return &HistogramBuilder{histogram: h.histogram, attrs: merged}
}

// Record records a histogram sample.
func (h *HistogramBuilder) Record(ctx context.Context, value float64) error {
	if h.histogram == nil {
		return ErrNilHistogram
	}

	h.histogram.Record(ctx, value, metric.WithAttributes(h.attrs...))

	return nil
}
