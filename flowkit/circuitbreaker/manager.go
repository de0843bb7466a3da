package circuitbreaker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"

	libLog "github.com/parallax-labs/lib-flowkit/flowkit/log"
	"github.com/parallax-labs/lib-flowkit/flowkit/metrics"
	"github.com/parallax-labs/lib-flowkit/flowkit/safe"
)

// ErrBreakerNotFound is returned by Execute when no breaker exists for the
// service; call GetOrCreate first.
var ErrBreakerNotFound = errors.New("circuit breaker not found")

type manager struct {
	breakers  map[string]*gobreaker.CircuitBreaker
	configs   map[string]Config
	listeners []StateChangeListener
	mu        sync.RWMutex
	logger    libLog.Logger
	metrics   *metrics.Factory
}

// NewManager creates a circuit breaker manager. A nil logger disables
// state-change logging; a nil factory disables state-change metrics.
//
//nolint:ireturn
func NewManager(logger libLog.Logger, factory *metrics.Factory) Manager {
	if logger == nil {
		logger = libLog.NewNop()
	}

	return &manager{
		breakers: make(map[string]*gobreaker.CircuitBreaker),
		configs:  make(map[string]Config),
		logger:   logger,
		metrics:  factory,
	}
}

func (m *manager) GetOrCreate(serviceName string, config Config) CircuitBreaker {
	m.mu.RLock()
	breaker, exists := m.breakers[serviceName]
	m.mu.RUnlock()

	if exists {
		return &circuitBreaker{breaker: breaker}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring the write lock.
	if breaker, exists = m.breakers[serviceName]; exists {
		return &circuitBreaker{breaker: breaker}
	}

	breaker = m.newBreaker(serviceName, config)
	m.breakers[serviceName] = breaker
	m.configs[serviceName] = config

	m.logger.Log(context.Background(), libLog.LevelInfo, "created circuit breaker",
		libLog.String("service", serviceName))

	return &circuitBreaker{breaker: breaker}
}

// newBreaker builds a gobreaker instance for serviceName. Callers hold m.mu.
func (m *manager) newBreaker(serviceName string, config Config) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "service-" + serviceName,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			ratio, err := safe.DivideFloat64(float64(counts.TotalFailures), float64(counts.Requests))
			if err != nil {
				ratio = 0
			}

			return counts.ConsecutiveFailures >= config.ConsecutiveFailures ||
				(counts.Requests >= config.MinRequests && ratio >= config.FailureRatio)
		},
		OnStateChange: func(_ string, from gobreaker.State, to gobreaker.State) {
			m.handleStateChange(serviceName, stateFromGobreaker(from), stateFromGobreaker(to))
		},
	})
}

// Reset discards the breaker's accumulated state by recreating it with its
// original configuration. Unknown services are a no-op.
func (m *manager) Reset(serviceName string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.breakers[serviceName]; !exists {
		return
	}

	m.logger.Log(context.Background(), libLog.LevelInfo, "resetting circuit breaker",
		libLog.String("service", serviceName))

	m.breakers[serviceName] = m.newBreaker(serviceName, m.configs[serviceName])
}

func (m *manager) Execute(serviceName string, fn func() (any, error)) (any, error) {
	m.mu.RLock()
	breaker, exists := m.breakers[serviceName]
	m.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: service %q", ErrBreakerNotFound, serviceName)
	}

	result, err := breaker.Execute(fn)
	if err != nil {
		switch {
		case errors.Is(err, gobreaker.ErrOpenState):
			return nil, fmt.Errorf("service %s is unavailable (circuit breaker open): %w", serviceName, err)
		case errors.Is(err, gobreaker.ErrTooManyRequests):
			return nil, fmt.Errorf("service %s is recovering (too many requests): %w", serviceName, err)
		}
	}

	return result, err
}

func (m *manager) State(serviceName string) State {
	m.mu.RLock()
	breaker, exists := m.breakers[serviceName]
	m.mu.RUnlock()

	if !exists {
		return StateUnknown
	}

	return stateFromGobreaker(breaker.State())
}

func (m *manager) Counts(serviceName string) Counts {
	m.mu.RLock()
	breaker, exists := m.breakers[serviceName]
	m.mu.RUnlock()

	if !exists {
		return Counts{}
	}

	counts := breaker.Counts()

	return Counts{
		Requests:             counts.Requests,
		TotalSuccesses:       counts.TotalSuccesses,
		TotalFailures:        counts.TotalFailures,
		ConsecutiveSuccesses: counts.ConsecutiveSuccesses,
		ConsecutiveFailures:  counts.ConsecutiveFailures,
	}
}

func (m *manager) IsHealthy(serviceName string) bool {
	return m.State(serviceName) != StateOpen
}

func (m *manager) RegisterStateChangeListener(listener StateChangeListener) {
	if listener == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.listeners = append(m.listeners, listener)
}

func (m *manager) handleStateChange(serviceName string, from, to State) {
	ctx := context.Background()

	m.logger.Log(ctx, libLog.LevelWarn, "circuit breaker state change",
		libLog.String("service", serviceName),
		libLog.String("from", string(from)),
		libLog.String("to", string(to)),
	)

	if m.metrics != nil {
		m.metrics.Counter(metrics.MetricBreakerStateChanges).
			WithAttributes(
				attribute.String("service", serviceName),
				attribute.String("from", string(from)),
				attribute.String("to", string(to)),
			).
			AddOne(ctx)
	}

	m.mu.RLock()
	listeners := make([]StateChangeListener, len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.RUnlock()

	for _, listener := range listeners {
		listener.OnStateChange(serviceName, from, to)
	}
}
