package circuitbreaker

import (
	"time"

	"github.com/sony/gobreaker"
)

// Manager manages circuit breakers for named downstream services.
type Manager interface {
	// GetOrCreate returns the existing breaker for serviceName or creates one.
	GetOrCreate(serviceName string, config Config) CircuitBreaker

	// Execute runs fn through the named breaker.
	Execute(serviceName string, fn func() (any, error)) (any, error)

	// State returns the current breaker state, StateUnknown when absent.
	State(serviceName string) State

	// Counts returns the current request statistics for a breaker.
	Counts(serviceName string) Counts

	// IsHealthy reports whether the breaker is not open.
	IsHealthy(serviceName string) bool

	// Reset recreates the breaker with its original configuration,
	// returning it to the closed state.
	Reset(serviceName string)

	// RegisterStateChangeListener registers a state-change listener.
	RegisterStateChangeListener(listener StateChangeListener)
}

// CircuitBreaker is a single breaker handle.
type CircuitBreaker interface {
	Execute(fn func() (any, error)) (any, error)
	State() State
	Counts() Counts
}

// Config holds circuit breaker thresholds.
type Config struct {
	MaxRequests         uint32        // max probe requests in half-open state
	Interval            time.Duration // closed-state counter reset interval
	Timeout             time.Duration // open-state duration before half-open
	ConsecutiveFailures uint32        // consecutive failures tripping the breaker
	FailureRatio        float64       // failure ratio tripping the breaker
	MinRequests         uint32        // minimum samples before the ratio applies
}

// State represents circuit breaker state.
type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half-open"
	StateUnknown  State = "unknown"
)

// Counts represents circuit breaker request statistics.
type Counts struct {
	Requests             uint32
	TotalSuccesses       uint32
	TotalFailures        uint32
	ConsecutiveSuccesses uint32
	ConsecutiveFailures  uint32
}

// StateChangeListener is notified when a breaker changes state.
type StateChangeListener interface {
	OnStateChange(serviceName string, from State, to State)
}

// circuitBreaker wraps a gobreaker instance behind the package interface.
type circuitBreaker struct {
	breaker *gobreaker.CircuitBreaker
}

func (cb *circuitBreaker) Execute(fn func() (any, error)) (any, error) {
	return cb.breaker.Execute(fn)
}

func (cb *circuitBreaker) State() State {
	return stateFromGobreaker(cb.breaker.State())
}

func (cb *circuitBreaker) Counts() Counts {
	counts := cb.breaker.Counts()

	return Counts{
		Requests:             counts.Requests,
		TotalSuccesses:       counts.TotalSuccesses,
		TotalFailures:        counts.TotalFailures,
		ConsecutiveSuccesses: counts.ConsecutiveSuccesses,
		ConsecutiveFailures:  counts.ConsecutiveFailures,
	}
}

func stateFromGobreaker(state gobreaker.State) State {
	switch state {
	case gobreaker.StateClosed:
		return StateClosed
	case gobreaker.StateOpen:
		return StateOpen
	case gobreaker.StateHalfOpen:
		return StateHalfOpen
	default:
		return StateUnknown
	}
}
