// Package throttle rate-limits calls to at most one leading-edge invocation
// per fixed window.
package throttle

import (
	"fmt"
	"sync"
	"time"

	"github.com/parallax-labs/lib-flowkit/flowkit"
)

// ErrInvalidLimit is returned when the window duration is zero or negative.
var ErrInvalidLimit = fmt.Errorf("non-positive throttle window: %w", flowkit.ErrInvalidArgument)

// Throttler wraps a function so at most one call per window executes.
// The first call in an unlocked state runs synchronously and locks the
// throttler for the window; calls arriving while locked are dropped, not
// queued. Safe for concurrent use.
type Throttler[T any] struct {
	fn    func(T)
	limit time.Duration

	mu        sync.Mutex
	lastFired time.Time
}

// New creates a Throttler around fn. Returns ErrInvalidLimit when limit is
// not positive and flowkit.ErrInvalidArgument when fn is nil.
func New[T any](limit time.Duration, fn func(T)) (*Throttler[T], error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil function", flowkit.ErrInvalidArgument)
	}

	if limit <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidLimit, limit)
	}

	return &Throttler[T]{fn: fn, limit: limit}, nil
}

// Call executes the wrapped function with v if the throttler is unlocked,
// reporting whether the call ran. Dropped calls are discarded, not deferred.
func (t *Throttler[T]) Call(v T) bool {
	t.mu.Lock()

	now := time.Now()
	if !t.lastFired.IsZero() && now.Sub(t.lastFired) < t.limit {
		t.mu.Unlock()
		return false
	}

	t.lastFired = now
	t.mu.Unlock()

	// Run synchronously outside the lock: the leading edge executes in the
	// caller's goroutine, and concurrent callers are rejected by state, not
	// by lock contention.
	t.fn(v)

	return true
}
