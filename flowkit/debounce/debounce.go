// Package debounce coalesces bursts of calls into one trailing-edge
// invocation after a quiet period.
package debounce

import (
	"fmt"
	"sync"
	"time"

	"github.com/parallax-labs/lib-flowkit/flowkit"
)

// ErrInvalidWait is returned when the wait interval is zero or negative.
var ErrInvalidWait = fmt.Errorf("non-positive wait interval: %w", flowkit.ErrInvalidArgument)

// Debouncer wraps a function so that bursts of calls collapse into a single
// invocation with the arguments of the last call, fired after wait has
// elapsed with no further calls.
//
// Each Debouncer owns exactly one pending invocation; a new call replaces the
// pending one. Safe for concurrent use.
type Debouncer[T any] struct {
	fn   func(T)
	wait time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending T
	armed   bool
	// gen invalidates timer callbacks that lost the race against a newer
	// Call or Stop: time.Timer.Stop cannot stop a callback already blocked
	// on mu.
	gen uint64
}

// New creates a Debouncer around fn. Returns ErrInvalidWait when wait is not
// positive and flowkit.ErrInvalidArgument when fn is nil.
func New[T any](wait time.Duration, fn func(T)) (*Debouncer[T], error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil function", flowkit.ErrInvalidArgument)
	}

	if wait <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidWait, wait)
	}

	return &Debouncer[T]{fn: fn, wait: wait}, nil
}

// Call schedules the wrapped function with v, superseding any pending
// scheduled invocation. Fire-and-forget: nothing is returned and the
// superseded value is silently discarded.
func (d *Debouncer[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = v
	d.armed = true
	d.gen++
	gen := d.gen

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.wait, func() {
		d.fire(gen)
	})
}

// fire runs the pending invocation unless gen shows it was superseded.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()

	if !d.armed || gen != d.gen {
		d.mu.Unlock()
		return
	}

	value := d.pending
	d.armed = false
	d.timer = nil
	d.mu.Unlock()

	// Invoked outside the lock so a re-entrant Call cannot deadlock.
	d.fn(value)
}

// Flush fires the pending invocation immediately, if any.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()

	gen := d.gen

	if d.timer != nil {
		d.timer.Stop()
	}

	d.mu.Unlock()
	d.fire(gen)
}

// Stop cancels the pending invocation, if any. The Debouncer remains usable.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	d.armed = false
	d.gen++
}
