// Package runtime provides process-wide error reporting hooks and panic
// value conversion used by flowkit's goroutine-spawning primitives.
//
// A single optional ErrorReporter receives recovered panics and failures from
// abandoned operations; when none is configured these are discarded.
package runtime
