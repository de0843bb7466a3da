package flowkit

import "errors"

// Root error taxonomy for the flow-control subpackages. Leaf packages wrap
// these sentinels with their own context so callers can branch with errors.Is
// without importing every subpackage.

// ErrInvalidArgument indicates malformed configuration rejected before any
// work starts (non-positive concurrency, negative delays, zero windows).
var ErrInvalidArgument = errors.New("invalid argument")

// ErrOperationFailed wraps the last underlying failure of an operation whose
// retry budget is exhausted.
var ErrOperationFailed = errors.New("operation failed")

// ErrTimeout indicates a deadline elapsed before the raced operation settled.
var ErrTimeout = errors.New("operation timed out")
