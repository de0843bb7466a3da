// Package retry runs fallible operations with bounded exponential-backoff
// retries.
//
// Delays grow as baseDelay * 2^attempt with no cap and no jitter by default;
// callers that need bounded worst-case waits should keep the retry budget
// small or opt into jitter. The last underlying failure is surfaced wrapped
// in flowkit.ErrOperationFailed; earlier failures are discarded.
package retry
