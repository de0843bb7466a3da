// Package flowkit provides shared flow-control helpers used across Parallax services.
//
// The package includes context plumbing, deep map clone/merge utilities, and
// byte formatting. Control-flow primitives live in subpackages: batch for
// bounded-concurrency fan-out, retry for exponential-backoff retries, timeout
// for deadline races, debounce and throttle for call coalescing and rate
// limiting, and circuitbreaker for failure isolation.
//
// Typical usage at call-site ingress:
//
//	ctx = flowkit.ContextWithLogger(ctx, logger)
//	ctx = flowkit.ContextWithRequestID(ctx, requestID)
//
// This package is intentionally dependency-light; specialized integrations live
// in subpackages such as zap, metrics, and circuitbreaker.
package flowkit
