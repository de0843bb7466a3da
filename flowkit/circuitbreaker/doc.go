// Package circuitbreaker provides per-service circuit breaker orchestration.
//
// Use NewManager to create and manage named breakers, then run calls through
// Manager.Execute so failures are tracked consistently across callers.
// State changes are logged, counted, and fanned out to registered listeners.
package circuitbreaker
