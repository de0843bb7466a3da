// Package metrics provides a fluent factory for OpenTelemetry metric instruments.
//
// Factory caches instruments and exposes builder-style APIs for counters and
// histograms with low-overhead attribute composition. Flow-control packages
// (retry, circuitbreaker) use it for attempt counters and state-change events.
package metrics
