// Package zap provides a zap-backed implementation of the flowkit/log
// contract.
//
// It bridges structured log events to zap while preserving typed fields,
// tees every record into the OpenTelemetry log bridge, and appends trace
// correlation fields when the context carries an active span.
package zap
