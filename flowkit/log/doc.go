// Package log defines the structured logging contract shared by flowkit
// subpackages and typed logging fields.
//
// Adapters (such as the zap package) implement Logger so control-flow
// primitives can emit attempt/abort diagnostics without binding to a backend.
package log
