package runtime

import (
	"context"
	"sync"
)

// ErrorReporter defines an interface for external error reporting services.
// This abstraction allows integration with error tracking backends without a
// hard dependency on any specific SDK.
//
// Implementations must be safe for concurrent use and must not panic.
type ErrorReporter interface {
	// CaptureException reports an error to the tracking service. The tags map
	// carries metadata such as "component" and "operation".
	CaptureException(ctx context.Context, err error, tags map[string]string)
}

var (
	reporterInstance ErrorReporter
	reporterMu       sync.RWMutex
)

// SetErrorReporter configures the process-wide error reporter.
// Pass nil to disable reporting. Call once during application startup.
func SetErrorReporter(reporter ErrorReporter) {
	reporterMu.Lock()
	defer reporterMu.Unlock()

	reporterInstance = reporter
}

// GetErrorReporter returns the currently configured error reporter, or nil
// when none has been configured.
//
//nolint:ireturn
func GetErrorReporter() ErrorReporter {
	reporterMu.RLock()
	defer reporterMu.RUnlock()

	return reporterInstance
}

// Report forwards err to the configured reporter, tagged with the component
// and operation it escaped from. A nil reporter or nil error is a no-op.
func Report(ctx context.Context, err error, component, operation string) {
	if err == nil {
		return
	}

	reporter := GetErrorReporter()
	if reporter == nil {
		return
	}

	if ctx == nil {
		ctx = context.Background()
	}

	reporter.CaptureException(ctx, err, map[string]string{
		"component": component,
		"operation": operation,
	})
}
