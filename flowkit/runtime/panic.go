package runtime

import (
	"context"
	"fmt"

	"github.com/parallax-labs/lib-flowkit/flowkit/log"
)

// panicError wraps a non-error panic value as an error for reporting.
type panicError struct {
	message string
}

// Error returns the panic error message.
func (e *panicError) Error() string {
	return e.message
}

// PanicError converts a recovered panic value into an error. Error values
// pass through unchanged; everything else is wrapped with a "panic:" prefix.
func PanicError(value any) error {
	switch val := value.(type) {
	case nil:
		return &panicError{message: "panic: <nil>"}
	case error:
		return val
	case string:
		return &panicError{message: "panic: " + val}
	default:
		return &panicError{message: fmt.Sprintf("panic: %v", val)}
	}
}

// HandlePanicValue logs a recovered panic and forwards it to the configured
// error reporter. Intended for deferred recover blocks in goroutine-spawning
// code; component and operation label where the panic escaped from.
func HandlePanicValue(ctx context.Context, logger log.Logger, value any, component, operation string) {
	if ctx == nil {
		ctx = context.Background()
	}

	err := PanicError(value)

	if logger != nil {
		logger.Log(ctx, log.LevelError, "panic recovered",
			log.String("component", component),
			log.String("operation", operation),
			log.Err(err),
		)
	}

	Report(ctx, err, component, operation)
}
