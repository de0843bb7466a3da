package metrics

import "sync"

// Process-wide default factory. Initialized lazily via SetDefault; packages
// that have no factory of their own record through Default.
var (
	defaultFactory *Factory
	defaultMu      sync.RWMutex
)

// SetDefault installs factory as the process-wide default. It should be
// called once during application startup after telemetry is initialized.
// A nil factory is ignored.
func SetDefault(factory *Factory) {
	if factory == nil {
		return
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultFactory = factory
}

// Default returns the process-wide default factory, or nil when SetDefault
// has not been called. Factory methods are nil-receiver safe, so the result
// can be used unconditionally.
func Default() *Factory {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	return defaultFactory
}

// ResetDefault clears the default factory. Intended for test isolation.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultFactory = nil
}
