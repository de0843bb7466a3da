package circuitbreaker

import "time"

// DefaultConfig provides balanced settings for most services.
func DefaultConfig() Config {
	return Config{
		MaxRequests:         3,
		Interval:            2 * time.Minute,
		Timeout:             30 * time.Second,
		ConsecutiveFailures: 15,
		FailureRatio:        0.5,
		MinRequests:         10,
	}
}

// AggressiveConfig suits services requiring fast failure detection.
func AggressiveConfig() Config {
	return Config{
		MaxRequests:         2,
		Interval:            1 * time.Minute,
		Timeout:             10 * time.Second,
		ConsecutiveFailures: 5,
		FailureRatio:        0.4,
		MinRequests:         5,
	}
}

// ConservativeConfig suits services that should tolerate more failures
// before tripping.
func ConservativeConfig() Config {
	return Config{
		MaxRequests:         5,
		Interval:            5 * time.Minute,
		Timeout:             60 * time.Second,
		ConsecutiveFailures: 25,
		FailureRatio:        0.6,
		MinRequests:         20,
	}
}
