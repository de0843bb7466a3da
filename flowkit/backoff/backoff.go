// Package backoff provides exponential delay schedules with optional jitter
// and a context-aware sleep, shared by retry and usable standalone.
package backoff

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	mrand "math/rand/v2"
	"time"
)

// maxShift bounds the exponent so the 1<<attempt multiplier fits in int64.
const maxShift = 62

// Delay calculates the exponential delay for an attempt number.
// The delay is base * 2^attempt, saturating at math.MaxInt64 instead of
// overflowing. Negative attempts are treated as 0; non-positive bases
// return 0.
func Delay(base time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}

	if attempt < 0 {
		attempt = 0
	} else if attempt > maxShift {
		attempt = maxShift
	}

	multiplier := int64(1) << attempt

	baseInt := int64(base)
	if baseInt > math.MaxInt64/multiplier {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(baseInt * multiplier)
}

// FullJitter returns a random duration in the range [0, delay).
// Uses crypto/rand, falling back to a seeded PRNG if the entropy source
// fails. Returns 0 for zero or negative delays.
func FullJitter(delay time.Duration) time.Duration {
	if delay <= 0 {
		return 0
	}

	n, err := rand.Int(rand.Reader, big.NewInt(int64(delay)))
	if err != nil {
		return time.Duration(fallbackRand(int64(delay)))
	}

	return time.Duration(n.Int64())
}

// fallbackDivisor produces the deterministic midpoint used when every
// entropy source fails.
const fallbackDivisor = 2

// fallbackRand supplies jitter when crypto/rand.Int fails. It first tries to
// seed a PCG generator from raw crypto/rand bytes (a different code path that
// can succeed independently), then falls back to the midpoint so jitter never
// stalls under entropy exhaustion.
func fallbackRand(maxValue int64) int64 {
	var seed [8]byte

	_, err := rand.Read(seed[:])
	if err != nil {
		return maxValue / fallbackDivisor
	}

	rng := mrand.New(
		mrand.NewPCG(binary.LittleEndian.Uint64(seed[:]), 0),
	) // #nosec G404 -- Fallback when crypto/rand fails

	return rng.Int64N(maxValue)
}

// DelayWithJitter combines the exponential schedule with full jitter,
// returning a random duration in [0, base * 2^attempt). This is the
// "Full Jitter" strategy recommended by AWS.
func DelayWithJitter(base time.Duration, attempt int) time.Duration {
	return FullJitter(Delay(base, attempt))
}

// Sleep blocks for the given duration while respecting context cancellation.
// Returns nil when the sleep completes, the wrapped context error when the
// context is done first, and immediately (nil) for non-positive durations.
func Sleep(ctx context.Context, duration time.Duration) error {
	if duration <= 0 {
		return nil
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("context done: %w", ctx.Err())
	}
}
