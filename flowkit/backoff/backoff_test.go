//go:build unit

package backoff

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		base     time.Duration
		attempt  int
		expected time.Duration
	}{
		{"attempt 0 returns base", time.Second, 0, time.Second},
		{"attempt 1 doubles base", time.Second, 1, 2 * time.Second},
		{"attempt 2 quadruples base", time.Second, 2, 4 * time.Second},
		{"attempt 3 is 8x base", 100 * time.Millisecond, 3, 800 * time.Millisecond},
		{"negative attempt treated as 0", time.Second, -3, time.Second},
		{"zero base returns 0", 0, 5, 0},
		{"negative base returns 0", -time.Second, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Delay(tt.base, tt.attempt))
		})
	}
}

func TestDelay_DoublingSequence(t *testing.T) {
	t.Parallel()

	// Reference schedule: base 1s yields 1s, 2s, 4s between four attempts.
	base := time.Second

	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second},
		[]time.Duration{Delay(base, 0), Delay(base, 1), Delay(base, 2)})
}

func TestDelay_OverflowSaturates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		base    time.Duration
		attempt int
	}{
		{"hour base attempt 40", time.Hour, 40},
		{"second base attempt 50", time.Second, 50},
		{"attempt beyond shift clamp", time.Second, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, time.Duration(math.MaxInt64), Delay(tt.base, tt.attempt))
		})
	}
}

func TestDelay_ShiftClampEquivalence(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Delay(time.Nanosecond, 62), Delay(time.Nanosecond, 63))
	assert.Equal(t, Delay(time.Nanosecond, 62), Delay(time.Nanosecond, 1000))
}

func TestFullJitter_WithinRange(t *testing.T) {
	t.Parallel()

	delay := 100 * time.Millisecond

	for range 100 {
		jittered := FullJitter(delay)
		assert.GreaterOrEqual(t, jittered, time.Duration(0))
		assert.Less(t, jittered, delay)
	}
}

func TestFullJitter_NonPositive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Duration(0), FullJitter(0))
	assert.Equal(t, time.Duration(0), FullJitter(-time.Second))
}

func TestDelayWithJitter_BoundedByExponential(t *testing.T) {
	t.Parallel()

	base := 10 * time.Millisecond

	for range 100 {
		jittered := DelayWithJitter(base, 2)
		assert.GreaterOrEqual(t, jittered, time.Duration(0))
		assert.Less(t, jittered, 4*base)
	}
}

func TestSleep_Completes(t *testing.T) {
	t.Parallel()

	start := time.Now()
	err := Sleep(context.Background(), 20*time.Millisecond)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestSleep_NonPositiveReturnsImmediately(t *testing.T) {
	t.Parallel()

	start := time.Now()

	require.NoError(t, Sleep(context.Background(), 0))
	require.NoError(t, Sleep(context.Background(), -time.Second))
	assert.Less(t, time.Since(start), 10*time.Millisecond)
}

func TestSleep_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Sleep(ctx, time.Minute)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSleep_CancelMidSleep(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := Sleep(ctx, time.Minute)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 10*time.Second)
}
