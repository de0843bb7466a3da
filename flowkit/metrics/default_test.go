//go:build unit

package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/parallax-labs/lib-flowkit/flowkit/log"
)

// Default factory tests mutate package state and must not run in parallel.

func TestDefault_UnsetReturnsNil(t *testing.T) {
	ResetDefault()

	assert.Nil(t, Default())

	// Nil factories still hand out usable no-op builders.
	err := Default().Counter(MetricBatchItems).Add(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNilCounter)
}

func TestSetDefault_InstallsFactory(t *testing.T) {
	ResetDefault()
	t.Cleanup(ResetDefault)

	factory := NewFactory(noop.NewMeterProvider().Meter("test"), log.NewNop())
	SetDefault(factory)

	require.Same(t, factory, Default())

	err := Default().Counter(MetricTimeoutExpired).Add(context.Background(), 1)
	assert.NoError(t, err)
}

func TestSetDefault_IgnoresNil(t *testing.T) {
	ResetDefault()
	t.Cleanup(ResetDefault)

	factory := NewFactory(noop.NewMeterProvider().Meter("test"), log.NewNop())
	SetDefault(factory)
	SetDefault(nil)

	assert.Same(t, factory, Default())
}
