//go:build unit

package safe

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivide(t *testing.T) {
	t.Parallel()

	result, err := Divide(decimal.NewFromInt(10), decimal.NewFromInt(4))
	require.NoError(t, err)
	assert.True(t, result.Equal(decimal.RequireFromString("2.5")))

	_, err = Divide(decimal.NewFromInt(10), decimal.Zero)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDivideRound(t *testing.T) {
	t.Parallel()

	result, err := DivideRound(decimal.NewFromInt(1536), decimal.NewFromInt(1024), 2)
	require.NoError(t, err)
	assert.Equal(t, "1.50", result.StringFixed(2))

	_, err = DivideRound(decimal.NewFromInt(1), decimal.Zero, 2)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDivideOrZero(t *testing.T) {
	t.Parallel()

	assert.True(t, DivideOrZero(decimal.NewFromInt(10), decimal.Zero).IsZero())
	assert.True(t, DivideOrZero(decimal.NewFromInt(10), decimal.NewFromInt(2)).
		Equal(decimal.NewFromInt(5)))
}

func TestPercentage(t *testing.T) {
	t.Parallel()

	pct, err := Percentage(decimal.NewFromInt(3), decimal.NewFromInt(4))
	require.NoError(t, err)
	assert.True(t, pct.Equal(decimal.NewFromInt(75)))

	_, err = Percentage(decimal.NewFromInt(1), decimal.Zero)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDivideFloat64(t *testing.T) {
	t.Parallel()

	ratio, err := DivideFloat64(1, 4)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, ratio, 1e-12)

	_, err = DivideFloat64(1, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}
