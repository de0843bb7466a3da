package safe

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrDivisionByZero is returned when attempting to divide by zero.
var ErrDivisionByZero = errors.New("division by zero")

// percentageMultiplier is the multiplier for percentage calculations.
const percentageMultiplier = 100

// hundredDecimal is the pre-allocated multiplier for percentage calculations.
var hundredDecimal = decimal.NewFromInt(percentageMultiplier)

// Divide performs decimal division with zero check.
// Returns ErrDivisionByZero if denominator is zero.
func Divide(numerator, denominator decimal.Decimal) (decimal.Decimal, error) {
	if denominator.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}

	return numerator.Div(denominator), nil
}

// DivideRound performs decimal division with rounding and zero check.
// Returns ErrDivisionByZero if denominator is zero.
//
// Example:
//
//	scaled, err := safe.DivideRound(total, step, 2)
//	if err != nil {
//	    return fmt.Errorf("scale total: %w", err)
//	}
func DivideRound(numerator, denominator decimal.Decimal, places int32) (decimal.Decimal, error) {
	if denominator.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}

	return numerator.DivRound(denominator, places), nil
}

// DivideOrZero performs decimal division, returning zero if denominator is
// zero. Use when zero is an acceptable fallback.
func DivideOrZero(numerator, denominator decimal.Decimal) decimal.Decimal {
	if denominator.IsZero() {
		return decimal.Zero
	}

	return numerator.Div(denominator)
}

// Percentage calculates (numerator / denominator) * 100 with zero check.
// Returns ErrDivisionByZero if denominator is zero.
func Percentage(numerator, denominator decimal.Decimal) (decimal.Decimal, error) {
	if denominator.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}

	return numerator.Div(denominator).Mul(hundredDecimal), nil
}

// DivideFloat64 performs float64 division with zero check.
// Returns ErrDivisionByZero if denominator is zero.
func DivideFloat64(numerator, denominator float64) (float64, error) {
	if denominator == 0 {
		return 0, ErrDivisionByZero
	}

	return numerator / denominator, nil
}
