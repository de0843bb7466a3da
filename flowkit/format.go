package flowkit

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/parallax-labs/lib-flowkit/flowkit/safe"
)

// unitStep is the IEC binary unit multiplier.
const unitStep = 1024

// byteFormatPlaces is the number of decimal places in formatted byte counts.
const byteFormatPlaces = 2

// byteUnits are the IEC binary suffixes, smallest first.
var byteUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// FormatBytes renders a byte count using IEC binary units with two decimal
// places, e.g. 1536 -> "1.50 KiB". Values below one KiB are rendered as
// whole bytes. Negative counts keep their sign.
func FormatBytes(count int64) string {
	negative := count < 0

	magnitude := decimal.NewFromInt(count)
	if negative {
		magnitude = magnitude.Neg()
	}

	step := decimal.NewFromInt(unitStep)
	unit := 0

	for magnitude.GreaterThanOrEqual(step) && unit < len(byteUnits)-1 {
		scaled, err := safe.DivideRound(magnitude, step, byteFormatPlaces)
		if err != nil {
			// Unreachable: step is a non-zero constant.
			break
		}

		magnitude = scaled
		unit++
	}

	var rendered string
	if unit == 0 {
		rendered = magnitude.String() + " " + byteUnits[0]
	} else {
		rendered = magnitude.StringFixed(byteFormatPlaces) + " " + byteUnits[unit]
	}

	if negative {
		return "-" + rendered
	}

	return rendered
}

// FormatCount renders an integer with thousands separators, e.g. 1234567 ->
// "1,234,567".
func FormatCount(count int64) string {
	raw := strconv.FormatInt(count, 10)

	sign := ""
	if raw[0] == '-' {
		sign = "-"
		raw = raw[1:]
	}

	const groupSize = 3

	if len(raw) <= groupSize {
		return sign + raw
	}

	grouped := make([]byte, 0, len(raw)+len(raw)/groupSize)
	lead := len(raw) % groupSize

	if lead > 0 {
		grouped = append(grouped, raw[:lead]...)
	}

	for i := lead; i < len(raw); i += groupSize {
		if len(grouped) > 0 {
			grouped = append(grouped, ',')
		}

		grouped = append(grouped, raw[i:i+groupSize]...)
	}

	return sign + string(grouped)
}
