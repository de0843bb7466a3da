//go:build unit

package flowkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		count    int64
		expected string
	}{
		{"zero", 0, "0 B"},
		{"below one KiB", 512, "512 B"},
		{"boundary 1023", 1023, "1023 B"},
		{"exactly one KiB", 1024, "1.00 KiB"},
		{"one and a half KiB", 1536, "1.50 KiB"},
		{"one MiB", 1024 * 1024, "1.00 MiB"},
		{"one GiB", 1024 * 1024 * 1024, "1.00 GiB"},
		{"one TiB", 1024 * 1024 * 1024 * 1024, "1.00 TiB"},
		{"negative", -1536, "-1.50 KiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatBytes(tt.count))
		})
	}
}

func TestFormatCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		count    int64
		expected string
	}{
		{"zero", 0, "0"},
		{"three digits", 999, "999"},
		{"four digits", 1000, "1,000"},
		{"seven digits", 1234567, "1,234,567"},
		{"negative", -1234567, "-1,234,567"},
		{"exact group", 123456, "123,456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatCount(tt.count))
		})
	}
}
