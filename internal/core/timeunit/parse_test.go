package timeunit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"90", 90},
		{"45s", 45},
		{"2h", 7200},
		{"1h30m", 5400},
		{"1h30m15s", 5415},
		{"0.5h", 1800},
		{"1.5m", 90},
		{".5m", 30},
		{"1h30", 3630},
		{"+10s", 10},
		{"1e2s", 100},
		{"0", 0},
		{"10m-30s", 570},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{"", "empty duration"},
		{"abc", "`abc` is not a number"},
		{"10x", "`x` is an unknown time unit"},
		{"1hh", "`h` is not a number"},
		{"1e", "`e` is an unknown time unit"},
		{"-", "`-` is not a number"},
		{"-5m", "is negative"},
		{"h", "`h` is not a number"},
		{"1e308h", "`1e308h` is too large"},
		{"1e308h-1e308h", "is too large"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.ErrorIs(t, err, ErrInvalidDuration)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
