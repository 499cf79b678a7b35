package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sowon/internal/core/model"
	"sowon/internal/core/timeunit"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want model.Config
	}{
		{
			name: "no arguments",
			args: nil,
			want: model.Config{Mode: model.ModeAscending},
		},
		{
			name: "clock",
			args: []string{"clock"},
			want: model.Config{Mode: model.ModeClock},
		},
		{
			name: "countdown with flags",
			args: []string{"-p", "1h", "-e"},
			want: model.Config{Mode: model.ModeCountdown, Initial: 3600, StartPaused: true, ExitOnZero: true},
		},
		{
			name: "terminal stopwatch",
			args: []string{"-t"},
			want: model.Config{Mode: model.ModeAscending, Terminal: true},
		},
		{
			name: "last duration wins",
			args: []string{"5m", "90"},
			want: model.Config{Mode: model.ModeCountdown, Initial: 90},
		},
		{
			name: "duration after clock forces countdown",
			args: []string{"clock", "45s"},
			want: model.Config{Mode: model.ModeCountdown, Initial: 45},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgsInvalidDuration(t *testing.T) {
	for _, arg := range []string{"abc", "10x", "-x", ""} {
		_, err := ParseArgs([]string{arg})
		require.Error(t, err, arg)
		assert.ErrorIs(t, err, timeunit.ErrInvalidDuration)
	}
}

func TestParseArgsHelp(t *testing.T) {
	_, err := ParseArgs([]string{"5m", "--help"})
	assert.ErrorIs(t, err, ErrUsage)

	var out bytes.Buffer
	PrintUsage(&out)
	assert.Contains(t, out.String(), "Usage: sowon")
}
