package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var out bytes.Buffer
	log := New(LevelNormal, &out)

	log.Debug("hidden %d", 1)
	log.Info("shown %d", 2)
	log.Warn("careful")
	log.Error("broken")

	text := out.String()
	assert.NotContains(t, text, "hidden")
	assert.Contains(t, text, "[INF] ")
	assert.Contains(t, text, "shown 2")
	assert.Contains(t, text, "[WRN] ")
	assert.Contains(t, text, "[ERR] ")

	out.Reset()
	log.SetLevel(LevelVerbose)
	log.Debug("visible")
	assert.Contains(t, out.String(), "[DBG] ")
	assert.Equal(t, LevelVerbose, log.Level())

	out.Reset()
	log.SetLevel(LevelOff)
	log.Error("silent")
	assert.Empty(t, out.String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		value string
		want  Level
		ok    bool
	}{
		{"off", LevelOff, true},
		{"", LevelNormal, true},
		{"Normal", LevelNormal, true},
		{" verbose ", LevelVerbose, true},
		{"debug", LevelVerbose, true},
		{"loud", LevelNormal, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.value)
		assert.Equal(t, tt.want, got, tt.value)
		assert.Equal(t, tt.ok, ok, tt.value)
	}
}
