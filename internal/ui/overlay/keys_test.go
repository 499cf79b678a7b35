package overlay

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/stretchr/testify/assert"

	"sowon/internal/core/input"
)

func TestRuneKey(t *testing.T) {
	cases := map[rune]input.Key{
		' ': input.KeyTogglePause,
		'=': input.KeyZoomIn,
		'+': input.KeyZoomIn,
		'-': input.KeyZoomOut,
		'0': input.KeyZoomReset,
	}
	for r, want := range cases {
		got, ok := runeKey(r)
		assert.True(t, ok, "rune %q", r)
		assert.Equal(t, want, got, "rune %q", r)
	}

	_, ok := runeKey('x')
	assert.False(t, ok)
}

func TestNamedKey(t *testing.T) {
	key, ok := namedKey(fyne.KeyF5)
	assert.True(t, ok)
	assert.Equal(t, input.KeyReset, key)

	key, ok = namedKey(fyne.KeyF11)
	assert.True(t, ok)
	assert.Equal(t, input.KeyToggleFullscreen, key)

	_, ok = namedKey(fyne.KeySpace)
	assert.False(t, ok, "space is handled as a rune")
}

func TestIsControl(t *testing.T) {
	assert.True(t, isControl(desktop.KeyControlLeft))
	assert.True(t, isControl(desktop.KeyControlRight))
	assert.False(t, isControl(desktop.KeyShiftLeft))
}

func TestWheelEvent(t *testing.T) {
	event, ok := wheelEvent(2, true)
	assert.True(t, ok)
	assert.Equal(t, input.Wheel(2, true), event)

	_, ok = wheelEvent(0, true)
	assert.False(t, ok)
}
