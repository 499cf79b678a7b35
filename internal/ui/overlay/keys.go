package overlay

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"sowon/internal/core/input"
)

// runeKey maps printable keys. Space arrives here rather than as a typed
// key so it is mapped once.
func runeKey(r rune) (input.Key, bool) {
	switch r {
	case ' ':
		return input.KeyTogglePause, true
	case '=', '+':
		return input.KeyZoomIn, true
	case '-':
		return input.KeyZoomOut, true
	case '0':
		return input.KeyZoomReset, true
	}
	return "", false
}

// namedKey maps non printable keys.
func namedKey(name fyne.KeyName) (input.Key, bool) {
	switch name {
	case fyne.KeyF5:
		return input.KeyReset, true
	case fyne.KeyF11:
		return input.KeyToggleFullscreen, true
	}
	return "", false
}

func isControl(name fyne.KeyName) bool {
	return name == desktop.KeyControlLeft || name == desktop.KeyControlRight
}

func wheelEvent(deltaY float32, control bool) (input.Event, bool) {
	if deltaY == 0 {
		return input.Event{}, false
	}
	return input.Wheel(float64(deltaY), control), true
}
