package terminal

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"sowon/internal/core/input"
)

type keyMap struct {
	Pause     key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	ZoomReset key.Binding
	Reset     key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Pause:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
	ZoomIn:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
	ZoomOut:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
	ZoomReset: key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset zoom")),
	Reset:     key.NewBinding(key.WithKeys("f5"), key.WithHelp("f5", "restart countdown")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func keyEvent(msg tea.KeyMsg) (input.Event, bool) {
	switch {
	case key.Matches(msg, keys.Pause):
		return input.Press(input.KeyTogglePause), true
	case key.Matches(msg, keys.ZoomIn):
		return input.Press(input.KeyZoomIn), true
	case key.Matches(msg, keys.ZoomOut):
		return input.Press(input.KeyZoomOut), true
	case key.Matches(msg, keys.ZoomReset):
		return input.Press(input.KeyZoomReset), true
	case key.Matches(msg, keys.Reset):
		return input.Press(input.KeyReset), true
	case key.Matches(msg, keys.Quit):
		return input.Press(input.KeyQuit), true
	}
	return input.Event{}, false
}
