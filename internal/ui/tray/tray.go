package tray

import (
	"fmt"

	"fyne.io/fyne/v2"

	"sowon/internal/core/input"
	"sowon/internal/core/model"
	"sowon/internal/core/timekeeper"
)

const menuTitle = "sowon"

// MenuHost is the part of desktop.App the tray needs.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Sink receives the input events produced by menu items.
type Sink interface {
	Push(event input.Event)
}

// Manager handles system tray state. Menu items feed the same event queue
// as the keyboard, so the frame loop stays the only writer of clock state.
type Manager struct {
	host       MenuHost
	sink       Sink
	statusItem *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	resetItem  *fyne.MenuItem
	screenItem *fyne.MenuItem
	quitItem   *fyne.MenuItem
	mode       model.Mode
	state      timekeeper.State
}

// New creates a tray manager and installs its menu.
func New(host MenuHost, sink Sink, mode model.Mode) *Manager {
	manager := &Manager{
		host:  host,
		sink:  sink,
		mode:  mode,
		state: timekeeper.StateRunning,
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.statusItem.Label = manager.statusLabel()

	manager.pauseItem = fyne.NewMenuItem("Pause", manager.press(input.KeyTogglePause))
	manager.resetItem = fyne.NewMenuItem("Reset", manager.press(input.KeyReset))
	manager.resetItem.Disabled = mode != model.ModeCountdown
	manager.screenItem = fyne.NewMenuItem("Toggle fullscreen", manager.press(input.KeyToggleFullscreen))
	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		manager.sink.Push(input.Close())
	})
	manager.quitItem.IsQuit = true

	manager.refreshMenu()
	return manager
}

func (manager *Manager) press(key input.Key) func() {
	return func() {
		manager.sink.Push(input.Press(key))
	}
}

// SetState updates the pause label and status line. Call it on the UI
// thread.
func (manager *Manager) SetState(state timekeeper.State) {
	if state == manager.state {
		return
	}
	manager.state = state
	if state == timekeeper.StatePaused {
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Pause"
	}
	manager.statusItem.Label = manager.statusLabel()
	manager.refreshMenu()
}

func (manager *Manager) statusLabel() string {
	return fmt.Sprintf("%s: %s", manager.mode, manager.state)
}

func (manager *Manager) refreshMenu() {
	if manager.host == nil {
		return
	}
	manager.host.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.pauseItem,
		manager.resetItem,
		manager.screenItem,
		fyne.NewMenuItemSeparator(),
		manager.quitItem,
	))
}
