// Package terminal presents the clock in a terminal with Bubble Tea.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sowon/internal/core/display"
	"sowon/internal/core/input"
	"sowon/internal/logger"
	"sowon/internal/session"
	"sowon/internal/ui/preferences"
)

const appTitle = "sowon"

type frameMsg time.Time

// Model is the Bubble Tea model wrapping a session.
type Model struct {
	session  *session.Session
	settings preferences.Settings
	log      *logger.Logger

	width   int
	height  int
	last    time.Time
	pending []input.Event
	out     session.FrameOutput
	title   string
	reason  session.ExitReason
}

// NewModel creates a terminal model.
func NewModel(clockSession *session.Session, settings preferences.Settings, log *logger.Logger) Model {
	if log == nil {
		log = logger.Discard()
	}
	return Model{
		session:  clockSession,
		settings: settings,
		log:      log,
	}
}

// Reason reports why the program stopped.
func (m Model) Reason() session.ExitReason {
	return m.reason
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.settings.FrameInterval(), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(appTitle), m.tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if event, ok := keyEvent(msg); ok {
			m.pending = append(m.pending, event)
		}
		return m, nil

	case tea.MouseMsg:
		if event, ok := mouseEvent(msg); ok {
			m.pending = append(m.pending, event)
		}
		return m, nil

	case frameMsg:
		return m.frame(time.Time(msg))
	}
	return m, nil
}

func (m Model) frame(now time.Time) (tea.Model, tea.Cmd) {
	var delta time.Duration
	if !m.last.IsZero() {
		delta = now.Sub(m.last)
	}
	m.last = now

	m.out = m.session.Frame(session.FrameInput{
		Delta:    delta,
		Now:      now,
		Viewport: display.Viewport{Width: m.width, Height: m.height},
		Events:   m.pending,
	})
	m.pending = nil

	if m.out.Exit != session.ExitNone {
		m.reason = m.out.Exit
		m.log.Debug("terminal loop stopped: %s", m.reason)
		return m, tea.Quit
	}

	cmds := []tea.Cmd{m.tick()}
	if m.out.Frame.Title != m.title {
		m.title = m.out.Frame.Title
		cmds = append(cmds, tea.SetWindowTitle(fmt.Sprintf("%s - %s", m.title, appTitle)))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.reason != session.ExitNone || m.title == "" {
		return ""
	}
	background := hexColor(m.settings.BackgroundColor)
	style := lipgloss.NewStyle().
		Foreground(hexColor(m.settings.Tint(m.out.Paused))).
		Background(background)
	strip := style.Render(renderStrip(m.out.Frame))
	if m.width <= 0 || m.height <= 0 {
		return strip
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, strip,
		lipgloss.WithWhitespaceBackground(background))
}

func mouseEvent(msg tea.MouseMsg) (input.Event, bool) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return input.Wheel(1, msg.Ctrl), true
	case tea.MouseButtonWheelDown:
		return input.Wheel(-1, msg.Ctrl), true
	}
	return input.Event{}, false
}

func hexColor(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// Run drives the session in the terminal until it exits or ctx is done.
func Run(ctx context.Context, clockSession *session.Session, settings preferences.Settings, log *logger.Logger) (session.ExitReason, error) {
	program := tea.NewProgram(NewModel(clockSession, settings, log),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return session.ExitCanceled, ctx.Err()
		}
		return session.ExitNone, fmt.Errorf("run terminal: %w", err)
	}
	model, ok := final.(Model)
	if !ok {
		return session.ExitNone, nil
	}
	return model.Reason(), nil
}
