// Package session owns the clock state for one run of the program and
// performs the per-frame update.
package session

import (
	"time"

	"sowon/internal/core/display"
	"sowon/internal/core/input"
	"sowon/internal/core/model"
	"sowon/internal/core/timekeeper"
	"sowon/internal/logger"
	"sowon/internal/ui/animation"
)

// ExitReason explains why the frame loop stopped.
type ExitReason string

const (
	ExitNone              ExitReason = ""
	ExitClosed            ExitReason = "closed"
	ExitCountdownFinished ExitReason = "countdown_finished"
	ExitCanceled          ExitReason = "canceled"
)

// FrameInput is everything a frame consumes from the outside world.
type FrameInput struct {
	Delta    time.Duration
	Now      time.Time
	Viewport display.Viewport
	Events   []input.Event
}

// FrameOutput is what a frame asks the presenter to do.
type FrameOutput struct {
	Frame            display.Frame
	Paused           bool
	State            timekeeper.State
	ToggleFullscreen bool
	Exit             ExitReason
}

// Session bundles the time source, input controller and wiggle scheduler.
type Session struct {
	keeper     *timekeeper.TimeKeeper
	controller *input.Controller
	wiggle     *animation.Wiggle
	log        *logger.Logger

	walkerWidth  int
	walkerHeight int
}

// New creates a session from startup options.
func New(config model.Config, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Discard()
	}
	keeper := timekeeper.New(config)
	return &Session{
		keeper:     keeper,
		controller: input.NewController(keeper),
		wiggle:     animation.NewWiggle(animation.WiggleDuration),
		log:        log,
	}
}

// EnableWalker adds the walking sprite to every frame. width and height
// are the size of its whole sheet.
func (session *Session) EnableWalker(width, height int) {
	session.walkerWidth = width
	session.walkerHeight = height
}

// Keeper exposes the time source.
func (session *Session) Keeper() *timekeeper.TimeKeeper {
	return session.keeper
}

// Zoom returns the current user zoom.
func (session *Session) Zoom() float64 {
	return session.controller.Zoom()
}

// Phase returns the wiggle phase counter.
func (session *Session) Phase() uint64 {
	return session.wiggle.Phase()
}

// Frame drains input, advances time and the wiggle animation, then lays out
// the display for the given viewport.
func (session *Session) Frame(in FrameInput) FrameOutput {
	wasPaused := session.keeper.Paused()
	action := session.controller.Drain(in.Events)
	if action.Quit {
		return FrameOutput{Exit: ExitClosed, Paused: session.keeper.Paused()}
	}
	if paused := session.keeper.Paused(); paused != wasPaused {
		session.log.Debug("pause toggled: %s", session.keeper.State())
	}

	out := FrameOutput{ToggleFullscreen: action.ToggleFullscreen}
	if session.keeper.Advance(in.Delta, in.Now) {
		session.log.Info("countdown of %s finished", display.Split(session.keeper.Initial()))
		out.Exit = ExitCountdownFinished
	}
	session.wiggle.Advance(in.Delta)

	out.Frame = display.Layout(in.Viewport, session.controller.Zoom(), session.wiggle.Phase(), session.keeper.Shown())
	if session.walkerWidth > 0 && session.walkerHeight > 0 {
		walker := display.Walk(in.Viewport, session.keeper.Displayed(),
			session.walkerWidth, session.walkerHeight,
			session.keeper.Mode() == model.ModeCountdown)
		out.Frame.Walker = &walker
	}
	out.Paused = session.keeper.Paused()
	out.State = session.keeper.State()
	return out
}
