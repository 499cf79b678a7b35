package session

import (
	"context"
	"image/color"
	"time"

	"sowon/internal/core/timekeeper"
	"sowon/internal/logger"
)

// Clock reports the current time. It is injected so tests control frame
// deltas.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}

// RunnerConfig contains runtime options for Runner.
type RunnerConfig struct {
	FrameInterval time.Duration
	Clock         Clock
	// Tint maps the pause state to the atlas colour.
	Tint func(paused bool) color.NRGBA
	// OnState, when set, is called on the first frame and whenever the
	// clock state changes.
	OnState func(state timekeeper.State)
	Log     *logger.Logger
}

// Runner drives a Session against a Presenter at a fixed frame rate.
type Runner struct {
	session   *Session
	presenter Presenter
	config    RunnerConfig

	title     string
	tinted    bool
	tintState bool
	state     timekeeper.State
}

// NewRunner creates a Runner. Zero config fields get defaults.
func NewRunner(session *Session, presenter Presenter, config RunnerConfig) *Runner {
	if config.FrameInterval <= 0 {
		config.FrameInterval = time.Second / 60
	}
	if config.Clock == nil {
		config.Clock = SystemClock()
	}
	if config.Tint == nil {
		config.Tint = func(bool) color.NRGBA {
			return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		}
	}
	if config.Log == nil {
		config.Log = logger.Discard()
	}
	return &Runner{
		session:   session,
		presenter: presenter,
		config:    config,
	}
}

// Run executes frames until the window is closed, a countdown with
// exit-on-zero finishes, or ctx is done. Each frame is followed by a delay
// that caps the frame rate.
func (runner *Runner) Run(ctx context.Context) (ExitReason, error) {
	last := runner.config.Clock.Now()
	for {
		if err := ctx.Err(); err != nil {
			return ExitCanceled, err
		}

		start := runner.config.Clock.Now()
		reason := runner.step(start.Sub(last), start)
		last = start
		if reason != ExitNone {
			runner.config.Log.Debug("frame loop stopped: %s", reason)
			return reason, nil
		}

		elapsed := runner.config.Clock.Now().Sub(start)
		if !sleepWithContext(ctx, runner.config.FrameInterval-elapsed) {
			return ExitCanceled, ctx.Err()
		}
	}
}

func (runner *Runner) step(delta time.Duration, now time.Time) ExitReason {
	events := runner.presenter.PollEvents()
	viewport := runner.presenter.Size()
	out := runner.session.Frame(FrameInput{
		Delta:    delta,
		Now:      now,
		Viewport: viewport,
		Events:   events,
	})
	if out.Exit == ExitClosed {
		return out.Exit
	}

	if out.ToggleFullscreen {
		runner.presenter.ToggleFullscreen()
	}
	if !runner.tinted || runner.tintState != out.Paused {
		runner.presenter.SetTint(runner.config.Tint(out.Paused))
		runner.tinted = true
		runner.tintState = out.Paused
	}
	if out.State != runner.state {
		runner.state = out.State
		if runner.config.OnState != nil {
			runner.config.OnState(out.State)
		}
	}
	runner.presenter.Draw(out.Frame)
	if out.Frame.Title != runner.title {
		runner.presenter.SetTitle(out.Frame.Title)
		runner.title = out.Frame.Title
	}
	runner.presenter.Present()
	return out.Exit
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	if duration <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
