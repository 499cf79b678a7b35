package timekeeper

import (
	"math"
	"time"

	"sowon/internal/core/model"
)

// TimeKeeper owns the displayed time value and advances it once per frame
// according to the configured mode. It is not safe for concurrent use; the
// frame loop is its only caller.
type TimeKeeper struct {
	config    model.Config
	displayed float64
	paused    bool
	finished  bool
	notified  bool
	sampled   bool
}

// New creates a TimeKeeper from startup options.
func New(config model.Config) *TimeKeeper {
	if config.Mode == "" {
		config.Mode = model.ModeAscending
	}
	if config.Initial < 0 {
		config.Initial = 0
	}

	keeper := &TimeKeeper{
		config: config,
		paused: config.StartPaused,
	}
	if config.Mode == model.ModeCountdown {
		keeper.displayed = config.Initial
	}
	return keeper
}

// Mode returns the immutable display mode.
func (keeper *TimeKeeper) Mode() model.Mode {
	return keeper.config.Mode
}

// Displayed returns the current value in seconds. It is never negative.
func (keeper *TimeKeeper) Displayed() float64 {
	return keeper.displayed
}

// Shown returns the value the digits display. Clock mode drops the
// sub-second carry so the digits always match the wall clock; the carry is
// only for smooth sub-second consumers.
func (keeper *TimeKeeper) Shown() float64 {
	if keeper.config.Mode == model.ModeClock {
		return math.Floor(keeper.displayed)
	}
	return keeper.displayed
}

// Initial returns the countdown starting value.
func (keeper *TimeKeeper) Initial() float64 {
	return keeper.config.Initial
}

// Paused reports whether the pause flag is set.
func (keeper *TimeKeeper) Paused() bool {
	return keeper.paused
}

// State summarizes the keeper for observers.
func (keeper *TimeKeeper) State() State {
	if keeper.finished {
		return StateFinished
	}
	if keeper.paused {
		return StatePaused
	}
	return StateRunning
}

// TogglePause flips the pause flag. In clock mode this only affects the tint.
func (keeper *TimeKeeper) TogglePause() {
	keeper.paused = !keeper.paused
}

// Reset restores the countdown to its initial value and the pause flag to the
// startup value. It does nothing in ascending and clock modes.
func (keeper *TimeKeeper) Reset() {
	if keeper.config.Mode != model.ModeCountdown {
		return
	}
	keeper.displayed = keeper.config.Initial
	keeper.paused = keeper.config.StartPaused
	keeper.finished = keeper.displayed <= 0
	keeper.notified = false
}

// Advance moves the displayed value forward by delta. now is only consulted in
// clock mode. It returns true exactly once, on the tick a countdown with
// exit-on-zero reaches zero.
func (keeper *TimeKeeper) Advance(delta time.Duration, now time.Time) bool {
	if delta < 0 {
		delta = 0
	}
	dt := delta.Seconds()

	switch keeper.config.Mode {
	case model.ModeClock:
		keeper.sampleClock(dt, now)
		return false
	case model.ModeCountdown:
		if keeper.paused {
			return false
		}
		return keeper.advanceCountdown(dt)
	default:
		if keeper.paused {
			return false
		}
		keeper.displayed += dt
		return false
	}
}

func (keeper *TimeKeeper) advanceCountdown(dt float64) bool {
	keeper.displayed -= dt
	if keeper.displayed > 0 {
		return false
	}
	keeper.displayed = 0
	keeper.finished = true
	if !keeper.config.ExitOnZero || keeper.notified {
		return false
	}
	keeper.notified = true
	return true
}

// sampleClock reads the wall clock. While the wall-clock second has not
// changed, sub-second progress is carried forward from the previous frame so
// the value stays continuous; it never runs ahead into the next second.
func (keeper *TimeKeeper) sampleClock(dt float64, now time.Time) {
	wall := float64(SecondsWithinDay(now))
	previous := keeper.displayed
	keeper.displayed = wall
	if !keeper.sampled {
		keeper.sampled = true
		return
	}
	if math.Floor(previous) != wall {
		return
	}
	carried := previous + dt
	if math.Floor(carried) == wall {
		keeper.displayed = carried
	} else {
		keeper.displayed = previous
	}
}

// SecondsWithinDay returns hour*3600 + minute*60 + second of t in its location.
func SecondsWithinDay(t time.Time) int {
	hour, minute, second := t.Clock()
	return hour*3600 + minute*60 + second
}
