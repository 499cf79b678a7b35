package animation

import (
	"time"

	"sowon/internal/core/display"
)

const (
	// WiggleCount is the number of animation rows in the glyph atlas.
	WiggleCount = display.WiggleCount
	// WiggleDuration is how long each wiggle frame stays on screen.
	WiggleDuration = 400 * time.Millisecond / WiggleCount
)

// Wiggle advances an unbounded phase counter on a fixed cadence that does not
// depend on the frame rate. Consumers apply the modulo.
type Wiggle struct {
	period   time.Duration
	phase    uint64
	cooldown time.Duration
}

// NewWiggle creates a scheduler with the given period. A non-positive period
// falls back to WiggleDuration.
func NewWiggle(period time.Duration) *Wiggle {
	if period <= 0 {
		period = WiggleDuration
	}
	return &Wiggle{
		period:   period,
		cooldown: period,
	}
}

// Advance consumes elapsed time. Overshoot carries into the next cooldown.
func (wiggle *Wiggle) Advance(delta time.Duration) {
	if delta <= 0 {
		return
	}
	wiggle.cooldown -= delta
	for wiggle.cooldown <= 0 {
		wiggle.phase++
		wiggle.cooldown += wiggle.period
	}
}

// Phase returns the current phase counter.
func (wiggle *Wiggle) Phase() uint64 {
	return wiggle.phase
}
