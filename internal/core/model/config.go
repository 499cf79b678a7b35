package model

// Mode selects what the clock displays.
type Mode string

const (
	ModeAscending Mode = "ascending"
	ModeCountdown Mode = "countdown"
	ModeClock     Mode = "clock"
)

// Config contains the startup options parsed from the command line.
type Config struct {
	Mode Mode
	// Initial is the countdown starting value in seconds.
	Initial     float64
	StartPaused bool
	ExitOnZero  bool
	Terminal    bool
}
