// Package cli parses the sowon command line.
package cli

import (
	"errors"
	"fmt"
	"io"

	"sowon/internal/core/model"
	"sowon/internal/core/timeunit"
)

// ErrUsage is returned when the user asked for help.
var ErrUsage = errors.New("usage requested")

const usage = `Usage: sowon [clock] [-p] [-e] [-t] [DURATION]

  (no arguments)  stopwatch counting up from zero
  clock           show the wall-clock time
  DURATION        count down, e.g. 90, 45s, 1h30m, 0.5h
  -p              start paused
  -e              exit when the countdown reaches zero
  -t              render in the terminal instead of a window
  -h, --help      show this help

Keys: Space pause, = / - / 0 zoom, F5 reset, F11 fullscreen, Ctrl+wheel zoom
`

// PrintUsage writes the help text.
func PrintUsage(out io.Writer) {
	_, _ = fmt.Fprint(out, usage)
}

// ParseArgs converts command-line arguments, without the program name, to a
// startup configuration. Any token that is not a known flag is a countdown
// duration; the last one wins.
func ParseArgs(args []string) (model.Config, error) {
	config := model.Config{Mode: model.ModeAscending}

	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return config, ErrUsage
		case "-p":
			config.StartPaused = true
		case "-e":
			config.ExitOnZero = true
		case "-t":
			config.Terminal = true
		case "clock":
			config.Mode = model.ModeClock
		default:
			seconds, err := timeunit.Parse(arg)
			if err != nil {
				return config, fmt.Errorf("parse duration: %w", err)
			}
			config.Mode = model.ModeCountdown
			config.Initial = seconds
		}
	}

	return config, nil
}
