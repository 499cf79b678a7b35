package display

import "math"

const (
	// WalkerScale divides the walker sheet size when drawn.
	WalkerScale = 4
	// WalkerStepsPerSecond is the walking cadence. One lap takes a minute of
	// displayed time.
	WalkerStepsPerSecond = 3
	// WalkerFrames is the number of frames side by side in the sheet.
	WalkerFrames = 2
)

// Walker is the draw command for the sprite that walks along the bottom of
// the window.
type Walker struct {
	Frame   int
	Flipped bool
	Rect    Rect
}

// Walk places the walker for the displayed value. The sprite enters at the
// left edge and leaves at the right once per minute. sheetWidth and
// sheetHeight are the size of the whole sheet.
func Walk(viewport Viewport, seconds float64, sheetWidth, sheetHeight int, flipped bool) Walker {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	lap := 60 * WalkerStepsPerSecond
	step := int(math.Mod(math.Floor(seconds*WalkerStepsPerSecond), float64(lap)))
	progress := float64(step) / float64(lap)

	frameWidth := sheetWidth / WalkerFrames
	drawnWidth := float64(frameWidth) / WalkerScale
	walkWidth := float64(viewport.Width) + drawnWidth
	height := sheetHeight / WalkerScale

	return Walker{
		Frame:   step % WalkerFrames,
		Flipped: flipped,
		Rect: Rect{
			X: int(math.Floor(walkWidth*progress - drawnWidth)),
			Y: viewport.Height - height,
			W: frameWidth / WalkerScale,
			H: height,
		},
	}
}
