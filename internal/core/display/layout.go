// Package display computes where the eight glyph cells of the time display
// go inside a window of arbitrary size.
package display

import (
	"fmt"
	"math"
)

const (
	// GlyphWidth and GlyphHeight are the unscaled size of one cell.
	GlyphWidth  = 300 / 2
	GlyphHeight = 380 / 2
	// CellCount is the number of cells in the strip (HH:MM:SS).
	CellCount = 8
	// ColonGlyph is the atlas column of the colon sprite.
	ColonGlyph = 10
	// GlyphCount is the number of atlas columns.
	GlyphCount = 11
	// WiggleCount is the number of atlas rows.
	WiggleCount = 3

	StripWidth  = GlyphWidth * CellCount
	StripHeight = GlyphHeight
)

// wiggleOffsets staggers the animation across the strip. Colons reuse the
// offset of the hours digits so the ripple stays uneven.
var wiggleOffsets = [CellCount]uint64{0, 1, 0, 2, 3, 1, 4, 5}

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width  int
	Height int
}

// Rect is a destination rectangle in viewport coordinates.
type Rect struct {
	X, Y, W, H int
}

// Cell is one glyph draw command.
type Cell struct {
	Glyph  int
	Wiggle int
	Rect   Rect
}

// Frame is the result of a layout pass.
type Frame struct {
	FitScale float64
	PenX     int
	PenY     int
	Cells    [CellCount]Cell
	Title    string
	// Walker is nil unless the walking sprite is enabled.
	Walker *Walker
}

// Time is a displayed value broken into clock fields.
type Time struct {
	Hours   int
	Minutes int
	Seconds int
}

// Split converts seconds to whole display seconds, rounding up, and breaks the
// result into hours, minutes and seconds. Hours wrap at 100.
func Split(seconds float64) Time {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	if seconds > math.MaxInt32 {
		seconds = math.MaxInt32
	}
	total := int(math.Ceil(seconds))
	return Time{
		Hours:   total / 3600 % 100,
		Minutes: total / 60 % 60,
		Seconds: total % 60,
	}
}

// String formats the time as HH:MM:SS.
func (value Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", value.Hours, value.Minutes, value.Seconds)
}

// Glyphs returns the atlas columns for the eight cells, left to right.
func (value Time) Glyphs() [CellCount]int {
	return [CellCount]int{
		value.Hours / 10, value.Hours % 10, ColonGlyph,
		value.Minutes / 10, value.Minutes % 10, ColonGlyph,
		value.Seconds / 10, value.Seconds % 10,
	}
}

// FitScale returns the largest scale at which the strip fits the viewport
// without changing its aspect ratio.
func FitScale(viewport Viewport) float64 {
	if viewport.Width <= 0 || viewport.Height <= 0 {
		return 0
	}
	stripAspect := float64(StripWidth) / float64(StripHeight)
	viewportAspect := float64(viewport.Width) / float64(viewport.Height)
	if stripAspect > viewportAspect {
		return float64(viewport.Width) / float64(StripWidth)
	}
	return float64(viewport.Height) / float64(StripHeight)
}

// Layout computes the draw commands for the displayed value.
func Layout(viewport Viewport, zoom float64, phase uint64, seconds float64) Frame {
	fit := FitScale(viewport)
	cellWidth := int(math.Floor(GlyphWidth * zoom * fit))
	cellHeight := int(math.Floor(GlyphHeight * zoom * fit))
	if cellWidth < 0 || cellHeight < 0 {
		cellWidth, cellHeight = 0, 0
	}

	frame := Frame{
		FitScale: fit,
		PenX:     viewport.Width/2 - cellWidth*CellCount/2,
		PenY:     viewport.Height/2 - cellHeight/2,
	}

	value := Split(seconds)
	glyphs := value.Glyphs()
	x := frame.PenX
	for i := range frame.Cells {
		frame.Cells[i] = Cell{
			Glyph:  glyphs[i],
			Wiggle: int((phase + wiggleOffsets[i]) % WiggleCount),
			Rect:   Rect{X: x, Y: frame.PenY, W: cellWidth, H: cellHeight},
		}
		x += cellWidth
	}
	frame.Title = value.String()
	return frame
}
