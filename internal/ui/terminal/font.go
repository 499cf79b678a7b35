package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sowon/internal/core/display"
)

const fontHeight = 5

// font holds one block glyph per atlas column: digits 0-9, then the colon.
var font = [display.GlyphCount][fontHeight]string{
	{"█████", "█   █", "█   █", "█   █", "█████"},
	{"  █  ", " ██  ", "  █  ", "  █  ", " ███ "},
	{"█████", "    █", "█████", "█    ", "█████"},
	{"█████", "    █", " ████", "    █", "█████"},
	{"█   █", "█   █", "█████", "    █", "    █"},
	{"█████", "█    ", "█████", "    █", "█████"},
	{"█████", "█    ", "█████", "█   █", "█████"},
	{"█████", "    █", "   █ ", "  █  ", "  █  "},
	{"█████", "█   █", "█████", "█   █", "█████"},
	{"█████", "█   █", "█████", "    █", "█████"},
	{"   ", " █ ", "   ", " █ ", "   "},
}

// stripHeight is the rendered height including room for the wiggle offset.
const stripHeight = fontHeight + display.WiggleCount - 1

// renderCell draws one glyph shifted down by its wiggle row.
func renderCell(cell display.Cell) string {
	glyph := font[cell.Glyph%display.GlyphCount]
	width := lipgloss.Width(glyph[0])
	blank := strings.Repeat(" ", width)
	wiggle := cell.Wiggle % display.WiggleCount

	lines := make([]string, 0, stripHeight)
	for i := 0; i < wiggle; i++ {
		lines = append(lines, blank)
	}
	lines = append(lines, glyph[:]...)
	for len(lines) < stripHeight {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

// renderStrip joins the eight cells with a one column gap.
func renderStrip(frame display.Frame) string {
	parts := make([]string, 0, display.CellCount*2-1)
	gap := strings.TrimSuffix(strings.Repeat(" \n", stripHeight), "\n")
	for i, cell := range frame.Cells {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, renderCell(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
