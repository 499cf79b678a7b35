// Package atlas slices the glyph sprite sheet into tinted cell images.
//
// The sheet is a grid of display.GlyphCount columns (digits 0-9, colon) by
// display.WiggleCount rows (animation frames), each cell GlyphWidth x
// GlyphHeight pixels.
package atlas

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"sowon/internal/core/display"
)

const (
	// Width and Height are the expected sheet size in pixels.
	Width  = display.GlyphWidth * display.GlyphCount
	Height = display.GlyphHeight * display.WiggleCount
)

// ErrPixelCount indicates packed pixel data does not match the dimensions.
var ErrPixelCount = errors.New("pixel count does not match dimensions")

// Atlas is a normalized sprite sheet.
type Atlas struct {
	sheet *image.NRGBA
}

// Decode reads a PNG sprite sheet.
func Decode(reader io.Reader) (*Atlas, error) {
	img, err := png.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("decode atlas: %w", err)
	}
	return New(img), nil
}

// DecodeBytes reads a PNG sprite sheet from memory.
func DecodeBytes(data []byte) (*Atlas, error) {
	return Decode(bytes.NewReader(data))
}

// New wraps an image as an atlas. Images that are not Width x Height are
// rescaled to fit the grid.
func New(img image.Image) *Atlas {
	sheet := image.NewNRGBA(image.Rect(0, 0, Width, Height))
	bounds := img.Bounds()
	if bounds.Dx() == Width && bounds.Dy() == Height {
		draw.Draw(sheet, sheet.Bounds(), img, bounds.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(sheet, sheet.Bounds(), img, bounds, draw.Src, nil)
	}
	return &Atlas{sheet: sheet}
}

// Bounds returns the sheet rectangle.
func (atlas *Atlas) Bounds() image.Rectangle {
	return atlas.sheet.Bounds()
}

// SourceRect returns the sheet rectangle of a glyph in a wiggle row.
func SourceRect(glyph, wiggle int) image.Rectangle {
	x := glyph * display.GlyphWidth
	y := wiggle * display.GlyphHeight
	return image.Rect(x, y, x+display.GlyphWidth, y+display.GlyphHeight)
}

// Tinted returns a copy of the sheet with every pixel multiplied by tint,
// the way a texture colour modulation works. Alpha is left untouched.
func (atlas *Atlas) Tinted(tint color.NRGBA) *Atlas {
	src := atlas.sheet
	out := image.NewNRGBA(src.Bounds())
	for i := 0; i+3 < len(src.Pix); i += 4 {
		out.Pix[i] = modulate(src.Pix[i], tint.R)
		out.Pix[i+1] = modulate(src.Pix[i+1], tint.G)
		out.Pix[i+2] = modulate(src.Pix[i+2], tint.B)
		out.Pix[i+3] = src.Pix[i+3]
	}
	return &Atlas{sheet: out}
}

func modulate(value, factor uint8) uint8 {
	return uint8((uint16(value)*uint16(factor) + 127) / 255)
}

// Cell returns the image for one glyph and wiggle row. Out of range indices
// are wrapped into the grid.
func (atlas *Atlas) Cell(glyph, wiggle int) image.Image {
	glyph = wrap(glyph, display.GlyphCount)
	wiggle = wrap(wiggle, display.WiggleCount)
	return atlas.sheet.SubImage(SourceRect(glyph, wiggle))
}

// Cells returns every cell indexed as [wiggle][glyph].
func (atlas *Atlas) Cells() [display.WiggleCount][display.GlyphCount]image.Image {
	var cells [display.WiggleCount][display.GlyphCount]image.Image
	for wiggle := range cells {
		for glyph := range cells[wiggle] {
			cells[wiggle][glyph] = atlas.Cell(glyph, wiggle)
		}
	}
	return cells
}

func wrap(value, count int) int {
	value %= count
	if value < 0 {
		value += count
	}
	return value
}

// Pack flattens an image into 32-bit pixels with red in the low byte and
// alpha in the high byte, row by row.
func Pack(img image.Image) []uint32 {
	bounds := img.Bounds()
	pixels := make([]uint32, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pixels = append(pixels, uint32(c.R)|uint32(c.G)<<8|uint32(c.B)<<16|uint32(c.A)<<24)
		}
	}
	return pixels
}

// Unpack is the inverse of Pack.
func Unpack(pixels []uint32, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrPixelCount, len(pixels), width, height)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, pixel := range pixels {
		img.Pix[i*4] = uint8(pixel)
		img.Pix[i*4+1] = uint8(pixel >> 8)
		img.Pix[i*4+2] = uint8(pixel >> 16)
		img.Pix[i*4+3] = uint8(pixel >> 24)
	}
	return img, nil
}
