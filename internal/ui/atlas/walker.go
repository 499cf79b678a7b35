package atlas

import (
	"image"

	"golang.org/x/image/draw"

	"sowon/internal/core/display"
)

// WalkerSprites holds the walker frames indexed as [flipped][frame].
type WalkerSprites [2][display.WalkerFrames]*image.NRGBA

// SliceWalker cuts a sheet of display.WalkerFrames frames laid side by side
// and adds a horizontally mirrored copy of each.
func SliceWalker(sheet image.Image) WalkerSprites {
	var sprites WalkerSprites
	bounds := sheet.Bounds()
	frameWidth := bounds.Dx() / display.WalkerFrames
	for frame := 0; frame < display.WalkerFrames; frame++ {
		src := image.Rect(bounds.Min.X+frame*frameWidth, bounds.Min.Y, bounds.Min.X+(frame+1)*frameWidth, bounds.Max.Y)
		plain := image.NewNRGBA(image.Rect(0, 0, frameWidth, bounds.Dy()))
		draw.Draw(plain, plain.Bounds(), sheet, src.Min, draw.Src)
		sprites[0][frame] = plain
		sprites[1][frame] = mirror(plain)
	}
	return sprites
}

func mirror(img *image.NRGBA) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	width := bounds.Dx()
	for y := 0; y < bounds.Dy(); y++ {
		row := y * img.Stride
		for x := 0; x < width; x++ {
			copy(out.Pix[row+(width-1-x)*4:row+(width-x)*4], img.Pix[row+x*4:row+x*4+4])
		}
	}
	return out
}
