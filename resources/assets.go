package resources

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
	"os"

	"sowon/internal/ui/atlas"
)

const (
	digitsFileName = "digits.png"
	walkerFileName = "penger.png"
)

//go:embed digits.png
var digitsPNG []byte

//go:embed penger.png
var walkerPNG []byte

// LoadWalker decodes the embedded walking penguin sheet.
func LoadWalker() (atlas.WalkerSprites, image.Rectangle, error) {
	img, err := png.Decode(bytes.NewReader(walkerPNG))
	if err != nil {
		return atlas.WalkerSprites{}, image.Rectangle{}, fmt.Errorf("load resource %s: %w", walkerFileName, err)
	}
	return atlas.SliceWalker(img), img.Bounds(), nil
}

// LoadAtlas decodes the glyph atlas from path, or the embedded sheet when
// path is empty.
func LoadAtlas(path string) (*atlas.Atlas, error) {
	if path == "" {
		sheet, err := atlas.DecodeBytes(digitsPNG)
		if err != nil {
			return nil, fmt.Errorf("load resource %s: %w", digitsFileName, err)
		}
		return sheet, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open atlas: %w", err)
	}
	defer file.Close()

	sheet, err := atlas.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}
	return sheet, nil
}
