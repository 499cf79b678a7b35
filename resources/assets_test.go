package resources

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sowon/internal/core/display"
	"sowon/internal/ui/atlas"
)

func TestEmbeddedAtlas(t *testing.T) {
	sheet, err := LoadAtlas("")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, atlas.Width, atlas.Height), sheet.Bounds())

	// Every glyph has some opaque pixels in every wiggle row.
	for wiggle := 0; wiggle < display.WiggleCount; wiggle++ {
		for glyph := 0; glyph < display.GlyphCount; glyph++ {
			assert.True(t, hasInk(sheet.Cell(glyph, wiggle)), "glyph %d wiggle %d", glyph, wiggle)
		}
	}
}

func hasInk(img image.Image) bool {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA).A > 0 {
				return true
			}
		}
	}
	return false
}

func TestLoadAtlasFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digits.png")
	require.NoError(t, os.WriteFile(path, digitsPNG, 0o644))

	sheet, err := LoadAtlas(path)
	require.NoError(t, err)
	assert.Equal(t, atlas.Width, sheet.Bounds().Dx())
}

func TestLoadAtlasErrors(t *testing.T) {
	_, err := LoadAtlas(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(broken, []byte("garbage"), 0o644))
	_, err = LoadAtlas(broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode atlas")
}

func TestLoadWalker(t *testing.T) {
	sprites, bounds, err := LoadWalker()
	require.NoError(t, err)
	assert.Equal(t, 0, bounds.Dx()%display.WalkerFrames)
	for flipped := range sprites {
		for frame, sprite := range sprites[flipped] {
			require.NotNil(t, sprite)
			assert.Equal(t, bounds.Dx()/display.WalkerFrames, sprite.Bounds().Dx())
			assert.True(t, hasInk(sprite), "frame %d flipped %d", frame, flipped)
		}
	}
}
