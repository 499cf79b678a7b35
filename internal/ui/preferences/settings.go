package preferences

import (
	"image/color"
	"time"

	"sowon/internal/logger"
)

// Settings defines user adjustable presentation options.
type Settings struct {
	FPS             int
	MainColor       color.NRGBA
	PauseColor      color.NRGBA
	BackgroundColor color.NRGBA
	Fullscreen      bool
	// Walker shows the penguin walking along the bottom edge.
	Walker bool
	// AtlasPath replaces the embedded glyph atlas when set.
	AtlasPath string
	LogLevel  logger.Level
}

// DefaultSettings returns default settings for sowon.
func DefaultSettings() Settings {
	return Settings{
		FPS:             60,
		MainColor:       color.NRGBA{R: 220, G: 220, B: 220, A: 255},
		PauseColor:      color.NRGBA{R: 220, G: 120, B: 120, A: 255},
		BackgroundColor: color.NRGBA{R: 24, G: 24, B: 24, A: 255},
		LogLevel:        logger.LevelNormal,
	}
}

// FrameInterval converts the FPS cap to a frame duration.
func (settings Settings) FrameInterval() time.Duration {
	if settings.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(settings.FPS)
}

// Tint returns the atlas colour for the given pause state.
func (settings Settings) Tint(paused bool) color.NRGBA {
	if paused {
		return settings.PauseColor
	}
	return settings.MainColor
}
