package storage

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sowon/internal/logger"
	"sowon/internal/ui/preferences"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadSettingsFileMissing(t *testing.T) {
	settings, err := LoadSettingsFile(filepath.Join(t.TempDir(), "nope.yaml"), logger.Discard())
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestLoadSettingsFileOverrides(t *testing.T) {
	path := writeSettings(t, `
fps: 30
main_color: [255, 255, 255]
background_color: [0, 0, 0]
fullscreen: true
walker: true
atlas: sprites/digits.png
log_level: verbose
`)

	settings, err := LoadSettingsFile(path, logger.Discard())
	require.NoError(t, err)

	assert.Equal(t, 30, settings.FPS)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, settings.MainColor)
	assert.Equal(t, preferences.DefaultSettings().PauseColor, settings.PauseColor)
	assert.Equal(t, color.NRGBA{A: 255}, settings.BackgroundColor)
	assert.True(t, settings.Fullscreen)
	assert.True(t, settings.Walker)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "sprites", "digits.png"), settings.AtlasPath)
	assert.Equal(t, logger.LevelVerbose, settings.LogLevel)
}

func TestLoadSettingsFileInvalidFieldsKeepDefaults(t *testing.T) {
	path := writeSettings(t, `
fps: 1000
pause_color: [300, 0, 0]
main_color: [1, 2]
log_level: shouting
`)

	var out bytes.Buffer
	settings, err := LoadSettingsFile(path, logger.New(logger.LevelNormal, &out))
	require.NoError(t, err)

	defaults := preferences.DefaultSettings()
	assert.Equal(t, defaults, settings)
	assert.Contains(t, out.String(), "fps 1000")
	assert.Contains(t, out.String(), "pause_color")
	assert.Contains(t, out.String(), "main_color")
	assert.Contains(t, out.String(), "log_level")
}

func TestLoadSettingsFileMalformed(t *testing.T) {
	path := writeSettings(t, "fps: [not, a, number")
	settings, err := LoadSettingsFile(path, logger.Discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings yaml")
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestLoadSettingsUsesConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)

	appDir := filepath.Join(dir, "sowon")
	require.NoError(t, os.MkdirAll(appDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, settingsFileName), []byte("fps: 24\n"), 0o644))

	settings, err := LoadSettings("sowon", logger.Discard())
	require.NoError(t, err)
	if settings.FPS != 24 {
		t.Skip("user config dir is not redirectable on this platform")
	}
	assert.Equal(t, 24, settings.FPS)
}
