package storage

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"sowon/internal/logger"
	"sowon/internal/platform"
	"sowon/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

const (
	minFPS = 1
	maxFPS = 240
)

type yamlSettings struct {
	FPS             int    `yaml:"fps"`
	MainColor       []int  `yaml:"main_color"`
	PauseColor      []int  `yaml:"pause_color"`
	BackgroundColor []int  `yaml:"background_color"`
	Fullscreen      *bool  `yaml:"fullscreen"`
	Walker          *bool  `yaml:"walker"`
	Atlas           string `yaml:"atlas"`
	LogLevel        string `yaml:"log_level"`
}

// LoadSettings reads user preferences from the YAML file in the user config
// directory. If the file does not exist, default settings are returned.
func LoadSettings(appName string, log *logger.Logger) (preferences.Settings, error) {
	configDir, err := platform.NewService().GetConfigDir()
	if err != nil {
		return preferences.DefaultSettings(), fmt.Errorf("resolve settings path: %w", err)
	}
	return LoadSettingsFile(filepath.Join(configDir, appName, settingsFileName), log)
}

// LoadSettingsFile reads user preferences from path. Fields with invalid
// values keep their defaults and are reported as warnings.
func LoadSettingsFile(path string, log *logger.Logger) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData, filepath.Dir(path), log)
	return settings, nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings, baseDir string, log *logger.Logger) {
	if fileData.FPS != 0 {
		if fileData.FPS >= minFPS && fileData.FPS <= maxFPS {
			settings.FPS = fileData.FPS
		} else {
			log.Warn("settings: fps %d outside %d..%d, using %d", fileData.FPS, minFPS, maxFPS, settings.FPS)
		}
	}

	applyColor(&settings.MainColor, fileData.MainColor, "main_color", log)
	applyColor(&settings.PauseColor, fileData.PauseColor, "pause_color", log)
	applyColor(&settings.BackgroundColor, fileData.BackgroundColor, "background_color", log)

	if fileData.Fullscreen != nil {
		settings.Fullscreen = *fileData.Fullscreen
	}
	if fileData.Walker != nil {
		settings.Walker = *fileData.Walker
	}

	if fileData.Atlas != "" {
		atlas := fileData.Atlas
		if !filepath.IsAbs(atlas) {
			atlas = filepath.Join(baseDir, atlas)
		}
		settings.AtlasPath = atlas
	}

	if level, ok := logger.ParseLevel(fileData.LogLevel); ok {
		settings.LogLevel = level
	} else {
		log.Warn("settings: unknown log_level %q", fileData.LogLevel)
	}
}

func applyColor(target *color.NRGBA, value []int, field string, log *logger.Logger) {
	if value == nil {
		return
	}
	parsed, err := parseColor(value)
	if err != nil {
		log.Warn("settings: %s: %v", field, err)
		return
	}
	*target = parsed
}

func parseColor(value []int) (color.NRGBA, error) {
	if len(value) != 3 {
		return color.NRGBA{}, fmt.Errorf("expected [r, g, b], got %d components", len(value))
	}
	for _, component := range value {
		if component < 0 || component > 255 {
			return color.NRGBA{}, fmt.Errorf("component %d outside 0..255", component)
		}
	}
	return color.NRGBA{R: uint8(value[0]), G: uint8(value[1]), B: uint8(value[2]), A: 255}, nil
}
