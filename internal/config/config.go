// Package config handles demo configuration loading and management.
package config

import "time"

// DefaultFontSource is the typeface description the demo loads at startup.
const DefaultFontSource = "https://threejs.org/examples/fonts/helvetiker_regular.typeface.json"

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Font     FontConfig     `yaml:"font"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// FontConfig controls where the glyph outlines come from.
// Source is an http(s) URL, a local path, or "builtin:goregular".
type FontConfig struct {
	Source  string        `yaml:"source"`
	Timeout time.Duration `yaml:"timeout"`
}

// SnapshotConfig holds headless capture settings.
type SnapshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Font: FontConfig{
			Source:  DefaultFontSource,
			Timeout: 10 * time.Second,
		},
		Snapshot: SnapshotConfig{
			Dir:    "screenshots",
			Prefix: "glowtext",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
