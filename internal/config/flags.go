package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagSaveConfig = flag.String("save-config", "", "Write the effective config to this path and exit")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagFont       = flag.String("font", "", "Font source: URL, file path, or builtin:goregular")
	flagSnapshot   = flag.String("snapshot", "", "Render one frame on the CPU to this PNG path and exit (\"auto\" names it under snapshot.dir)")
	flagKeys       = flag.String("keys", "", "Key presses applied before a snapshot, e.g. \"wwd\"")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveConfigPath returns the --save-config target, if any.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// SnapshotPath returns the --snapshot output path, if any.
func SnapshotPath() string {
	return *flagSnapshot
}

// KeySequence returns the --keys sequence.
func KeySequence() string {
	return *flagKeys
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagFont != "" {
		cfg.Font.Source = *flagFont
	}
}
