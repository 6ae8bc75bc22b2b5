package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging and frame stats")
	flagModel       = flag.String("model", "", "Model file (.glb or .gltf)")
	flagOverlay     = flag.Bool("overlay", false, "Show the debug overlay")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagSeed        = flag.String("seed", "", "Placement seed (64 hex characters)")
	flagColumns     = flag.Int("columns", 0, "Grid columns")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the -write-config target, or "".
func WriteConfigPath() string {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Overlay.ShowFPS = true
	}
	if *flagModel != "" {
		cfg.Model.Path = *flagModel
	}
	if *flagOverlay {
		cfg.Overlay.Enabled = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagSeed != "" {
		cfg.Placement.Seed = *flagSeed
	}
	if *flagColumns > 0 {
		cfg.Placement.Columns = *flagColumns
	}
}
