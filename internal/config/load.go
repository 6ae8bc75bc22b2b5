package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// EnvConfig names an environment variable that points at a config file. It
// is consulted after -config and before the search path.
const EnvConfig = "MESHGRID_CONFIG"

// Load loads configuration with priority: defaults < file < flags, then
// validates the result.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		if err := LoadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	// CLI flags win over the file
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Source returns the file the config was read from, or "" for pure
// defaults.
func (c *Config) Source() string {
	return c.source
}

// findConfigFile returns the first existing file on the search path.
func findConfigFile() string {
	for _, path := range []string{"./meshgrid.yaml", DefaultPath()} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// DefaultPath is where Save writes.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "MeshGrid")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "MeshGrid")
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "meshgrid")
	}
	return filepath.Join(home, ".config", "meshgrid")
}

// LoadFile applies a YAML file on top of cfg. Keys absent from the file keep
// their current values. Unknown keys are an error.
func LoadFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("loading config from %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("loading config from %s: %w", path, err)
	}
	cfg.source = path
	return nil
}
