// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/Faultbox/meshgrid/internal/scatter"
	"github.com/Faultbox/meshgrid/pkg/math"
)

// Config holds all viewer settings.
type Config struct {
	Model     ModelConfig     `yaml:"model"`
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Camera    CameraConfig    `yaml:"camera"`
	Lighting  LightingConfig  `yaml:"lighting"`
	Placement PlacementConfig `yaml:"placement"`
	Rotation  RotationConfig  `yaml:"rotation"`
	Overlay   OverlayConfig   `yaml:"overlay"`
	Logging   LoggingConfig   `yaml:"logging"`

	source string
}

// ModelConfig selects the model file.
type ModelConfig struct {
	Path string `yaml:"path"` // .glb or .gltf
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	Samples      int           `yaml:"samples"`        // MSAA samples, 0 disables
	MaxFrameStep time.Duration `yaml:"max_frame_step"` // longest simulated step per frame
}

// CameraConfig places the fixed camera.
type CameraConfig struct {
	Position   [3]float32 `yaml:"position"`
	Target     [3]float32 `yaml:"target"`
	FOVDegrees float32    `yaml:"fov_degrees"`
}

// LightingConfig holds scene lighting.
type LightingConfig struct {
	AmbientBrightness float32 `yaml:"ambient_brightness"`
	SunLongitude      float32 `yaml:"sun_longitude"` // degrees around Y
	SunLatitude       float32 `yaml:"sun_latitude"`  // degrees above the horizon
}

// PlacementConfig controls the instance grid and the orientation seed.
type PlacementConfig struct {
	Columns int        `yaml:"columns"`
	Offset  [3]float32 `yaml:"offset"`
	Seed    string     `yaml:"seed"` // 64 hex characters
}

// RotationConfig holds the spin rates in radians per second.
type RotationConfig struct {
	RateX float32 `yaml:"rate_x"`
	RateY float32 `yaml:"rate_y"`
}

// OverlayConfig holds debug overlay settings.
type OverlayConfig struct {
	Enabled bool   `yaml:"enabled"`
	Title   string `yaml:"title"`
	Label   string `yaml:"label"`
	ShowFPS bool   `yaml:"show_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ZeroSeed is the default placement seed.
const ZeroSeed = "0000000000000000000000000000000000000000000000000000000000000000"

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			Path: "models/iroha.glb",
		},
		Graphics: GraphicsConfig{
			Width:        1280,
			Height:       720,
			Samples:      4,
			MaxFrameStep: 100 * time.Millisecond,
		},
		Camera: CameraConfig{
			Position:   [3]float32{-2, 2.5, 5},
			Target:     [3]float32{0, 1, 0},
			FOVDegrees: 45,
		},
		Lighting: LightingConfig{
			AmbientBrightness: 750,
			SunLongitude:      -30,
			SunLatitude:       50,
		},
		Placement: PlacementConfig{
			Columns: 10,
			Offset:  [3]float32{3, 1, 0},
			Seed:    ZeroSeed,
		},
		Rotation: RotationConfig{
			RateX: 1,
			RateY: 1,
		},
		Overlay: OverlayConfig{
			Enabled: false,
			Title:   "Hello",
			Label:   "world",
			ShowFPS: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Model.Path == "" {
		errs = append(errs, errors.New("model.path is empty"))
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.Samples < 0 || c.Graphics.Samples > 16 {
		errs = append(errs, fmt.Errorf("graphics.samples %d out of range [0, 16]", c.Graphics.Samples))
	}
	if c.Graphics.MaxFrameStep <= 0 {
		errs = append(errs, fmt.Errorf("graphics.max_frame_step %v must be positive", c.Graphics.MaxFrameStep))
	}
	if c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov_degrees %v out of range (0, 180)", c.Camera.FOVDegrees))
	}
	if c.Camera.Position == c.Camera.Target {
		errs = append(errs, errors.New("camera.position equals camera.target"))
	}
	if c.Lighting.SunLatitude < -90 || c.Lighting.SunLatitude > 90 {
		errs = append(errs, fmt.Errorf("lighting.sun_latitude %v out of range [-90, 90]", c.Lighting.SunLatitude))
	}
	if c.Placement.Columns < 1 {
		errs = append(errs, fmt.Errorf("placement.columns %d must be at least 1", c.Placement.Columns))
	}
	if _, err := scatter.ParseSeed(c.Placement.Seed); err != nil {
		errs = append(errs, fmt.Errorf("placement.%w", err))
	}
	return errors.Join(errs...)
}

// SceneSettings converts the placement and rotation sections.
func (c *Config) SceneSettings() (scatter.Settings, error) {
	seed, err := scatter.ParseSeed(c.Placement.Seed)
	if err != nil {
		return scatter.Settings{}, err
	}
	return scatter.Settings{
		Layout: scatter.Layout{
			Columns: c.Placement.Columns,
			Offset:  math.Vec3From(c.Placement.Offset),
		},
		Seed: seed,
		Spin: scatter.Rotator{
			RateX: c.Rotation.RateX,
			RateY: c.Rotation.RateY,
		},
	}, nil
}
