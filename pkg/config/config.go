// Package config holds the render settings the CLI reads from a JSON file
// and its command line flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/df07/go-raymarcher/pkg/sink"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config contains the settings for a single render
type Config struct {
	Scene       string  `json:"scene"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Slices      int     `json:"slices,omitempty"`      // 0 = one slice per CPU
	MaxDistance float64 `json:"maxDistance,omitempty"` // 0 = the scene's own budget
	Output      string  `json:"output"`
}

// Default returns the settings used when nothing else is given
func Default() Config {
	return Config{
		Scene:  "mirror-room",
		Width:  400,
		Height: 400,
		Slices: 0,
		Output: "output/render.png",
	}
}

// Load reads a JSON config from path. Fields missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the settings describe a renderable image
func (c Config) Validate() error {
	if c.Scene == "" {
		return fmt.Errorf("%w: scene name is empty", ErrInvalidConfig)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Slices < 0 || c.Slices > c.Height {
		return fmt.Errorf("%w: slices must be between 0 and the image height %d, got %d", ErrInvalidConfig, c.Height, c.Slices)
	}
	if c.MaxDistance < 0 {
		return fmt.Errorf("%w: max distance must not be negative, got %g", ErrInvalidConfig, c.MaxDistance)
	}
	if _, err := sink.FormatFromPath(c.Output); err != nil {
		return fmt.Errorf("%w: output %q: %w", ErrInvalidConfig, c.Output, err)
	}
	return nil
}
