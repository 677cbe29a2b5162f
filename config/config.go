// Package config loads demo-facing runtime settings from YAML, with a
// search-order fallback to compiled defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/gridframe/grid"
)

// Runtime is the file-configurable subset of engine settings
type Runtime struct {
	FPS               int    `yaml:"fps"`
	DefaultForeground string `yaml:"default_foreground"`
	DefaultBackground string `yaml:"default_background"`
}

// Default returns the compiled defaults
func Default() Runtime {
	return Runtime{
		FPS:               30,
		DefaultForeground: "white",
		DefaultBackground: "black",
	}
}

// Load resolves a Runtime config.
// Search order: customPath -> ~/.gridframe/config.yaml -> ./gridframe.yaml
// -> compiled defaults. Only an explicitly named file that fails to load
// is an error; missing fallback locations are not.
func Load(customPath string) (Runtime, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		userPath := filepath.Join(home, ".gridframe", "config.yaml")
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	if data, err := os.ReadFile("gridframe.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	return cfg, nil
}

func normalize(cfg Runtime) Runtime {
	if cfg.FPS <= 0 {
		cfg.FPS = Default().FPS
	}
	if cfg.DefaultForeground == "" {
		cfg.DefaultForeground = Default().DefaultForeground
	}
	if cfg.DefaultBackground == "" {
		cfg.DefaultBackground = Default().DefaultBackground
	}
	return cfg
}

// colorsByName maps config color names to grid colors
var colorsByName = map[string]grid.Color{
	"black":     grid.Black,
	"white":     grid.White,
	"grey":      grid.Grey,
	"darkgrey":  grid.DarkGrey,
	"lightgrey": grid.LightGrey,
	"red":       grid.Red,
	"green":     grid.Green,
	"blue":      grid.Blue,
	"cyan":      grid.Cyan,
	"yellow":    grid.Yellow,
	"magenta":   grid.Magenta,
}

// ParseColor resolves a config color name
func ParseColor(name string) (grid.Color, error) {
	if c, ok := colorsByName[name]; ok {
		return c, nil
	}
	return grid.Color{}, fmt.Errorf("unknown color %q", name)
}
