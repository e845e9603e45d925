package main

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/flexui/parameter"
)

// Config is the demo's startup configuration, loaded from TOML
type Config struct {
	// TickRate is the pipeline frequency in frames per second
	TickRate int `toml:"tick_rate"`

	// UiScale multiplies fixed (px) style lengths
	UiScale float64 `toml:"ui_scale"`

	// Muted starts the demo without audio feedback
	Muted bool `toml:"muted"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() Config {
	return Config{
		TickRate: parameter.DefaultTickRate,
		UiScale:  1,
	}
}

// LoadConfig reads a TOML config file, falling back to defaults for a
// missing file or any invalid field
func LoadConfig(path string) Config {
	cfg := DefaultConfig()
	if path == "" {
		return cfg
	}
	if _, err := os.Stat(path); err != nil {
		return cfg
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig()
	}
	if cfg.TickRate <= 0 || cfg.TickRate > 240 {
		cfg.TickRate = parameter.DefaultTickRate
	}
	if cfg.UiScale <= 0 {
		cfg.UiScale = 1
	}
	return cfg
}
