package project

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the decoded vhdlparse.toml.
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Output      OutputConfig      `toml:"output"`
	Jobs        int               `toml:"jobs"`
}

// DiagnosticsConfig controls how many diagnostics are collected per
// file.
type DiagnosticsConfig struct {
	Max int `toml:"max"`
}

// OutputConfig controls rendering of command output.
type OutputConfig struct {
	Color string `toml:"color"`
}

// DefaultConfig returns the settings used when no manifest exists.
func DefaultConfig() Config {
	return Config{
		Diagnostics: DiagnosticsConfig{Max: 100},
		Output:      OutputConfig{Color: "auto"},
	}
}

// LoadConfig decodes a manifest file. Sections the file omits keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.Diagnostics.Max <= 0 {
		cfg.Diagnostics.Max = DefaultConfig().Diagnostics.Max
	}
	switch cfg.Output.Color {
	case "auto", "on", "off":
	case "":
		cfg.Output.Color = "auto"
	default:
		return Config{}, fmt.Errorf("%s: output.color must be auto, on, or off", path)
	}
	return cfg, nil
}

// DiscoverConfig loads the nearest manifest above startDir, falling
// back to defaults when none exists.
func DiscoverConfig(startDir string) (Config, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}
