// Package config holds the CLI configuration: logging, training progress and
// report rendering. Values come from defaults, optionally overlaid by a YAML
// file.
package config

import (
	"fmt"
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config is the root configuration for the bytepair CLI.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Train  TrainConfig  `yaml:"train"`
	Report ReportConfig `yaml:"report"`
}

// LogConfig controls log verbosity and output shape.
type LogConfig struct {
	Level  string `yaml:"level"`  // trace, debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// TrainConfig controls training progress output.
type TrainConfig struct {
	LogEvery int `yaml:"log_every"` // merges between progress lines
}

// ReportConfig controls the statistics tables printed after training.
type ReportConfig struct {
	TopTokens int    `yaml:"top_tokens"` // rows in the top-token table
	Color     string `yaml:"color"`      // yes, no or auto
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Train: TrainConfig{
			LogEvery: 500,
		},
		Report: ReportConfig{
			TopTokens: 10,
			Color:     "auto",
		},
	}
}

// Load reads a YAML file and overlays it on the defaults, so a partial file
// only overrides the keys it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("while reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("while parsing %s: %w", path, err)
	}
	return cfg, nil
}
