// Package config loads fairplay settings from an optional HCL file with
// environment overrides.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/fairplay/internal/commitment"
	"github.com/lox/fairplay/internal/evaluator"
)

// DefaultFile is read when no --config flag is given
const DefaultFile = "fairplay.hcl"

// Config represents the complete configuration
type Config struct {
	Game GameSettings
	UI   UISettings
}

// fileConfig mirrors Config with optional blocks
type fileConfig struct {
	Game *GameSettings `hcl:"game,block"`
	UI   *UISettings   `hcl:"ui,block"`
}

// GameSettings controls the commitment and help table
type GameSettings struct {
	KeyBytes   int    `hcl:"key_bytes,optional" env:"FAIRPLAY_KEY_BYTES"`
	HelpCorner string `hcl:"help_corner,optional" env:"FAIRPLAY_HELP_CORNER"`
}

// UISettings contains terminal and logging settings
type UISettings struct {
	LogLevel    string `hcl:"log_level,optional" env:"FAIRPLAY_LOG_LEVEL"`
	LogJSON     bool   `hcl:"log_json,optional" env:"FAIRPLAY_LOG_JSON"`
	Color       *bool  `hcl:"color,optional" env:"FAIRPLAY_COLOR"`
	HistoryFile string `hcl:"history_file,optional" env:"FAIRPLAY_HISTORY_FILE"`
}

// Default returns the built-in configuration
func Default() *Config {
	color := true
	return &Config{
		Game: GameSettings{
			KeyBytes:   commitment.MinKeyBytes,
			HelpCorner: evaluator.DefaultCorner,
		},
		UI: UISettings{
			LogLevel: "warn",
			Color:    &color,
		},
	}
}

// Load reads filename if it exists, fills unset values from Default and then
// applies FAIRPLAY_* environment variables.
func Load(filename string) (*Config, error) {
	cfg := &Config{}

	if filename != "" {
		if _, err := os.Stat(filename); err == nil {
			parser := hclparse.NewParser()
			file, diags := parser.ParseHCLFile(filename)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
			}
			var fc fileConfig
			diags = gohcl.DecodeBody(file.Body, nil, &fc)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
			}
			if fc.Game != nil {
				cfg.Game = *fc.Game
			}
			if fc.UI != nil {
				cfg.UI = *fc.UI
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Game.KeyBytes == 0 {
		c.Game.KeyBytes = defaults.Game.KeyBytes
	}
	if c.Game.HelpCorner == "" {
		c.Game.HelpCorner = defaults.Game.HelpCorner
	}
	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
	if c.UI.Color == nil {
		c.UI.Color = defaults.UI.Color
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.KeyBytes < commitment.MinKeyBytes {
		return fmt.Errorf("key_bytes must be at least %d, got %d", commitment.MinKeyBytes, c.Game.KeyBytes)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	return nil
}

// UseColor reports whether styled output is enabled
func (c *Config) UseColor() bool {
	return c.UI.Color == nil || *c.UI.Color
}
