package main

import (
	"github.com/rs/zerolog"

	"github.com/lox/fairplay/cmd/fairplay/shared"
	"github.com/lox/fairplay/internal/config"
)

// load reads the config file and applies command-line overrides
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.UI.LogLevel = g.LogLevel
	}
	if g.LogJSON {
		cfg.UI.LogJSON = true
	}
	if g.NoColor {
		color := false
		cfg.UI.Color = &color
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	return shared.SetupLogger(cfg.UI.LogLevel, cfg.UI.LogJSON)
}
