package app

import (
	"errors"
	"fmt"

	"github.com/vk/nnc/internal/render"
)

// DefaultOutputPath is where the rendered graph goes when no path is given.
const DefaultOutputPath = "output.dot"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GraphPath  string // network descriptor
	OutputPath string // rendered DOT file

	LogFormat string
	LogLevel  string
	// RenderSeed is "all" or "first"; see render.Seed.
	RenderSeed string
}

// NewConfig fills in defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GraphPath == "" {
		return nil, errors.New("GraphPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.RenderSeed == "" {
		cfg.RenderSeed = render.SeedAll.String()
	}
	if _, err := render.ParseSeed(cfg.RenderSeed); err != nil {
		return nil, err
	}

	return &cfg, nil
}
