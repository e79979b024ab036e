package app

import (
	"io"
	"log/slog"

	"github.com/vk/nnc/internal/config"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// NewApp is the constructor for the main application. Logs go to outW
// through the App's own logger; the global default is left untouched.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		logger: logger,
		config: cfg,
		loader: loader,
	}
}
