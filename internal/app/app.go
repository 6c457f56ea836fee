package app

import (
	"io"
	"log/slog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	in     io.Reader
	outW   io.Writer
	logger *slog.Logger
	config *Config
	styles styles
}

// NewApp is the constructor for the main application. Prompts and results go
// to outW; logs go to logW through the App's own isolated logger.
func NewApp(in io.Reader, outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		in:     in,
		outW:   outW,
		logger: logger,
		config: cfg,
		styles: newStyles(outW),
	}
}
