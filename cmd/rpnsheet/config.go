package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/shibukawa/rpnsheet"
)

// loadConfig loads the configuration file and applies global flag overrides
func loadConfig(cli *CLI) (*rpnsheet.Config, error) {
	config, err := rpnsheet.LoadConfig(cli.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cli.LogLevel != "" {
		config.Log.Level = cli.LogLevel
	}

	if cli.LogFormat != "" {
		config.Log.Format = cli.LogFormat
	}

	if cli.Quiet {
		config.Log.Level = "error"
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
