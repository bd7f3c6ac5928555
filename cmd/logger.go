package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/labstack/gommon/log"
)

// Log formats selectable with LOG_FORMAT.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// SlogLevel parses LOG_LEVEL ("debug", "info", "warn", "error", optionally with an offset such as "info+2").
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

// NewLogger builds the process logger described by cfg.
func NewLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch cfg.LogFormat {
	case LogFormatText:
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With("service", "rides"), nil
}

// GommonLevel maps level to echo's logger level, which echo uses for its own messages.
func GommonLevel(level slog.Level) log.Lvl {
	switch {
	case level <= slog.LevelDebug:
		return log.DEBUG
	case level <= slog.LevelInfo:
		return log.INFO
	case level <= slog.LevelWarn:
		return log.WARN
	default:
		return log.ERROR
	}
}
