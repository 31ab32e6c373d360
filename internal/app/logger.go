package app

import (
	"log/slog"
	"os"
)

// Log output formats accepted by LOG_FORMAT.
const (
	LogFormatJSON   = "json"
	LogFormatPretty = "pretty"
)

// NewLogger builds the process logger from config: LogFormatJSON emits
// structured JSON for log shippers, anything else gets the human-readable
// text handler.
func NewLogger(cfg *Config) *slog.Logger {
	format := LogFormatPretty
	if cfg != nil && cfg.LogFormat != "" {
		format = cfg.LogFormat
	}
	opts := &slog.HandlerOptions{AddSource: true}
	if format == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
