// Package log builds the service-wide slog logger.
package log

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/tuanvumaihuynh/commerce-mock/internal/config"
)

// NewSlogLogger creates a slog logger per the given configuration and
// installs it as the process default.
func NewSlogLogger(cfg config.Log) *slog.Logger {
	var handler slog.Handler

	switch cfg.Format {
	case config.LogFormatText:
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      cfg.Level,
			AddSource:  cfg.AddSource,
			TimeFormat: time.RFC3339,
		})
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:     cfg.Level,
			AddSource: cfg.AddSource,
		})
	}

	logger := slog.New(newEnrichedHandler(handler))
	slog.SetDefault(logger)

	return logger
}
