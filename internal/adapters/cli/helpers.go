package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/andrescamacho/zodiakos-go/internal/application/common"
	"github.com/andrescamacho/zodiakos-go/internal/domain/shared"
	"github.com/andrescamacho/zodiakos-go/internal/infrastructure/config"
)

// slogAdapter bridges the application logger interface onto log/slog
type slogAdapter struct {
	logger *slog.Logger
}

// NewConsoleLogger builds a SimulationLogger from the logging configuration.
// Output "file" appends to cfg.FilePath, creating it if needed.
func NewConsoleLogger(cfg *config.LoggingConfig) (common.SimulationLogger, error) {
	var out io.Writer
	switch cfg.Output {
	case "stderr":
		out = os.Stderr
	case "file":
		if cfg.FilePath == "" {
			return nil, fmt.Errorf("logging output is \"file\" but no file_path is configured")
		}
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
	default:
		out = os.Stdout
	}

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return &slogAdapter{logger: slog.New(handler)}, nil
}

// Log forwards a message with metadata to the underlying slog logger
func (a *slogAdapter) Log(level, message string, metadata map[string]interface{}) {
	// Sort keys for stable output
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, len(metadata)*2)
	for _, k := range keys {
		args = append(args, k, metadata[k])
	}

	switch level {
	case "debug":
		a.logger.Debug(message, args...)
	case "warn":
		a.logger.Warn(message, args...)
	case "error":
		a.logger.Error(message, args...)
	default:
		a.logger.Info(message, args...)
	}
}

// formatAmounts renders a resource map in a stable order
func formatAmounts(amounts map[shared.ResourceKind]float64) string {
	kinds := make([]shared.ResourceKind, 0, len(amounts))
	for kind := range amounts {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	out := ""
	for i, kind := range kinds {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s %.1f", kind.DisplayName(), amounts[kind])
	}
	return out
}
