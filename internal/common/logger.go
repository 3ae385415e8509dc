package common

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LoggerOptions configures the process-wide logger.
type LoggerOptions struct {
	Level  string
	Format string
	// File, when set, receives a copy of every record with size-based rotation.
	File string
}

// ParseLevel maps a level name onto a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: invalid log level %q", ErrInvalidConfig, level)
	}
}

// NewLogHandler builds the slog handler for the given options writing to w.
func NewLogHandler(w io.Writer, opts LoggerOptions) (slog.Handler, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	if opts.File != "" {
		w = io.MultiWriter(w, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}

	switch opts.Format {
	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case "", "console":
		logger := log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			Level:           log.Level(level),
			Prefix:          "ledger",
		})
		return logger, nil
	default:
		return nil, fmt.Errorf("%w: invalid log format %q", ErrInvalidConfig, opts.Format)
	}
}

// SetupLogger configures the global logger with appropriate settings.
func SetupLogger(opts LoggerOptions) error {
	handler, err := NewLogHandler(os.Stderr, opts)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(handler))
	return nil
}
