// Package logging sets up the process-wide slog logger for the CLI, with
// optional file rotation.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration.
type Config struct {
	Level      string    // Log level: debug, info, warn, error
	FilePath   string    // Path to log file (empty = Output)
	MaxSizeMB  int       // Max size in MB before rotation
	MaxBackups int       // Max number of old log files to retain
	MaxAgeDays int       // Max age in days to retain old log files
	Compress   bool      // Whether to compress rotated files
	Output     io.Writer // Destination when FilePath is empty; nil means stderr
}

// DefaultConfig returns the defaults used when nothing is configured.
// The CLI is quiet by default: only warnings and errors reach stderr.
func DefaultConfig() Config {
	return Config{
		Level:      "warn",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
		Compress:   true,
	}
}

// Setup installs a text slog handler as the default logger.
// Returns a cleanup function that should be called on shutdown.
func Setup(cfg Config) (func() error, error) {
	writer, cleanup, err := openWriter(cfg)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	})
	slog.SetDefault(slog.New(handler))
	return cleanup, nil
}

func openWriter(cfg Config) (io.Writer, func() error, error) {
	if cfg.FilePath == "" {
		if cfg.Output != nil {
			return cfg.Output, func() error { return nil }, nil
		}
		return os.Stderr, func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
		return nil, nil, err
	}
	lj := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
		LocalTime:  true,
	}
	return lj, lj.Close, nil
}

// ParseLevel maps a level name to a slog.Level. Unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
