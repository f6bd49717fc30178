// Package logging provides zerolog-based structured logging for gardenledger.
//
// Loggers are configured once at CLI startup and flow through contexts so
// that every component logs with the same trace ID for a single invocation.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name ("debug", "info", "warn", "error").
	// Unparseable values fall back to "info".
	Level string

	// Format selects "console" (human-readable, stderr) or "json".
	Format string

	// File, when non-empty, redirects log output to the given file path.
	// Console output is suppressed so the terminal stays clean for command
	// output.
	File string
}

// LogPathResult reports where NewLoggerWithPath actually sent log output.
type LogPathResult struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string
}

// NewLoggerWithPath builds a logger from cfg. If file output was requested
// but the file cannot be opened, it falls back to stderr and records the
// reason so the CLI can warn the user.
func NewLoggerWithPath(cfg Config) LogPathResult {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	result := LogPathResult{}

	var out io.Writer
	switch {
	case cfg.File != "":
		f, openErr := openLogFile(cfg.File)
		if openErr != nil {
			result.FallbackUsed = true
			result.FallbackReason = openErr.Error()
			out = consoleWriter()
		} else {
			result.UsingFile = true
			result.FilePath = cfg.File
			out = f
		}
	case cfg.Format == "json":
		out = os.Stderr
	default:
		out = consoleWriter()
	}

	result.Logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
	return result
}

func consoleWriter() io.Writer {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// PrintLogPathMessage tells the user where file logging landed.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user file logging failed and why.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: file logging unavailable (%s), using stderr\n", reason)
}
