// Package logger provides verbose logging for docquery.
// When verbose mode is enabled via the --verbose flag, debug messages
// are written to stderr as human-readable zerolog console output.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	verbose bool
	log     = newLogger(os.Stderr)
)

func newLogger(w io.Writer) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}
	return zerolog.New(console).With().Timestamp().Logger()
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = newLogger(w)
}

// Logger returns the underlying zerolog logger for structured fields.
// Events are discarded unless verbose mode is enabled.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return zerolog.Nop()
	}
	return log
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	emit(zerolog.DebugLevel, format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	emit(zerolog.InfoLevel, format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	emit(zerolog.WarnLevel, format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	emit(zerolog.InfoLevel, "=== %s ===", name)
}

func emit(level zerolog.Level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	log.WithLevel(level).Msg(fmt.Sprintf(format, args...))
}
