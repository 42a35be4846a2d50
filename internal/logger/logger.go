// Package logger provides process-wide logging for the ghmine CLI.
// Info, warning, and error messages are always written; debug messages
// only appear when verbose mode is enabled via the --verbose flag.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// timeFormat renders timestamps as "HH:MM:SS.ms" (e.g. "14:32:01.45").
const timeFormat = "15:04:05.00"

var (
	mu      sync.RWMutex
	verbose bool
	base    = newLogger(os.Stderr, log.InfoLevel)
)

// newLogger builds a charm logger for w. Terminals get the styled text
// formatter with timestamps; anything else gets plain logfmt lines.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	opts := log.Options{
		Level:     level,
		Formatter: log.LogfmtFormatter,
	}
	if isTerminal(w) {
		opts.Formatter = log.TextFormatter
		opts.ReportTimestamp = true
		opts.TimeFormat = timeFormat
	}
	return log.NewWithOptions(w, opts)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func level() log.Level {
	if verbose {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// SetVerbose enables or disables debug logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	base.SetLevel(level())
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	base = newLogger(w, level())
}

// Logger returns the underlying charm logger for structured key/value logging.
func Logger() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	Logger().Debugf(format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	Logger().Debugf("=== %s ===", name)
}

// Info prints an informational message.
func Info(format string, args ...any) {
	Logger().Infof(format, args...)
}

// Warn prints a warning message.
func Warn(format string, args ...any) {
	Logger().Warnf(format, args...)
}

// Error prints an error message.
func Error(format string, args ...any) {
	Logger().Errorf(format, args...)
}
