// Package logger provides verbose logging for digest.
// When verbose mode is enabled via the --verbose flag, messages are
// written to stderr to show how documents are discovered, loaded and filtered.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	base              = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.DebugLevel,
		ReportTimestamp: false,
		ReportCaller:    false,
	})
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
	output = w
	base = newLogger(w)
}

// Debug logs a formatted message at debug level if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		base.Debugf(format, args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info logs a formatted message at info level if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		base.Infof(format, args...)
	}
}

// Warn logs a formatted message at warn level if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		base.Warnf(format, args...)
	}
}

// With returns a structured logger carrying keyvals, for call sites that
// log several related events. It honours verbose mode at call time.
func With(keyvals ...any) *Scoped {
	return &Scoped{keyvals: keyvals}
}

// Scoped is a logger bound to a fixed set of key-value pairs.
type Scoped struct {
	keyvals []any
}

// Debug logs msg with the bound key-value pairs if verbose mode is enabled.
func (s *Scoped) Debug(msg string, keyvals ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		base.With(s.keyvals...).Debug(msg, keyvals...)
	}
}

// Warn logs msg with the bound key-value pairs if verbose mode is enabled.
func (s *Scoped) Warn(msg string, keyvals ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		base.With(s.keyvals...).Warn(msg, keyvals...)
	}
}
