// Package logging provides the run logger: a live console stream plus a
// timestamped log file created in the root directory for every run.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Logger fans every message out to a console sink and, when enabled, a
// per-run log file. Components receive it explicitly; there is no package
// global.
type Logger struct {
	console *log.Logger
	file    *log.Logger
	f       *os.File
	path    string
}

// New creates a Logger writing to stdout and to a timestamped log file in
// dir (e.g. "cbzbinder_20260830_153004.log"). verbose enables debug-level
// output on both sinks.
func New(dir string, verbose bool) (*Logger, error) {
	name := fmt.Sprintf("cbzbinder_%s.log", time.Now().Format("20060102_150405"))
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	l := newWithSinks(os.Stdout, f, verbose)
	l.f = f
	l.path = f.Name()
	return l, nil
}

// NewDiscard returns a Logger that swallows everything. Used by tests.
func NewDiscard() *Logger {
	return newWithSinks(io.Discard, io.Discard, false)
}

func newWithSinks(console, file io.Writer, verbose bool) *Logger {
	c := log.NewWithOptions(console, log.Options{
		ReportTimestamp: false,
	})
	f := log.NewWithOptions(file, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
	})
	if verbose {
		c.SetLevel(log.DebugLevel)
		f.SetLevel(log.DebugLevel)
	}
	return &Logger{console: c, file: f}
}

// Path returns the log file location, or "" when no file sink is open.
func (l *Logger) Path() string { return l.path }

// Close flushes and closes the log file sink.
func (l *Logger) Close() error {
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...any) {
	l.console.Infof(format, args...)
	l.file.Infof(format, args...)
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...any) {
	l.console.Warnf(format, args...)
	l.file.Warnf(format, args...)
}

// Error logs at ERROR level. Non-fatal: callers log and continue.
func (l *Logger) Error(format string, args ...any) {
	l.console.Errorf(format, args...)
	l.file.Errorf(format, args...)
}

// Debug logs at DEBUG level; silent unless the logger was built verbose.
func (l *Logger) Debug(format string, args ...any) {
	l.console.Debugf(format, args...)
	l.file.Debugf(format, args...)
}
