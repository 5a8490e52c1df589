// Package log is a thin facade over logrus. The player runs a fullscreen
// TUI, so the default destination is a log file rather than stdout.
package log

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var logger = newLogrus(os.Stderr)

// Option configures the underlying logrus logger.
type Option func(*logrus.Logger)

// WithOutput directs log output to the given writer.
func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// WithJSON switches the output format to JSON lines.
func WithJSON() Option {
	return func(l *logrus.Logger) {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
}

// WithFile directs log output to the named file, creating parent
// directories as needed. Falls back to stderr if the file cannot be opened.
func WithFile(path string) Option {
	return func(l *logrus.Logger) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return
		}
		l.SetOutput(f)
	}
}

// Configure replaces the global logger configuration.
func Configure(opts ...Option) {
	l := newLogrus(os.Stderr)
	for _, opt := range opts {
		opt(l)
	}
	logger.SetOutput(io.Discard)
	logger = l
}

// SetDebug toggles debug-level output on the global logger.
func SetDebug(debug bool) {
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

func newLogrus(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// Field is a single structured logging key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

// F constructs a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// With returns an entry carrying the given structured fields.
func With(fields ...Field) *logrus.Entry {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return logger.WithFields(data)
}

// Info logs an informational message
func Info(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Debug logs a debug message (suppressed unless SetDebug(true))
func Debug(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}
