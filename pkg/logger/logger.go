// Package logger provides leveled logging for the record model and its tools.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Level represents the logging level.
type Level int

// Log levels.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return ""
	}
}

// ParseLevel maps a case-insensitive level name to a Level.
// Unknown names fall back to LevelInfo with ok=false.
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug, true
	case "info", "INFO", "":
		return LevelInfo, true
	case "warn", "WARN", "warning":
		return LevelWarn, true
	case "error", "ERROR":
		return LevelError, true
	case "none", "off":
		return LevelNone, true
	}
	return LevelInfo, false
}

// Format selects the logrus formatter.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Logger wraps a logrus logger with the component field preset.
type Logger struct {
	mu    sync.Mutex
	level Level
	base  *logrus.Logger
	entry *logrus.Entry
}

var defaultLogger = New(os.Stderr, LevelInfo)

// Default returns the default logger.
func Default() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger.
func SetDefault(l *Logger) {
	defaultLogger = l
}

// New creates a new logger.
func New(output io.Writer, level Level) *Logger {
	base := logrus.New()
	base.SetOutput(output)
	base.SetFormatter(&logrus.TextFormatter{DisableColors: true, TimestampFormat: "15:04:05", FullTimestamp: true})
	l := &Logger{base: base, entry: base.WithField("component", "fhirmodel")}
	l.SetLevel(level)
	return l
}

// SetLevel sets the logging level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	switch level {
	case LevelDebug:
		l.base.SetLevel(logrus.DebugLevel)
	case LevelInfo:
		l.base.SetLevel(logrus.InfoLevel)
	case LevelWarn:
		l.base.SetLevel(logrus.WarnLevel)
	case LevelError:
		l.base.SetLevel(logrus.ErrorLevel)
	default:
		l.base.SetLevel(logrus.PanicLevel)
	}
}

// SetOutput sets the output writer.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.base.SetOutput(w)
}

// SetFormat switches between text and JSON output.
func (l *Logger) SetFormat(f Format) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if f == FormatJSON {
		l.base.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	l.base.SetFormatter(&logrus.TextFormatter{DisableColors: true, TimestampFormat: "15:04:05", FullTimestamp: true})
}

// With returns a child logger carrying an extra structured field.
func (l *Logger) With(key string, value any) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &Logger{level: l.level, base: l.base, entry: l.entry.WithField(key, value)}
}

func (l *Logger) enabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.level && l.level != LevelNone
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) {
	if l.enabled(LevelDebug) {
		l.entry.Debugf(format, args...)
	}
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...any) {
	if l.enabled(LevelInfo) {
		l.entry.Infof(format, args...)
	}
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	if l.enabled(LevelWarn) {
		l.entry.Warnf(format, args...)
	}
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	if l.enabled(LevelError) {
		l.entry.Errorf(format, args...)
	}
}

// Package-level convenience functions.

// Debug logs a debug message using the default logger.
func Debug(format string, args ...any) {
	defaultLogger.Debug(format, args...)
}

// Info logs an info message using the default logger.
func Info(format string, args ...any) {
	defaultLogger.Info(format, args...)
}

// Warn logs a warning message using the default logger.
func Warn(format string, args ...any) {
	defaultLogger.Warn(format, args...)
}

// Error logs an error message using the default logger.
func Error(format string, args ...any) {
	defaultLogger.Error(format, args...)
}

// SetLevel sets the level of the default logger.
func SetLevel(level Level) {
	defaultLogger.SetLevel(level)
}

// SetOutput sets the output of the default logger.
func SetOutput(w io.Writer) {
	defaultLogger.SetOutput(w)
}

// SetFormat sets the formatter of the default logger.
func SetFormat(f Format) {
	defaultLogger.SetFormat(f)
}

// Disable disables all logging.
func Disable() {
	defaultLogger.SetLevel(LevelNone)
}
