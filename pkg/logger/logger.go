// Package logger provides structured logging for the buffer packages and tools
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	// defaultLogger is the global logger instance
	defaultLogger = logrus.New()
)

// Fields represents a set of log fields
type Fields map[string]interface{}

func init() {
	// Libraries stay quiet unless the host program asks for more.
	defaultLogger.SetOutput(os.Stderr)
	defaultLogger.SetLevel(logrus.WarnLevel)
	defaultLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

// SetOutput sets the output destination for the default logger
func SetOutput(output io.Writer) {
	defaultLogger.SetOutput(output)
}

// ParseLevel maps a level name to a logrus level, falling back to info
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}

// SetLevel sets the logging level for the default logger
func SetLevel(level string) {
	defaultLogger.SetLevel(ParseLevel(level))
}

// UseJSONFormat configures the logger to use JSON formatting
func UseJSONFormat() {
	defaultLogger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

// Configure applies a level and a format ("text" or "json") in one call
func Configure(level, format string) {
	SetLevel(level)
	if strings.EqualFold(format, "json") {
		UseJSONFormat()
	}
}

// IsDebug reports whether debug messages are currently emitted
func IsDebug() bool {
	return defaultLogger.IsLevelEnabled(logrus.DebugLevel)
}

// WithFields returns a log entry with pre-populated fields
func WithFields(fields Fields) *logrus.Entry {
	return defaultLogger.WithFields(logrus.Fields(fields))
}

// Component returns an entry tagged with the emitting component
func Component(name string) *logrus.Entry {
	return defaultLogger.WithField("component", name)
}

// Debugf logs a formatted message at the debug level
func Debugf(format string, args ...interface{}) {
	defaultLogger.Debugf(format, args...)
}

// Infof logs a formatted message at the info level
func Infof(format string, args ...interface{}) {
	defaultLogger.Infof(format, args...)
}

// Warnf logs a formatted message at the warn level
func Warnf(format string, args ...interface{}) {
	defaultLogger.Warnf(format, args...)
}

// Errorf logs a formatted message at the error level
func Errorf(format string, args ...interface{}) {
	defaultLogger.Errorf(format, args...)
}

// Fatalf logs a formatted message at the fatal level and then exits
func Fatalf(format string, args ...interface{}) {
	defaultLogger.Fatalf(format, args...)
}
