package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LevelError LogLevel = "error"
	LevelWarn  LogLevel = "warn"
	LevelInfo  LogLevel = "info"
	LevelDebug LogLevel = "debug"
)

var (
	// Current logger instance
	logger *slog.Logger

	// Current log level
	currentLevel slog.Level

	// Current output destination
	output io.Writer = os.Stderr

	// When set, records bypass the output writer and go to the callback
	callbackFn CallbackFunc
)

func init() {
	// Initialize with default settings
	SetLevel(LevelInfo)
}

// SetLevel configures the logging level
func SetLevel(level LogLevel) error {
	switch level {
	case LevelError:
		currentLevel = slog.LevelError
	case LevelWarn:
		currentLevel = slog.LevelWarn
	case LevelInfo:
		currentLevel = slog.LevelInfo
	case LevelDebug:
		currentLevel = slog.LevelDebug
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}

	setupLogger()
	return nil
}

// SetOutput redirects log output
func SetOutput(w io.Writer) {
	output = w
	setupLogger()
}

// SetCallback routes all package-level logs through cb instead of the
// output writer. Watch mode installs one to pull records into the TUI
// frame. Pass nil to restore writer output.
func SetCallback(cb CallbackFunc) {
	callbackFn = cb
	setupLogger()
}

// ParseLevel converts a string to LogLevel
func ParseLevel(s string) (LogLevel, error) {
	level := LogLevel(strings.ToLower(s))
	switch level {
	case LevelError, LevelWarn, LevelInfo, LevelDebug:
		return level, nil
	default:
		return "", fmt.Errorf("invalid log level: %s", s)
	}
}

func setupLogger() {
	if callbackFn != nil {
		logger = NewCallbackLogger(callbackFn, currentLevel)
		return
	}

	// Create a handler for cleaner output (without timestamps)
	handler := NewHandler(output, currentLevel)
	logger = slog.New(handler)
}

// StageLogger returns a logger whose records carry stage information.
// Records follow the package routing: the stage-aware handler prefixes
// them when writing to the output writer, and stage attributes ride
// along when a callback is installed.
func StageLogger(stageNum, totalStages int, stageName string) *slog.Logger {
	if callbackFn != nil {
		return NewCallbackLoggerWithAttrs(callbackFn, currentLevel,
			slog.Int("stageIndex", stageNum),
			slog.Int("totalStages", totalStages),
			slog.String("stageName", stageName))
	}
	return slog.New(NewHandlerWithStage(stageNum, totalStages, stageName, output, currentLevel))
}

// Error logs an error message
func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// IsDebugEnabled returns true if debug logging is enabled
func IsDebugEnabled() bool {
	return currentLevel <= slog.LevelDebug
}
