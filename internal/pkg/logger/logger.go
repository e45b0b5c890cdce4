package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *slog.Logger
	zapBackend   *zap.Logger
)

// Init builds a JSON zap logger at the given level and installs it as the default slog logger.
func Init(levelStr string) error {
	level := parseLevel(levelStr)

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	z, err := cfg.Build()
	if err != nil {
		return err
	}

	zapBackend = z
	globalLogger = slog.New(zapslog.NewHandler(z.Core()))
	slog.SetDefault(globalLogger)
	return nil
}

func parseLevel(levelStr string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO", "":
		return zapcore.InfoLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		slog.Warn("Invalid log level string, defaulting to INFO", "input", levelStr)
		return zapcore.InfoLevel
	}
}

// Sync flushes buffered log entries.
func Sync() {
	if zapBackend != nil {
		_ = zapBackend.Sync()
	}
}

func ensureInitialized() {
	if globalLogger == nil {
		if err := Init("INFO"); err != nil {
			globalLogger = slog.Default()
		}
	}
}

// Debug logs a message at DebugLevel.
func Debug(msg string, args ...any) {
	ensureInitialized()
	globalLogger.Debug(msg, args...)
}

// Info logs a message at InfoLevel.
func Info(msg string, args ...any) {
	ensureInitialized()
	globalLogger.Info(msg, args...)
}

// Warn logs a message at WarnLevel.
func Warn(msg string, args ...any) {
	ensureInitialized()
	globalLogger.Warn(msg, args...)
}

// Error logs a message at ErrorLevel.
func Error(msg string, args ...any) {
	ensureInitialized()
	globalLogger.Error(msg, args...)
}

// Fatal logs a message at ErrorLevel then exits.
func Fatal(msg string, args ...any) {
	ensureInitialized()
	globalLogger.Log(context.Background(), slog.LevelError, msg, args...)
	Sync()
	os.Exit(1)
}
