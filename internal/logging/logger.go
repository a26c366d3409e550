package logging

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "SIGNBOARD_LOG_LEVEL"

// Initialize creates a new logger with the specified level writing to output.
// If level is empty, it checks SIGNBOARD_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
// An empty output writes to stderr.
func Initialize(level, output string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	if output != "" {
		// No ANSI escapes in files
		config.OutputPaths = []string{output}
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeInteractive is Initialize for the full-screen app. The terminal
// belongs to the renderer, so without a log file the logger stays silent.
func InitializeInteractive(level, file string) error {
	if file == "" {
		logger = zap.NewNop()
		return nil
	}
	return Initialize(level, file)
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		return zapcore.InfoLevel
	}
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Sync flushes any buffered log entries
func Sync() error {
	return GetLogger().Sync()
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, fields ...zap.Field) {
	GetLogger().Fatal(msg, fields...)
}

// LogGesture logs a tap detector outcome.
func LogGesture(result string, count int, window time.Duration) {
	Debug("Gesture event",
		zap.String("result", result),
		zap.Int("count", count),
		zap.Duration("window", window),
	)
}

// LogSettingsReload logs a live settings reload.
func LogSettingsReload(path string, warnings []error) {
	fields := []zap.Field{
		zap.String("path", path),
		zap.Int("warnings", len(warnings)),
	}
	if len(warnings) > 0 {
		fields = append(fields, zap.Errors("invalid", warnings))
	}
	Info("Settings reloaded", fields...)
}

// LogRender logs a one-shot render.
func LogRender(target string, width, height int, fontPx float64, lines int) {
	Debug("Rendered sign",
		zap.String("target", target),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Float64("font_px", fontPx),
		zap.Int("lines", lines),
	)
}
