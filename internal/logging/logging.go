package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds configuration for logger initialization.
type Config struct {
	// Level is the log level (debug, info, warn, error).
	Level string
	// Format is the output format (console, json).
	Format string
}

// DefaultConfig returns the defaults used by the command-line tools.
func DefaultConfig() *Config {
	return &Config{
		Level:  "info",
		Format: "console",
	}
}

// New creates a zap logger writing to standard error.
func New(cfg *Config) (*zap.Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), zap.NewAtomicLevelAt(level))
	return zap.New(core), nil
}

// FromEnv creates a logger with its level taken from the environment.
// An unset or unrecognized level falls back to info rather than failing;
// logging must never stop an administrative run.
func FromEnv() *zap.Logger {
	cfg := DefaultConfig()
	cfg.Level = LevelFromEnv()

	logger, err := New(cfg)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// LevelFromEnv resolves the level string from the DEBUG and LOG_LEVEL
// environment variables. DEBUG=true wins over LOG_LEVEL.
func LevelFromEnv() string {
	switch strings.ToLower(os.Getenv("DEBUG")) {
	case "1", "true", "yes", "on":
		return "debug"
	}

	level := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if _, err := ParseLevel(level); err != nil {
		return "info"
	}
	return level
}

// ParseLevel parses a level string into a zapcore.Level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown level: %s", level)
	}
}
