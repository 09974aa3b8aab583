// Package dlogger exposes a simple zap logger, with log levels
package dlogger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LogLevelError sets the log level to error
	LogLevelError = "error"

	// LogLevelWarn sets the log level to warn
	LogLevelWarn = "warn"

	// LogLevelInfo sets the log level to info
	LogLevelInfo = "info"

	// LogLevelDebug sets the log level to debug
	LogLevelDebug = "debug"

	// LogLevelNone sets logger to no logging
	LogLevelNone = "none"
)

// levels historically used in BLACKFYNN_LOG_LEVEL
var aliases = map[string]string{
	"warning":  LogLevelWarn,
	"critical": LogLevelError,
	"notset":   LogLevelDebug,
}

// ParseLevel resolves a level name, case insensitive
func ParseLevel(logLevel string) (zapcore.Level, error) {
	name := strings.ToLower(strings.TrimSpace(logLevel))
	if alias, ok := aliases[name]; ok {
		name = alias
	}
	var lvl zapcore.Level
	err := lvl.UnmarshalText([]byte(name))
	return lvl, err
}

// GetLogger returns a zap logger with the specified level.
//
// The logger writes to stderr, so it never mixes with command output.
func GetLogger(logLevel string) (*zap.Logger, error) {
	if strings.EqualFold(strings.TrimSpace(logLevel), LogLevelNone) {
		return zap.NewNop(), nil
	}
	lvl, err := ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.Sampling = nil
	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}
	return logger, nil
}
