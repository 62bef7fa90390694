// Package platform provides the process-level plumbing shared by the
// FarmSecure commands: the structured logger and evaluation metrics.
package platform

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig holds logging configuration.
type LogConfig struct {
	Level   string // debug, info, warn, error
	Format  string // json, console
	Verbose bool   // forces debug level

	// Output overrides the default stderr sink.
	Output zapcore.WriteSyncer
}

// NewLogger builds a zap logger from cfg. JSON uses the production encoder,
// console the development one.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		level = zapcore.DebugLevel
	}

	var zc zap.Config
	var encoder func(zapcore.EncoderConfig) zapcore.Encoder
	switch strings.ToLower(cfg.Format) {
	case "json":
		zc = zap.NewProductionConfig()
		encoder = zapcore.NewJSONEncoder
	case "console", "":
		zc = zap.NewDevelopmentConfig()
		encoder = zapcore.NewConsoleEncoder
	default:
		return nil, fmt.Errorf("unknown log format %q (want json or console)", cfg.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	if cfg.Output != nil {
		core := zapcore.NewCore(encoder(zc.EncoderConfig), cfg.Output, zc.Level)
		return zap.New(core), nil
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// ParseLevel converts a level name to a zapcore.Level. The empty string
// selects info.
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
