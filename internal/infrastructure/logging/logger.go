package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. LOG_MODE=prod (or production) selects the
// JSON production config; anything else the console development config.
// LOG_LEVEL overrides the level (debug, info, warn, error).
func New(service string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(os.Getenv("LOG_MODE")) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.OutputPaths = []string{"stdout"}
		cfg.ErrorOutputPaths = []string{"stderr"}
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		level, err := zapcore.ParseLevel(lvl)
		if err != nil {
			return nil, err
		}
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	if service != "" {
		logger = logger.With(zap.String("service", service))
	}
	return logger, nil
}

// MustNew is New for entrypoints; it falls back to a no-op logger.
func MustNew(service string) *zap.Logger {
	logger, err := New(service)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
