// Package logging builds the process logger
// The terminal owns stdout and stderr, so logs only ever go to a file
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config defines logging configuration
type Config struct {
	Debug  bool   `yaml:"debug" env:"DEBUG"`
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"` // json or console
	Dir    string `yaml:"dir" env:"DIR"`
	File   string `yaml:"file" env:"FILE"`
}

// DefaultConfig returns logging disabled with debug-friendly settings for when it is turned on
func DefaultConfig() Config {
	return Config{
		Debug:  false,
		Level:  "debug",
		Format: "console",
		Dir:    "logs",
		File:   "body-surfer.log",
	}
}

// Path returns the log file location
func (c Config) Path() string {
	return filepath.Join(c.Dir, c.File)
}

// New builds a file logger when Debug is set and a no-op logger otherwise
// The returned close func flushes buffered entries
func New(cfg Config) (*zap.Logger, func(), error) {
	if !cfg.Debug {
		return zap.NewNop(), func() {}, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.DisableStacktrace = true

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.DebugLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if cfg.Format == "json" {
		zapConfig.Encoding = "json"
		zapConfig.EncoderConfig = zap.NewProductionEncoderConfig()
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zapConfig.Encoding = "console"
	}

	zapConfig.OutputPaths = []string{cfg.Path()}
	zapConfig.ErrorOutputPaths = []string{cfg.Path()}

	logger, err := zapConfig.Build(zap.AddCaller())
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, func() { _ = logger.Sync() }, nil
}
