// Package cli holds the setup shared by the stonestack commands: the zap
// logger and configuration loading.
package cli

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/plus3/stonestack/puzzle"
)

// NewLogger returns a development-style logger at the given level ("debug",
// "info", "warn", "error"). With no paths it writes to stderr; terminal
// frontends pass a file so log lines do not tear the screen.
func NewLogger(level string, paths ...string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	if len(paths) > 0 {
		cfg.OutputPaths = paths
		cfg.ErrorOutputPaths = paths
	}
	return cfg.Build()
}

// LoadConfig reads path over the defaults, or returns the defaults when path
// is empty. A non-zero seed overrides the file.
func LoadConfig(path string, seed uint64) (puzzle.Config, error) {
	cfg := puzzle.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = puzzle.LoadConfig(path); err != nil {
			return cfg, err
		}
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	return cfg, nil
}
