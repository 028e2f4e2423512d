// Package logging builds the file-backed logger for winnow. The TUI owns
// the terminal, so diagnostics go to a log file under the data dir; when
// that file cannot be used, logging degrades to a nop logger rather than
// interfering with the UI.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production logger writing to path. Debug widens the level.
// Any setup failure yields a nop logger and no error: the application must
// run with or without diagnostics.
func New(path string, debug bool) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zap.NewNop()
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
