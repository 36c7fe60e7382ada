// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"path/filepath"
	"sync"

	"collabnex/cli/internal/xdg"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.Mutex
	logger *zap.Logger
)

// Logger returns the process-wide diagnostic logger, writing JSON lines to
// cli.log in the XDG state dir. Terminal output stays on pterm/fmt; this
// logger is for troubleshooting only. If the state dir cannot be created
// the logger is a no-op rather than an error.
func Logger(level string) *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		return logger
	}

	dir, err := xdg.StateDir()
	if err != nil {
		logger = zap.NewNop()
		return logger
	}

	lvl := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(level); err == nil {
		lvl = parsed
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{filepath.Join(dir, "cli.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths

	l, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
		return logger
	}
	logger = l
	return logger
}
