// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the diagnostic zap logger shared by every tool.
// Diagnostics go to a file or stderr, never to the console the user is
// typing into.
package logging

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/pocket/pkg/types"
)

// New returns a JSON logger configured by cfg. An empty level yields a
// no-op logger.
func New(cfg types.LogConfig) (*zap.Logger, error) {
	level := strings.TrimSpace(cfg.Level)
	if level == "" {
		return zap.NewNop(), nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	dest := strings.TrimSpace(cfg.File)
	if dest == "" {
		dest = "stderr"
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "json"
	zc.OutputPaths = []string{dest}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.Sampling = nil
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	log, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return log, nil
}

// WithSession tags every entry with a fresh session id so interleaved runs
// writing to one file can be told apart.
func WithSession(log *zap.Logger) *zap.Logger {
	return log.With(zap.String("session", uuid.NewString()))
}
