// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration.
type Config struct {
	Level      string // debug, info, warn or error
	FilePath   string // empty logs to the fallback writer only
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultConfig logs warnings and errors to stderr. Rotation settings apply
// once FilePath is set.
func DefaultConfig() Config {
	return Config{
		Level:      "warn",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
		Compress:   true,
	}
}

// New builds a text logger writing to the rotated file when FilePath is set
// and to fallback otherwise. The returned function closes the file.
func New(cfg Config, fallback io.Writer) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	writer := fallback
	cleanup := func() error { return nil }

	if cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o750); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  true,
		}
		writer = lj
		cleanup = lj.Close
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level})
	return slog.New(handler), cleanup, nil
}

// Setup installs the logger from New as the slog default.
func Setup(cfg Config) (func() error, error) {
	logger, cleanup, err := New(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return cleanup, nil
}

// ParseLevel converts a level name. The empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q (want debug, info, warn or error)", s)
	}
}
