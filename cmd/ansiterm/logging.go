package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 28
)

// setupLogging returns a JSON logger writing to a rotated file at path.
// Logging is disabled when path is empty; the terminal owns stdout and stderr.
func setupLogging(path, level string) (zerolog.Logger, func() error, error) {
	noop := func() error { return nil }
	if path == "" {
		return zerolog.Nop(), noop, nil
	}

	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(level); err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return zerolog.Nop(), noop, err
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
	}
	logger := zerolog.New(w).Level(lvl).With().Timestamp().Int("pid", os.Getpid()).Logger()
	return logger, w.Close, nil
}
