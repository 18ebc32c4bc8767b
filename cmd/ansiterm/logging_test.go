package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logger, closeLog, err := setupLogging("", "debug")
	require.NoError(t, err)
	assert.NoError(t, closeLog())

	// Nop logger: nothing is enabled
	assert.False(t, logger.Debug().Enabled())
	assert.False(t, logger.Error().Enabled())
}

func TestSetupLogging_EnabledWithPath(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "ansiterm.log")

	logger, closeLog, err := setupLogging(logPath, "debug")
	require.NoError(t, err)

	logger.Debug().Str("mode", "raw").Msg("mode changed")
	require.NoError(t, closeLog())

	// Parent directory is created on demand
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	line := string(data)
	assert.Contains(t, line, `"level":"debug"`)
	assert.Contains(t, line, `"mode":"raw"`)
	assert.Contains(t, line, `"pid":`)
	assert.Contains(t, line, `"message":"mode changed"`)
}

func TestSetupLogging_LevelFilters(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "ansiterm.log")

	logger, closeLog, err := setupLogging(logPath, "warn")
	require.NoError(t, err)
	logger.Info().Msg("dropped")
	logger.Warn().Msg("kept")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
}

func TestSetupLogging_InvalidLevel(t *testing.T) {
	_, _, err := setupLogging(filepath.Join(t.TempDir(), "x.log"), "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "loud"`)
}

func TestSetupLogging_Rotation(t *testing.T) {
	logDir := t.TempDir()
	logPath := filepath.Join(logDir, "ansiterm.log")

	// Fill the current file to the size limit
	data := make([]byte, maxLogSizeMB*1024*1024)
	require.NoError(t, os.WriteFile(logPath, data, 0644))

	logger, closeLog, err := setupLogging(logPath, "info")
	require.NoError(t, err)
	logger.Info().Msg("after rotation")
	require.NoError(t, closeLog())

	// The full file moved aside to a timestamped backup
	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != "ansiterm.log" && strings.HasPrefix(entry.Name(), "ansiterm-") {
			rotatedFound = true
		}
	}
	assert.True(t, rotatedFound, "expected a rotated backup in %s", logDir)

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(len(data)))
}
