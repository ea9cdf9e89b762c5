package adapter

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cinedex.log")
	logger, closer, err := SetupLogger(&LoggingConfig{File: path, Level: "warn", MaxSizeMB: 1, MaxBackups: 1})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("catalog fetch failed", "page", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "catalog fetch failed", entry["msg"])
	assert.Equal(t, float64(3), entry["page"])
}

func TestSetupLogger_EmptyPath(t *testing.T) {
	_, _, err := SetupLogger(&LoggingConfig{})
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARNING"))
	assert.Equal(t, slog.LevelError, parseLogLevel("Error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("chatty"))
}
