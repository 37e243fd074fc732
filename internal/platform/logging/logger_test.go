package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Format: FormatJSON, Level: LevelInfo, Output: &buf})

	logger.InfoContext(context.Background(), "dataset loaded", "teams", 6, "error", errors.New("boom"), "dangling")
	require.NoError(t, logger.Sync())

	var line map[string]any
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "dataset loaded", line["msg"])
	assert.Equal(t, "INFO", line["level"])
	assert.EqualValues(t, 6, line["teams"])
	assert.Equal(t, "boom", line["error"])
	assert.Contains(t, line, "dangling")
	assert.NotContains(t, line, "trace_id")
}

func TestLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Format: FormatJSON, Level: LevelWarn, Output: &buf})

	logger.Info("hidden")
	logger.Debug("hidden")
	assert.Zero(t, buf.Len())

	logger.Warn("shown")
	assert.NotZero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel(" warning "))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	assert.NotNil(t, logger.With("k", "v"))
	assert.NoError(t, logger.Sync())
}
