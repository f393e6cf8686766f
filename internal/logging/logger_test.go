package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithErrorAddsErrorField(t *testing.T) {
	var out bytes.Buffer
	logger := BuildLoggerWithOutput(&out, slog.LevelInfo)

	logger.WithError(errors.New("boom")).Error("Something failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "Something failed", entry["msg"])
	assert.Equal(t, "ERROR", entry["level"])
}

func TestLevelIsRespected(t *testing.T) {
	var out bytes.Buffer
	logger := BuildLoggerWithOutput(&out, slog.LevelWarn)

	logger.Info("hidden")
	assert.Zero(t, out.Len())
}
