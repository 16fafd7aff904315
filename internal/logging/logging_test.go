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

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Level: slog.LevelInfo})

	log.Debug("hidden")
	log.Info("stride", "value", 512)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=stride")
	assert.Contains(t, out, "value=512")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Level: slog.LevelDebug, JSON: true})
	log.Debug("shape", "rows", 99, "cols", 257)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shape", rec["msg"])
	assert.Equal(t, float64(99), rec["rows"])
	assert.Equal(t, "DEBUG", rec["level"])
}

func TestErrorKeepsChain(t *testing.T) {
	sentinel := errors.New("boom")
	attr := Error(sentinel)
	assert.Equal(t, "error", attr.Key)

	err, ok := attr.Value.Any().(error)
	require.True(t, ok)
	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "boom")

	assert.Nil(t, Error(nil).Value.Any())
}
