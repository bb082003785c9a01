package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(&buf, slog.LevelInfo)

	log.Debug("hidden")
	assert.Zero(t, buf.Len())

	log.Info("stick activated", "knob", 12.5)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "stick activated", entry["msg"])
	assert.Equal(t, 12.5, entry["knob"])
	assert.Contains(t, entry, "source")
}

func TestNopDoesNotPanic(t *testing.T) {
	log := Nop()
	log.Error("ignored", "err", "boom")
}
