package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Info("hidden %d", 1)
	log.Warn("storage slot %s unreadable", "scheduler-bookings-v1")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "storage slot scheduler-bookings-v1 unreadable")
	assert.Contains(t, out, "level=WARN")
}
