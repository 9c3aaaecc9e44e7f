package openapi

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logger.With("component", "registry").Debug("schema registered", "name", "Pet")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "component=registry")
	assert.Contains(t, out, "name=Pet")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
}

func TestNewSlogAdapter_NilUsesDefault(t *testing.T) {
	assert.NotNil(t, NewSlogAdapter(nil).logger)
}

func TestLoggerOrNop(t *testing.T) {
	assert.Equal(t, NopLogger{}, LoggerOrNop(nil))

	l := NewSlogAdapter(nil)
	assert.Same(t, l, LoggerOrNop(l))

	// NopLogger accepts every call.
	n := NopLogger{}.With("k", "v")
	n.Debug("d")
	n.Info("i")
	n.Warn("w")
	n.Error("e")
}
