package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("should write json above the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(LogConfig{Level: "warn", Format: "json"}, &buf)
		require.NoError(t, err)

		logger.Info("dropped")
		logger.Warn("kept", "delivery_id", "d-1")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "kept", entry["msg"])
		assert.Equal(t, "d-1", entry["delivery_id"])
		assert.Equal(t, "delivery-tracking", entry["service"])
	})

	t.Run("should write text", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(LogConfig{Level: "debug", Format: "text"}, &buf)
		require.NoError(t, err)

		logger.Debug("hello")

		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("should reject an unknown level", func(t *testing.T) {
		_, err := NewLogger(LogConfig{Level: "loud", Format: "json"}, &bytes.Buffer{})

		assert.Error(t, err)
	})

	t.Run("should reject an unknown format", func(t *testing.T) {
		_, err := NewLogger(LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})

		assert.Error(t, err)
	})
}
