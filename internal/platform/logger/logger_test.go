package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiosk/internal/platform/config"
)

func TestJSONLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(config.Server{LogLevel: "warn", LogFormat: "json"}, &buf)

	log.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	log.Warn().Str("order_id", "abc").Msg("kept")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "kiosk", entry["service"])
	assert.Equal(t, "abc", entry["order_id"])
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	log := newWithWriter(config.Server{LogLevel: "chatty"}, &bytes.Buffer{})
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(config.Server{LogLevel: "debug", LogFormat: "console"}, &buf)

	log.Debug().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(buf.Bytes()))
}
