package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signals/core/logger"
)

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "test")),
	)
	log.Info("dispatched", logger.Signal("door"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "dispatched", record["msg"])
	assert.Equal(t, "test", record["service"])
	assert.Equal(t, "door", record["signal"])
}

func TestNew_LevelFilter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))
	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestNew_Presets(t *testing.T) {
	t.Parallel()

	t.Run("development", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("howto"), logger.WithOutput(&buf))
		log.Debug("debug record")

		out := buf.String()
		assert.Contains(t, out, "debug record")
		assert.Contains(t, out, "service=howto")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithProduction("howto"), logger.WithOutput(&buf))
		log.Debug("debug record")
		log.Info("info record")

		out := buf.String()
		assert.NotContains(t, out, "debug record")
		assert.True(t, strings.HasPrefix(out, "{"))
		assert.Contains(t, out, `"env":"production"`)
	})
}

func TestLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, logger.Level(in), "input %q", in)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	var jsonBuf, textBuf bytes.Buffer
	logger.New(logger.Format("JSON"), logger.WithOutput(&jsonBuf)).Info("x")
	logger.New(logger.Format("text"), logger.WithOutput(&textBuf)).Info("x")

	assert.True(t, strings.HasPrefix(jsonBuf.String(), "{"))
	assert.True(t, strings.HasPrefix(textBuf.String(), "time="))
}
