package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signals/core/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("dispatch", slog.String("signal", "door"), slog.Int("listeners", 2))
	require.Equal(t, "dispatch", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "signal", g[0].Key)
	assert.Equal(t, "listeners", g[1].Key)
}

// ============================================================================
// Error Handling Tests
// ============================================================================

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
}

// ============================================================================
// Signal Attribute Tests
// ============================================================================

func TestSignalAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		attr  slog.Attr
		key   string
		value any
	}{
		{name: "signal", attr: logger.Signal("door.opened"), key: "signal", value: "door.opened"},
		{name: "listeners", attr: logger.Listeners(3), key: "listeners", value: int64(3)},
		{name: "index", attr: logger.Index(1), key: "index", value: int64(1)},
		{name: "inverse", attr: logger.Inverse(true), key: "inverse", value: true},
		{name: "component", attr: logger.Component("howto"), key: "component", value: "howto"},
		{name: "id", attr: logger.ID("order_id", "ord-1"), key: "order_id", value: "ord-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.value, tt.attr.Value.Any())
		})
	}
}

func TestEmptyAttrs(t *testing.T) {
	t.Parallel()
	assert.True(t, logger.Signal("").Equal(slog.Attr{}))
	assert.True(t, logger.ID("order_id", nil).Equal(slog.Attr{}))
}
