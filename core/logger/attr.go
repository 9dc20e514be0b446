package logger

import (
	"log/slog"
	"strconv"
)

// Attribute helpers return an empty Attr for nil or empty input, which slog
// drops, so callers can pass them unconditionally.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// ============================================================================
// Error Handling
// ============================================================================

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups multiple non-nil errors under the key "errors", keyed by
// their position in errs.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// ============================================================================
// Signals
// ============================================================================

// Signal creates an attribute naming a signal. Unnamed signals are omitted.
func Signal(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("signal", name)
}

// Listeners creates an attribute for the number of listeners a dispatch captured.
func Listeners(n int) slog.Attr {
	return slog.Int("listeners", n)
}

// Index creates an attribute for the listener position a dispatch reached.
func Index(i int) slog.Attr {
	return slog.Int("index", i)
}

// Inverse creates an attribute telling whether a dispatch walks in reverse order.
func Inverse(inverse bool) slog.Attr {
	return slog.Bool("inverse", inverse)
}

// ============================================================================
// Generic Metadata
// ============================================================================

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// ID creates an identifier attribute with a custom key.
func ID(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}
