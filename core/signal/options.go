package signal

import "log/slog"

// Option configures a Signal or a Map.
type Option func(*options)

type options struct {
	logger *slog.Logger
	name   string
}

func newOptions(opts []Option) options {
	o := options{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger used for dispatch diagnostics.
// If not set, slog.Default() is used.
//
// Example:
//
//	s := signal.New[int](signal.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName sets the name reported in log records.
// Signals created by a Map are named after the map and their id.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
