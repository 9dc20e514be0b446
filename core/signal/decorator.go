package signal

import (
	"log/slog"

	"github.com/dmitrymomot/signals/core/logger"
)

// Decorator wraps a listener function to add cross-cutting behaviour.
//
// Example:
//
//	fn := signal.Decorate(onMove,
//	    signal.Filter(func(p Point) bool { return p.X >= 0 }),
//	    signal.Logged[Point](log, "move"),
//	)
//	s.AddFunc(fn)
type Decorator[A any] func(func(A)) func(A)

// Decorate applies decorators to fn. The first decorator becomes the
// outermost wrapper and runs first.
func Decorate[A any](fn func(A), decorators ...Decorator[A]) func(A) {
	for i := len(decorators) - 1; i >= 0; i-- {
		fn = decorators[i](fn)
	}
	return fn
}

// Filter only forwards arguments for which keep returns true.
func Filter[A any](keep func(A) bool) Decorator[A] {
	return func(next func(A)) func(A) {
		return func(arg A) {
			if keep(arg) {
				next(arg)
			}
		}
	}
}

// Logged records a debug entry each time the listener is invoked.
func Logged[A any](log *slog.Logger, name string) Decorator[A] {
	if log == nil {
		log = slog.Default()
	}
	return func(next func(A)) func(A) {
		return func(arg A) {
			log.Debug("listener invoked", logger.Component(name), slog.Any("arg", arg))
			next(arg)
		}
	}
}
