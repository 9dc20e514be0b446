package signal

import (
	"log/slog"

	"github.com/dmitrymomot/signals/core/logger"
)

// Signal dispatches an argument of type A to every subscribed listener,
// synchronously and in subscription order.
//
// Listeners may call Add, AddOnce, Remove and Dispatch on the same signal while
// it is dispatching:
//   - a removed listener still receives the current dispatch and none after it;
//   - an added listener is first invoked by the next dispatch;
//   - a nested Dispatch is queued and runs once the current pass has finished.
//
// The zero value is ready to use. Signal is not safe for concurrent use;
// callers sharing one across goroutines must synchronise externally.
type Signal[A any] struct {
	reg    registry[*Listener[A]]
	queued []queuedDispatch[A]
	logger *slog.Logger
	name   string
}

type queuedDispatch[A any] struct {
	arg     A
	inverse bool
}

// New creates a signal configured with opts.
//
// Example:
//
//	type Door struct {
//	    opened *signal.Signal[string]
//	}
//
//	func (d *Door) Opened() signal.Subscriber[string] { return d.opened.Subscriber() }
func New[A any](opts ...Option) *Signal[A] {
	o := newOptions(opts)
	return &Signal[A]{
		logger: o.logger,
		name:   o.name,
	}
}

// HasSubscribers reports whether at least one listener is subscribed.
func (s *Signal[A]) HasSubscribers() bool {
	return s.reg.len() > 0
}

// Len returns the number of subscribed listeners, including those whose
// removal is pending until the current dispatch ends.
func (s *Signal[A]) Len() int {
	return s.reg.len()
}

// Has reports whether l is subscribed.
func (s *Signal[A]) Has(l *Listener[A]) bool {
	return l != nil && s.reg.has(l)
}

// Add subscribes l. Adding an already subscribed listener is a no-op.
func (s *Signal[A]) Add(l *Listener[A]) {
	if l == nil {
		return
	}
	s.reg.add(l)
}

// AddOnce subscribes l for a single dispatch; it is unsubscribed once that
// dispatch completes. Adding an already subscribed listener is a no-op.
func (s *Signal[A]) AddOnce(l *Listener[A]) {
	if l == nil {
		return
	}
	s.reg.addOnce(l)
}

// AddFunc subscribes fn and returns its handle.
func (s *Signal[A]) AddFunc(fn func(A)) *Listener[A] {
	l := NewListener(fn)
	s.reg.add(l)
	return l
}

// AddOnceFunc subscribes fn for a single dispatch and returns its handle.
func (s *Signal[A]) AddOnceFunc(fn func(A)) *Listener[A] {
	l := NewListener(fn)
	s.reg.addOnce(l)
	return l
}

// Remove unsubscribes l. Removing an unknown listener is a no-op.
// During a dispatch the removal takes effect when that dispatch ends.
func (s *Signal[A]) Remove(l *Listener[A]) {
	if l == nil {
		return
	}
	s.reg.remove(l)
}

// RemoveAll unsubscribes every listener immediately, including during a
// dispatch, in which case the walk stops at the next listener.
func (s *Signal[A]) RemoveAll() {
	s.reg.removeAll()
}

// Clear is an alias for RemoveAll.
func (s *Signal[A]) Clear() {
	s.RemoveAll()
}

// Dispatch invokes every listener subscribed at the moment of the call with
// arg, in subscription order.
func (s *Signal[A]) Dispatch(arg A) {
	s.dispatch(arg, false)
}

// DispatchInverse invokes every listener subscribed at the moment of the call
// with arg, in reverse subscription order.
func (s *Signal[A]) DispatchInverse(arg A) {
	s.dispatch(arg, true)
}

// Subscriber returns a view of s that can manage subscriptions but not dispatch.
func (s *Signal[A]) Subscriber() Subscriber[A] {
	return subscriberView[A]{s: s}
}

func (s *Signal[A]) dispatch(arg A, inverse bool) {
	if s.reg.dispatching {
		s.queued = append(s.queued, queuedDispatch[A]{arg: arg, inverse: inverse})
		s.log().Debug("re-entrant dispatch queued",
			logger.Signal(s.name),
			logger.Inverse(inverse),
			slog.Int("queued", len(s.queued)),
		)
		return
	}

	defer s.dropQueue()

	s.walk(arg, inverse)
	for i := 0; i < len(s.queued); i++ {
		q := s.queued[i]
		s.walk(q.arg, q.inverse)
	}
}

// walk runs one dispatch pass. The deferred postDispatch keeps the registry
// consistent when a listener panics; the panic itself is not recovered.
func (s *Signal[A]) walk(arg A, inverse bool) {
	count, gen := s.reg.beginDispatch()
	i, done := 0, false

	defer func() {
		s.reg.postDispatch()
		if !done {
			s.log().Error("dispatch aborted by listener",
				logger.Signal(s.name),
				logger.Index(i),
				logger.Listeners(count),
				logger.Inverse(inverse),
			)
		}
	}()

	if inverse {
		for i = count - 1; i >= 0; i-- {
			l, ok := s.reg.at(i, gen)
			if !ok {
				break
			}
			s.reg.fired(l)
			l.Call(arg)
		}
	} else {
		for i = 0; i < count; i++ {
			l, ok := s.reg.at(i, gen)
			if !ok {
				break
			}
			s.reg.fired(l)
			l.Call(arg)
		}
	}
	done = true
}

func (s *Signal[A]) dropQueue() {
	clear(s.queued)
	s.queued = s.queued[:0]
}

func (s *Signal[A]) log() *slog.Logger {
	if s.logger == nil {
		return slog.Default()
	}
	return s.logger
}
