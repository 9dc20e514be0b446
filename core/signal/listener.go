package signal

// Listener is a subscription handle wrapping a callback.
// Go func values are not comparable, so the handle's pointer identity is what
// Add, AddOnce and Remove use to recognise a callback.
//
// Example:
//
//	l := signal.NewListener(func(n int) { fmt.Println(n) })
//	s.Add(l)
//	s.Add(l) // no-op, already subscribed
//	s.Remove(l)
type Listener[A any] struct {
	fn func(A)
}

// NewListener wraps fn into a handle that can be added to and removed from signals.
// A nil fn yields a handle that ignores dispatches.
func NewListener[A any](fn func(A)) *Listener[A] {
	return &Listener[A]{fn: fn}
}

// Call invokes the wrapped callback.
func (l *Listener[A]) Call(arg A) {
	if l == nil || l.fn == nil {
		return
	}
	l.fn(arg)
}
