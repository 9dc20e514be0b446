package signal

// Subscriber is the subscription half of a Signal. Owners keep the *Signal
// private and expose this interface, so outside code can listen but never
// dispatch.
type Subscriber[A any] interface {
	// HasSubscribers reports whether at least one listener is subscribed.
	HasSubscribers() bool

	// Add subscribes l. Adding an already subscribed listener is a no-op.
	Add(l *Listener[A])

	// AddOnce subscribes l until the end of the next dispatch.
	AddOnce(l *Listener[A])

	// AddFunc subscribes fn and returns its handle.
	AddFunc(fn func(A)) *Listener[A]

	// AddOnceFunc subscribes fn until the end of the next dispatch and returns its handle.
	AddOnceFunc(fn func(A)) *Listener[A]

	// Remove unsubscribes l.
	Remove(l *Listener[A])
}

// MapSubscriber is the subscription half of a Map.
type MapSubscriber[K comparable, A any] interface {
	HasSubscribers(id K) bool
	Add(id K, l *Listener[A])
	AddOnce(id K, l *Listener[A])
	AddFunc(id K, fn func(A)) *Listener[A]
	AddOnceFunc(id K, fn func(A)) *Listener[A]
	Remove(id K, l *Listener[A])
}

// subscriberView hides the dispatching methods of a Signal behind a value
// that cannot be type-asserted back to *Signal.
type subscriberView[A any] struct {
	s *Signal[A]
}

func (v subscriberView[A]) HasSubscribers() bool { return v.s.HasSubscribers() }
func (v subscriberView[A]) Add(l *Listener[A]) { v.s.Add(l) }
func (v subscriberView[A]) AddOnce(l *Listener[A]) { v.s.AddOnce(l) }
func (v subscriberView[A]) AddFunc(fn func(A)) *Listener[A] { return v.s.AddFunc(fn) }
func (v subscriberView[A]) AddOnceFunc(fn func(A)) *Listener[A] { return v.s.AddOnceFunc(fn) }
func (v subscriberView[A]) Remove(l *Listener[A]) { v.s.Remove(l) }

type mapSubscriberView[K comparable, A any] struct {
	m *Map[K, A]
}

func (v mapSubscriberView[K, A]) HasSubscribers(id K) bool { return v.m.HasSubscribers(id) }
func (v mapSubscriberView[K, A]) Add(id K, l *Listener[A]) { v.m.Add(id, l) }
func (v mapSubscriberView[K, A]) AddOnce(id K, l *Listener[A]) { v.m.AddOnce(id, l) }
func (v mapSubscriberView[K, A]) AddFunc(id K, fn func(A)) *Listener[A] {
	return v.m.AddFunc(id, fn)
}
func (v mapSubscriberView[K, A]) AddOnceFunc(id K, fn func(A)) *Listener[A] {
	return v.m.AddOnceFunc(id, fn)
}
func (v mapSubscriberView[K, A]) Remove(id K, l *Listener[A]) { v.m.Remove(id, l) }
