package signal

import (
	"fmt"
	"slices"
)

// Map manages independent signals addressed by an identifier of type K.
// A signal is created the first time a listener is added under an unseen id
// and lives until it is forgotten through RemoveAllFor or RemoveAll.
//
// The zero value is ready to use. Map is not safe for concurrent use.
//
// Example:
//
//	m := signal.NewMap[string, signal.Void]()
//	m.AddFunc("A", func(signal.Void) { fmt.Println("A fired") })
//	m.Dispatch("A", signal.Void{})
//	m.Dispatch("B", signal.Void{}) // no listeners, no-op
type Map[K comparable, A any] struct {
	byID  map[K]*Signal[A]
	order []*Signal[A]
	ids   []K
	opts  []Option
	name  string
}

// NewMap creates a map whose signals are configured with opts.
// Each signal is named "<name>[<id>]", where name comes from WithName.
func NewMap[K comparable, A any](opts ...Option) *Map[K, A] {
	o := newOptions(opts)
	return &Map[K, A]{
		opts: opts,
		name: o.name,
	}
}

// Add subscribes l to the signal for id, creating the signal if needed.
func (m *Map[K, A]) Add(id K, l *Listener[A]) {
	m.signal(id).Add(l)
}

// AddOnce subscribes l to the signal for id until the end of its next dispatch.
func (m *Map[K, A]) AddOnce(id K, l *Listener[A]) {
	m.signal(id).AddOnce(l)
}

// AddFunc subscribes fn to the signal for id and returns its handle.
func (m *Map[K, A]) AddFunc(id K, fn func(A)) *Listener[A] {
	return m.signal(id).AddFunc(fn)
}

// AddOnceFunc subscribes fn to the signal for id until the end of its next
// dispatch and returns its handle.
func (m *Map[K, A]) AddOnceFunc(id K, fn func(A)) *Listener[A] {
	return m.signal(id).AddOnceFunc(fn)
}

// Remove unsubscribes l from the signal for id. Unknown ids are ignored.
func (m *Map[K, A]) Remove(id K, l *Listener[A]) {
	if s, ok := m.byID[id]; ok {
		s.Remove(l)
	}
}

// Dispatch dispatches arg on the signal for id. Unknown ids are ignored.
func (m *Map[K, A]) Dispatch(id K, arg A) {
	if s, ok := m.byID[id]; ok {
		s.Dispatch(arg)
	}
}

// DispatchInverse dispatches arg on the signal for id in reverse subscription
// order. Unknown ids are ignored.
func (m *Map[K, A]) DispatchInverse(id K, arg A) {
	if s, ok := m.byID[id]; ok {
		s.DispatchInverse(arg)
	}
}

// RemoveAllFor unsubscribes every listener of the signal for id.
// With forget the signal is dropped as well, and the next Add under id
// starts from a fresh signal. Unknown ids are ignored.
func (m *Map[K, A]) RemoveAllFor(id K, forget bool) {
	s, ok := m.byID[id]
	if !ok {
		return
	}
	s.Clear()
	if !forget {
		return
	}

	delete(m.byID, id)
	if i := slices.Index(m.order, s); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
		m.ids = slices.Delete(m.ids, i, i+1)
	}
}

// RemoveAll unsubscribes every listener of every signal, in creation order.
// With forget all signals are dropped as well.
func (m *Map[K, A]) RemoveAll(forget bool) {
	for _, s := range m.order {
		s.Clear()
	}
	if !forget {
		return
	}

	clear(m.byID)
	clear(m.order)
	m.order = m.order[:0]
	clear(m.ids)
	m.ids = m.ids[:0]
}

// Clear unsubscribes and forgets every signal.
func (m *Map[K, A]) Clear() {
	m.RemoveAll(true)
}

// Has reports whether a signal exists for id.
func (m *Map[K, A]) Has(id K) bool {
	_, ok := m.byID[id]
	return ok
}

// HasSubscribers reports whether the signal for id has at least one listener.
func (m *Map[K, A]) HasSubscribers(id K) bool {
	s, ok := m.byID[id]
	return ok && s.HasSubscribers()
}

// Len returns the number of live signals.
func (m *Map[K, A]) Len() int {
	return len(m.order)
}

// IDs returns the ids of live signals in creation order.
func (m *Map[K, A]) IDs() []K {
	return slices.Clone(m.ids)
}

// Subscriber returns a view of m that can manage subscriptions but not dispatch.
func (m *Map[K, A]) Subscriber() MapSubscriber[K, A] {
	return mapSubscriberView[K, A]{m: m}
}

// signal returns the signal for id, creating and registering it on first use.
func (m *Map[K, A]) signal(id K) *Signal[A] {
	if s, ok := m.byID[id]; ok {
		return s
	}
	if m.byID == nil {
		m.byID = make(map[K]*Signal[A])
	}

	opts := append(slices.Clip(m.opts), WithName(fmt.Sprintf("%s[%v]", m.name, id)))
	s := New[A](opts...)

	m.byID[id] = s
	m.order = append(m.order, s)
	m.ids = append(m.ids, id)
	return s
}
