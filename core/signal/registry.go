package signal

import "slices"

// registry holds the ordered set of subscribed listeners and defers removals
// requested while a dispatch is walking the list.
//
// C is opaque to the registry; it only needs to be comparable.
type registry[C comparable] struct {
	subscribers []C
	once        map[C]struct{}
	pending     []C
	dispatching bool
	generation  uint64
}

// add appends c as a persistent subscription unless it is already subscribed.
func (r *registry[C]) add(c C) {
	if r.has(c) {
		return
	}
	r.subscribers = append(r.subscribers, c)
	delete(r.once, c)
}

// addOnce appends c and marks it fire-once unless it is already subscribed.
func (r *registry[C]) addOnce(c C) {
	if r.has(c) {
		return
	}
	r.subscribers = append(r.subscribers, c)
	if r.once == nil {
		r.once = make(map[C]struct{})
	}
	r.once[c] = struct{}{}
}

// remove unsubscribes c. While dispatching the removal is queued and applied
// by postDispatch, so the live list is never mutated under the walk.
func (r *registry[C]) remove(c C) {
	if r.dispatching {
		r.pending = append(r.pending, c)
		return
	}
	r.drop(c)
}

// removeAll is a hard reset. Safe mid-dispatch: the walk observes the
// generation change and stops.
func (r *registry[C]) removeAll() {
	clear(r.subscribers)
	r.subscribers = r.subscribers[:0]
	clear(r.once)
	clear(r.pending)
	r.pending = r.pending[:0]
	r.generation++
}

// beginDispatch opens the dispatch bracket and returns the number of
// listeners the walk may visit and the generation it started in.
func (r *registry[C]) beginDispatch() (count int, generation uint64) {
	r.dispatching = true
	return len(r.subscribers), r.generation
}

// at returns the listener at index i, or false once the walk must stop.
func (r *registry[C]) at(i int, generation uint64) (C, bool) {
	var zero C
	if generation != r.generation || i < 0 || i >= len(r.subscribers) {
		return zero, false
	}
	return r.subscribers[i], true
}

// fired queues a fire-once listener for removal at the end of the current
// dispatch. Persistent listeners are left alone.
func (r *registry[C]) fired(c C) {
	if _, ok := r.once[c]; ok {
		r.pending = append(r.pending, c)
	}
}

// postDispatch drains queued removals and closes the dispatch bracket.
func (r *registry[C]) postDispatch() {
	for _, c := range r.pending {
		r.drop(c)
	}
	clear(r.pending)
	r.pending = r.pending[:0]
	r.dispatching = false
}

func (r *registry[C]) drop(c C) {
	if i := slices.Index(r.subscribers, c); i >= 0 {
		r.subscribers = slices.Delete(r.subscribers, i, i+1)
	}
	delete(r.once, c)
}

func (r *registry[C]) has(c C) bool {
	return slices.Contains(r.subscribers, c)
}

func (r *registry[C]) isOnce(c C) bool {
	_, ok := r.once[c]
	return ok
}

func (r *registry[C]) len() int {
	return len(r.subscribers)
}
