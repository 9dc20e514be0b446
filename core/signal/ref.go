package signal

// NewRef creates a signal whose listeners share one *A per dispatch.
// A listener may mutate the value, and listeners later in the same dispatch
// observe the change. Useful for large values that should not be copied, or
// for letting later listeners veto earlier ones with DispatchInverse.
//
// Example:
//
//	type Damage struct{ Amount int }
//
//	s := signal.NewRef[Damage]()
//	s.AddFunc(func(d *Damage) { d.Amount /= 2 }) // armour
//	s.AddFunc(func(d *Damage) { hp -= d.Amount })
//	s.Dispatch(&Damage{Amount: 10})
func NewRef[A any](opts ...Option) *Signal[*A] {
	return New[*A](opts...)
}

// NewRefMap creates a map of by-reference signals.
func NewRefMap[K comparable, A any](opts ...Option) *Map[K, *A] {
	return NewMap[K, *A](opts...)
}
