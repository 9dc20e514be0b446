package signal

// Void is the argument type of signals that carry no data.
type Void = struct{}

// Args2 carries two dispatch arguments.
type Args2[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Args3 carries three dispatch arguments.
type Args3[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

// Args4 carries four dispatch arguments.
type Args4[T1, T2, T3, T4 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

// Pack2 builds an Args2.
func Pack2[T1, T2 any](v1 T1, v2 T2) Args2[T1, T2] {
	return Args2[T1, T2]{V1: v1, V2: v2}
}

// Pack3 builds an Args3.
func Pack3[T1, T2, T3 any](v1 T1, v2 T2, v3 T3) Args3[T1, T2, T3] {
	return Args3[T1, T2, T3]{V1: v1, V2: v2, V3: v3}
}

// Pack4 builds an Args4.
func Pack4[T1, T2, T3, T4 any](v1 T1, v2 T2, v3 T3, v4 T4) Args4[T1, T2, T3, T4] {
	return Args4[T1, T2, T3, T4]{V1: v1, V2: v2, V3: v3, V4: v4}
}

// Unpack returns the arguments in order.
func (a Args2[T1, T2]) Unpack() (T1, T2) { return a.V1, a.V2 }

// Unpack returns the arguments in order.
func (a Args3[T1, T2, T3]) Unpack() (T1, T2, T3) { return a.V1, a.V2, a.V3 }

// Unpack returns the arguments in order.
func (a Args4[T1, T2, T3, T4]) Unpack() (T1, T2, T3, T4) { return a.V1, a.V2, a.V3, a.V4 }
