// Package signal provides strongly-typed, in-process publish/subscribe
// primitives: Signal, which broadcasts a value to every subscribed listener,
// and Map, which manages independent signals addressed by an identifier.
//
// Dispatch is synchronous. Every listener runs on the caller's goroutine, in
// subscription order (Dispatch) or reverse subscription order
// (DispatchInverse), before Dispatch returns.
//
// # Core Components
//
// Listener is a subscription handle around a func(A). Its pointer identity is
// what Add, AddOnce and Remove compare, so the same handle can be added twice
// without being subscribed twice. AddFunc and AddOnceFunc wrap a function and
// return the new handle.
//
// Signal owns the ordered listener list. AddOnce subscribes a listener for a
// single dispatch; it is unsubscribed when that dispatch completes.
//
// Map lazily creates one Signal per id on first Add, forwards Dispatch by id
// and offers bulk RemoveAllFor / RemoveAll with an optional forget step that
// drops the signal entirely.
//
// Subscriber and MapSubscriber are the subscription-only halves. Keep the
// *Signal or *Map private and expose these so outside code cannot dispatch:
//
//	type Player struct {
//		died *signal.Signal[Cause]
//	}
//
//	func (p *Player) Died() signal.Subscriber[Cause] { return p.died.Subscriber() }
//
// # Arguments
//
// A signal carries one argument type A. Use Void for signals without data and
// Args2, Args3 or Args4 (built with Pack2..Pack4) for several values:
//
//	moved := signal.New[signal.Args2[int, int]]()
//	moved.AddFunc(func(a signal.Args2[int, int]) {
//		x, y := a.Unpack()
//		fmt.Println(x, y)
//	})
//	moved.Dispatch(signal.Pack2(3, 4))
//
// NewRef and NewRefMap build signals over *A. All listeners of one dispatch
// share the pointer, so earlier listeners can adjust what later ones see.
//
// # Re-entrancy
//
// Listeners may modify the signal that is dispatching them:
//
//   - Remove is deferred until the dispatch ends. A removed listener that has
//     not run yet still runs in the current pass.
//   - Add appends immediately, but the dispatch only visits the listeners that
//     were subscribed when it started.
//   - RemoveAll empties the signal at once and stops the current pass.
//   - Dispatch on the same signal is queued and runs after the current pass,
//     before the outer Dispatch returns. Dispatching other signals runs inline.
//
// # Failures
//
// A panicking listener is not recovered: the remaining listeners of that pass
// do not run and the panic reaches the Dispatch caller. Pending removals are
// still applied and queued re-entrant dispatches are dropped. The abort is logged
// at error level through the logger set with WithLogger.
//
// # Concurrency
//
// Signal and Map perform no locking. Use them from one goroutine, or guard
// every call with the caller's own mutex.
package signal
