package main

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signals/core/logger"
	"github.com/dmitrymomot/signals/core/signal"
)

// Simple owns a signal without arguments. The signal stays private; Signal
// exposes subscription management only.
type Simple struct {
	fired *signal.Signal[signal.Void]
}

func NewSimple(log *slog.Logger) *Simple {
	return &Simple{fired: signal.New[signal.Void](signal.WithLogger(log), signal.WithName("simple"))}
}

func (s *Simple) Signal() signal.Subscriber[signal.Void] { return s.fired.Subscriber() }

func (s *Simple) Fire() { s.fired.Dispatch(signal.Void{}) }

// Arguments owns a signal carrying two values.
type Arguments struct {
	fired *signal.Signal[signal.Args2[int, string]]
}

func NewArguments(log *slog.Logger) *Arguments {
	return &Arguments{fired: signal.New[signal.Args2[int, string]](signal.WithLogger(log), signal.WithName("arguments"))}
}

func (a *Arguments) Signal() signal.Subscriber[signal.Args2[int, string]] { return a.fired.Subscriber() }

func (a *Arguments) Fire(n int, s string) { a.fired.Dispatch(signal.Pack2(n, s)) }

// DoorID addresses a door signal.
type DoorID string

const (
	DoorA DoorID = "A"
	DoorB DoorID = "B"
)

// Doors owns one signal per door id.
type Doors struct {
	opened *signal.Map[DoorID, signal.Void]
	log    *slog.Logger
}

func NewDoors(log *slog.Logger) *Doors {
	return &Doors{
		opened: signal.NewMap[DoorID, signal.Void](signal.WithLogger(log), signal.WithName("doors")),
		log:    log,
	}
}

func (d *Doors) Signals() signal.MapSubscriber[DoorID, signal.Void] { return d.opened.Subscriber() }

func (d *Doors) Fire(id DoorID) {
	d.log.Debug("dispatching", logger.ID("door", id))
	d.opened.Dispatch(id, signal.Void{})
}

// Damage is passed by reference so listeners can reduce it in turn.
type Damage struct {
	Amount int
}

// Combat owns a by-reference signal.
type Combat struct {
	hit *signal.Signal[*Damage]
}

func NewCombat(log *slog.Logger) *Combat {
	return &Combat{hit: signal.NewRef[Damage](signal.WithLogger(log), signal.WithName("hit"))}
}

func (c *Combat) Hit() signal.Subscriber[*Damage] { return c.hit.Subscriber() }

// Strike dispatches one shared Damage through every listener in order.
func (c *Combat) Strike(amount int) {
	c.hit.Dispatch(&Damage{Amount: amount})
}

// OrderStatus is the state an order moves to.
type OrderStatus string

const (
	StatusPlaced  OrderStatus = "placed"
	StatusPaid    OrderStatus = "paid"
	StatusShipped OrderStatus = "shipped"
)

// Orders notifies per-order listeners of status changes.
type Orders struct {
	updates *signal.Map[uuid.UUID, OrderStatus]
	status  map[uuid.UUID]OrderStatus
	log     *slog.Logger
}

func NewOrders(log *slog.Logger) *Orders {
	return &Orders{
		updates: signal.NewMap[uuid.UUID, OrderStatus](signal.WithLogger(log), signal.WithName("orders")),
		status:  make(map[uuid.UUID]OrderStatus),
		log:     log,
	}
}

func (o *Orders) Updates() signal.MapSubscriber[uuid.UUID, OrderStatus] { return o.updates.Subscriber() }

// Place registers a new order and returns its id.
func (o *Orders) Place() uuid.UUID {
	id := uuid.New()
	o.status[id] = StatusPlaced
	return id
}

// Advance moves an order to status and notifies its listeners.
// Unknown orders are ignored.
func (o *Orders) Advance(id uuid.UUID, status OrderStatus) {
	if _, ok := o.status[id]; !ok {
		return
	}
	o.status[id] = status
	o.updates.Dispatch(id, status)
}

// Status returns the current status of an order.
func (o *Orders) Status(id uuid.UUID) (OrderStatus, bool) {
	s, ok := o.status[id]
	return s, ok
}

// Close forgets the order and its signal.
func (o *Orders) Close(id uuid.UUID) {
	delete(o.status, id)
	o.updates.RemoveAllFor(id, true)
	o.log.Debug("order closed", logger.ID("order_id", id))
}
