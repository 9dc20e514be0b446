// Command howto walks through the signal package: a plain signal, a signal
// with arguments, a signal map, a by-reference signal and an order tracker
// keyed by uuid.
package main

import (
	"log/slog"
	"os"

	"github.com/dmitrymomot/signals/core/config"
	"github.com/dmitrymomot/signals/core/logger"
	"github.com/dmitrymomot/signals/core/signal"
)

// Config is read from the environment (or a .env file).
type Config struct {
	Service   string `env:"HOWTO_SERVICE" envDefault:"howto"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithLevel(logger.Level(cfg.LogLevel)),
		logger.Format(cfg.LogFormat),
		logger.WithOutput(os.Stdout),
		logger.WithAttr(slog.String("service", cfg.Service)),
	)

	run(log)
}

func run(log *slog.Logger) {
	simple := NewSimple(log)
	simple.Signal().AddFunc(func(signal.Void) {
		log.Info("callback was called", logger.Component("simple"))
	})
	simple.Fire()

	args := NewArguments(log)
	args.Signal().AddFunc(func(a signal.Args2[int, string]) {
		n, s := a.Unpack()
		log.Info("callback was called", logger.Component("arguments"), slog.Int("arg1", n), slog.String("arg2", s))
	})
	args.Fire(777, "FOO")

	doors := NewDoors(log)
	doors.Signals().AddFunc(DoorA, func(signal.Void) { log.Info("callback A was called", logger.Component("map")) })
	doors.Signals().AddFunc(DoorA, func(signal.Void) { log.Info("second callback A was called", logger.Component("map")) })
	doors.Signals().AddFunc(DoorB, func(signal.Void) { log.Info("callback B was called", logger.Component("map")) })
	doors.Fire(DoorA)
	doors.Fire(DoorB)

	armour := NewCombat(log)
	armour.Hit().AddFunc(func(d *Damage) { d.Amount /= 2 })
	armour.Hit().AddFunc(func(d *Damage) {
		log.Info("damage taken", logger.Component("ref"), slog.Int("amount", d.Amount))
	})
	armour.Strike(10)

	orders := NewOrders(log)
	id := orders.Place()
	orders.Updates().AddOnceFunc(id, func(s OrderStatus) {
		log.Info("first status change", logger.Component("orders"), logger.ID("order_id", id), slog.String("status", string(s)))
	})
	orders.Advance(id, StatusPaid)
	orders.Advance(id, StatusShipped)
	orders.Close(id)
}
