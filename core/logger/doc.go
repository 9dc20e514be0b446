// Package logger builds slog loggers and provides attribute helpers shared by
// the signal package's diagnostics and by applications embedding it.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/signals/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("myapp"))
//
//	// Production: JSON format, info level
//	log := logger.New(
//		logger.WithProduction("myapp"),
//		logger.WithOutput(os.Stderr),
//	)
//
// Level and Format turn configuration strings into settings:
//
//	log := logger.New(
//		logger.WithLevel(logger.Level(cfg.LogLevel)),
//		logger.Format(cfg.LogFormat),
//	)
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, which slog
// discards, so they are safe to pass without checks:
//
//	log.Error("dispatch aborted by listener",
//		logger.Signal("door.opened"),
//		logger.Index(2),
//		logger.Listeners(5),
//	)
//
//	log.Warn("cleanup failed", logger.Error(err))
package logger
