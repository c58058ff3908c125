// Package log provides structured logging for the ulid CLI.
//
// The Logger interface fronts a log/slog pipeline: records flow through a
// bridge handler into a Formatter (text or JSON) and one or more Outputs.
// Construct a Logger once and pass it explicitly; there is no package-level
// default.
//
//	logger := log.NewLogger(
//		log.WithLevel(log.InfoLevel),
//		log.WithFormatter(&log.TextFormatter{}),
//		log.WithOutput(log.NewConsoleOutput()),
//	)
//	logger.Info("converted", log.F("from", "hex"), log.F("to", "canonical"))
package log
