// Package log provides the logging abstraction used by noisefetch.
//
// Library code never writes to stderr directly. It logs through the
// [Logger] interface, which defaults to [NoopLogger] and is usually backed
// by zerolog in the CLI:
//
//	logger := log.NewZerologLogger(zerolog.New(os.Stderr))
//	c, err := noisefetch.New(cfg, noisefetch.WithLogger(logger))
//
// [Logger.With] returns a child logger carrying extra fields; the runner uses
// it to tag every line of a fetch with its run ID.
package log
