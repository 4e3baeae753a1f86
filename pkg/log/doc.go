// Package log is the logging abstraction used by the Redmine transport.
//
// Library code logs through [Logger]; nothing is written unless the caller
// supplies one. [NewZerologAdapter] writes human-readable console output,
// [NewZerologAdapterWithLogger] wraps an existing zerolog.Logger, and
// [NewNoopLogger] discards everything.
//
//	lg := log.NewZerologAdapter(os.Stderr, zerolog.DebugLevel)
//	t, err := transport.New(builder, registry, transport.WithLogger(lg))
package log
