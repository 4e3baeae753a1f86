package cliconfig

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger returns the CLI logger: console output on stderr at info level,
// or debug level when debug is set.
func Logger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
