package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// setupLogging configures the package-level zerolog logger from
// TERM_TRANSCRIPT_LOG: a bare level name (trace, debug, info, warn,
// error) or empty to disable output entirely. Warnings logged here are
// the engine's downgraded unrecognized-escape and decode occurrences.
func setupLogging() zerolog.Logger {
	raw := os.Getenv("TERM_TRANSCRIPT_LOG")
	if raw == "" {
		return zerolog.New(io.Discard).Level(zerolog.Disabled)
	}
	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
