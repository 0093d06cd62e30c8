package main

import (
	"io"

	"github.com/rs/zerolog"
)

const logDate = `2006-01-02T15:04:05.000-07:00`

// newLogger writes human-readable log lines to w. --verbose lowers the level
// to debug regardless of --log-level.
func newLogger(cfg *Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if cfg.verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: logDate}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
