// Package logger configures the process-wide zerolog logger.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init installs the global logger. Development gets a human readable console
// writer, every other environment gets JSON lines on stderr.
func Init(appEnv, service string) {
	zerolog.TimeFieldFormat = time.RFC3339

	var base zerolog.Logger
	if appEnv == "development" {
		base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		base = zerolog.New(os.Stderr)
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Logger = base.With().Timestamp().Str("service", service).Logger()
	zerolog.DefaultContextLogger = &log.Logger
}
