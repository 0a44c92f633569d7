package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var zlog zerolog.Logger

// Init initializes the structured logger. Pretty console output in
// development, JSON for production.
func Init(env string) {
	var w io.Writer

	if env == "development" || env == "dev" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	} else {
		w = os.Stdout
	}

	zlog = zerolog.New(w).With().
		Timestamp().
		Str("service", "bingoboard").
		Logger()

	zerolog.TimeFieldFormat = time.RFC3339
}

func Get() *zerolog.Logger {
	return &zlog
}
