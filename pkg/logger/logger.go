// Package logger holds the process-wide zerolog instance.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().
	Timestamp().
	Logger()
