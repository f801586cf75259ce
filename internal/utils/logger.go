package utils

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the application logger from LOG_LEVEL and LOG_FORMAT.
func NewLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(GetConfigDefault("LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if GetConfigDefault("LOG_FORMAT", "json") == "console" {
		return zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
