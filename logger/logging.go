package logger

import (
	"os"

	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
	With().Timestamp().Logger().
	Level(zerolog.InfoLevel)

// SetLevel adjusts what gets written; Debug is off by default.
func SetLevel(l zerolog.Level) {
	log = log.Level(l)
}

func Debug(msg string, v ...interface{}) {
	log.Debug().Msgf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	log.Info().Msgf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	log.Error().Msgf(msg, v...)
}

func Fatal(msg string, v ...interface{}) {
	log.Fatal().Msgf(msg, v...)
}
