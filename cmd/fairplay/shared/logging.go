package shared

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a config level name to a zerolog level, defaulting to warn
// so the interactive transcript stays clean.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// SetupLogger configures zerolog on stderr with pretty console output, or
// structured JSON when jsonFormat is set
func SetupLogger(level string, jsonFormat bool) zerolog.Logger {
	return NewLogger(os.Stderr, level, jsonFormat)
}

// NewLogger is SetupLogger with an explicit writer
func NewLogger(w io.Writer, level string, jsonFormat bool) zerolog.Logger {
	var logger zerolog.Logger
	if jsonFormat {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		logger = zerolog.New(w)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"})
	}

	return logger.Level(ParseLevel(level)).With().Timestamp().Logger()
}
