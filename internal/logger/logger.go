// Package logger sets up the zerolog loggers used by the command line tools.
package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"

	consoleTimeFormat = "15:04:05.0000"
)

// Config of a logger. The zero value logs at info level as JSON to nowhere.
type Config struct {
	Level  string
	Format string
	Writer io.Writer
}

// New logger from cfg. Unknown levels and formats are errors.
func New(cfg Config) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if cfg.Level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(strings.ToLower(cfg.Level)); err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}
	w := cfg.Writer
	if w == nil {
		w = io.Discard
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	var l zerolog.Logger
	switch strings.ToLower(cfg.Format) {
	case FormatConsole:
		l = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: consoleTimeFormat})
	case FormatJSON, "":
		l = zerolog.New(w)
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q, expected %s or %s", cfg.Format, FormatConsole, FormatJSON)
	}
	return l.Level(lvl).With().Timestamp().Logger(), nil
}

// Component derives a logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
