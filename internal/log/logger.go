package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats understood by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New builds the process logger. Unknown levels fall back to info; the
// console format is human-readable, json emits raw lines for shippers.
func New(level, format string) *zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	logger := zerolog.New(writerFor(format)).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
	return &logger
}

func writerFor(format string) io.Writer {
	if strings.ToLower(format) == FormatJSON {
		return os.Stdout
	}
	return zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
}

func parseLevel(level string) zerolog.Level {
	// zerolog does not know "warning", so normalize before parsing.
	if strings.EqualFold(level, "warning") {
		level = "warn"
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
