// Package logging builds the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// RangeWarning is printed to stdout when the verbosity is outside 0..3.
const RangeWarning = "[Warning] Log Level should be in the range 0..3"

// ParseVerbosity maps the -v argument to a zerolog level:
// 0 error, 1 warn, 2 info, 3 debug. Non-numeric input counts as 0.
// The second return value is false when the number was out of range and the
// error level was substituted.
func ParseVerbosity(s string) (zerolog.Level, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		n = 0
	}
	switch n {
	case 0:
		return zerolog.ErrorLevel, true
	case 1:
		return zerolog.WarnLevel, true
	case 2:
		return zerolog.InfoLevel, true
	case 3:
		return zerolog.DebugLevel, true
	default:
		return zerolog.ErrorLevel, false
	}
}

// Config holds logging configuration
type Config struct {
	Level zerolog.Level
	// Console forces the human readable writer; when nil it is chosen by
	// checking whether Out is a terminal.
	Console *bool
	Out     io.Writer
}

// New creates a logger writing to cfg.Out (stderr when nil).
func New(cfg Config) (zerolog.Logger, error) {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if cfg.Level < zerolog.TraceLevel || cfg.Level > zerolog.Disabled {
		return zerolog.Nop(), fmt.Errorf("invalid log level %d", cfg.Level)
	}

	console := isTerminal(out)
	if cfg.Console != nil {
		console = *cfg.Console
	}
	if console {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.TimeOnly,
			NoColor:    !isTerminal(out),
		}
	}

	return zerolog.New(out).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger(), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
