package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is a wrapper around zerolog.Logger
type Logger struct {
	zerolog.Logger
}

// Options contains options for creating a logger
type Options struct {
	Output  io.Writer
	Verbose bool
}

// New creates a logger writing human-readable lines. Without Verbose the
// logger is disabled and writes nothing.
func New(opts Options) *Logger {
	var output io.Writer = os.Stderr
	if opts.Output != nil {
		output = opts.Output
	}

	level := zerolog.Disabled
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:          output,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}).Level(level)

	return &Logger{Logger: logger}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// WithComponent returns a logger with a component field
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.Logger.With().Str("component", component).Logger(),
	}
}
