// Package logging configures zerolog for the agent, the CLI and the
// development backend.
package logging

import (
	"io"
	stdLog "log"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logWriter io.Writer = zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.RFC3339,
}

// stdLogWriter forwards stdlib log output (net/http server errors and the
// like) into zerolog at debug level.
type stdLogWriter struct {
	logger zerolog.Logger
}

func (w *stdLogWriter) Write(p []byte) (int, error) {
	w.logger.Debug().Str("origin", "stdlog").Msg(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

func init() {
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
}

// ConfigureGlobalLogging sets the global level and rebuilds log.Logger on the
// current writer. An unknown level falls back to error.
func ConfigureGlobalLogging(levelStr string) {
	ConfigureGlobal(ParseLevel(levelStr))
}

// ConfigureGlobal is ConfigureGlobalLogging for an already parsed level.
func ConfigureGlobal(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)

	logContext := zerolog.New(logWriter).With().Timestamp()
	if level <= zerolog.DebugLevel {
		logContext = logContext.Caller()
	}
	log.Logger = logContext.Logger().Level(level)
	zerolog.DefaultContextLogger = &log.Logger

	stdLog.SetFlags(0)
	stdLog.SetOutput(&stdLogWriter{logger: log.Logger})
}

// ParseLevel converts a level name to a zerolog.Level. Empty or unknown
// names yield ErrorLevel.
func ParseLevel(levelString string) zerolog.Level {
	if levelString == "" {
		return zerolog.ErrorLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(levelString))
	if err != nil || level == zerolog.NoLevel {
		log.Error().Err(err).
			Str("logLevel", levelString).
			Msg("Invalid log level provided. Defaulting to error level.")
		return zerolog.ErrorLevel
	}
	return level
}

// SetLogWriter replaces the writer used by subsequently built loggers.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// NewLogger returns a component logger on the global writer.
func NewLogger(component string, level zerolog.Level) zerolog.Logger {
	return NewLoggerWithWriter(component, level, logWriter)
}

// NewLoggerWithWriter returns a JSON component logger writing to w.
func NewLoggerWithWriter(component string, level zerolog.Level, w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}

// Component derives a child of the global logger tagged with component.
func Component(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}
