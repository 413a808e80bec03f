package cmd

import (
	"io"

	"github.com/rs/zerolog"
)

// consoleLogger backs calculation.Logger with zerolog. Warnings and errors
// are always written; --debug lowers the level to include debug and info.
type consoleLogger struct {
	log zerolog.Logger
}

func newConsoleLogger(w io.Writer, debug bool) consoleLogger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return consoleLogger{log: zerolog.New(out).Level(level).With().Str("component", "engine").Logger()}
}

func (c consoleLogger) Debugf(format string, args ...any) { c.log.Debug().Msgf(format, args...) }
func (c consoleLogger) Infof(format string, args ...any)  { c.log.Info().Msgf(format, args...) }
func (c consoleLogger) Warnf(format string, args ...any)  { c.log.Warn().Msgf(format, args...) }
func (c consoleLogger) Errorf(format string, args ...any) { c.log.Error().Msgf(format, args...) }
