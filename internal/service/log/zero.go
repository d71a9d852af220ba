package log

import (
	"io"

	"github.com/rs/zerolog"
)

// Config is the configuration of the zerolog based logger.
type Config struct {
	Output io.Writer
	Debug  bool
}

type zero struct {
	logger zerolog.Logger
}

// NewZero returns a zerolog based logger.
func NewZero(cfg Config) Logger {
	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: cfg.Output}).
		With().Timestamp().Logger().
		Level(level)

	return zero{logger: logger}
}

func (z zero) Infof(format string, args ...interface{}) {
	z.logger.Info().Msgf(format, args...)
}

func (z zero) Warningf(format string, args ...interface{}) {
	z.logger.Warn().Msgf(format, args...)
}

func (z zero) Errorf(format string, args ...interface{}) {
	z.logger.Error().Msgf(format, args...)
}

func (z zero) Debugf(format string, args ...interface{}) {
	z.logger.Debug().Msgf(format, args...)
}
