package adapters

import (
	"generate-persona-audio/application/ports/outbound"
	"io"
	"os"

	"github.com/rs/zerolog"
)

type zerologWrapper struct {
	logger zerolog.Logger
}

// NewZerologWrapper returns a LoggerPort writing to the given sink.
func NewZerologWrapper(w io.Writer) outbound.LoggerPort {
	return &zerologWrapper{
		logger: zerolog.New(w).With().Timestamp().Logger(),
	}
}

// NewRunLogWriter combines stderr console output with an append-only
// run log file. The returned closer releases the file handle.
func NewRunLogWriter(path string) (io.Writer, io.Closer, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	console := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.MultiLevelWriter(console, file), file, nil
}

func (z *zerologWrapper) Info(msg string) {
	z.logger.Info().Msg(msg)
}

func (z *zerologWrapper) Error(err error, msg string) {
	z.logger.Error().Err(err).Msg(msg)
}

func (z *zerologWrapper) Warn(msg string) {
	z.logger.Warn().Msg(msg)
}

func (z *zerologWrapper) InfoWithFields(msg string, fields map[string]interface{}) {
	z.logger.Info().Fields(fields).Msg(msg)
}

func (z *zerologWrapper) ErrorWithFields(err error, msg string, fields map[string]interface{}) {
	z.logger.Error().Err(err).Fields(fields).Msg(msg)
}

func (z *zerologWrapper) DebugWithFields(msg string, fields map[string]interface{}) {
	z.logger.Debug().Fields(fields).Msg(msg)
}

func (z *zerologWrapper) WarnWithFields(msg string, fields map[string]interface{}) {
	z.logger.Warn().Fields(fields).Msg(msg)
}
