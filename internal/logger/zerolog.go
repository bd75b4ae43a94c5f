// Package logger is the thin zerolog wrapper the application logs through.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Adapter tags every entry with the component that produced it so the
// console output stays readable without passing loggers around. It exposes
// only the two levels the application writes at.
type Adapter struct {
	logger zerolog.Logger
}

func New(writer io.Writer, level zerolog.Level) *Adapter {
	l := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	return &Adapter{logger: l}
}

// NewConsole writes human-readable entries to stdout.
func NewConsole(level zerolog.Level) *Adapter {
	return New(zerolog.ConsoleWriter{Out: os.Stdout}, level)
}

// Info records a completed operation under its component tag.
func (a *Adapter) Info(component, message string, fields map[string]interface{}) {
	anotar(a.logger.Info().Str("component", component), fields).Msg(message)
}

// Error records a failure. The message is fixed so entries group by
// component and error across the log.
func (a *Adapter) Error(component string, err error, fields map[string]interface{}) {
	anotar(a.logger.Error().Str("component", component).Err(err), fields).Msg("operation failed")
}

func anotar(event *zerolog.Event, fields map[string]interface{}) *zerolog.Event {
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	return event
}
