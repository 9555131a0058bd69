package instrument

import (
	"github.com/rs/zerolog"

	"github.com/AnatoleLucet/reactivity"
)

// Logger writes graph edits at trace level and propagation at debug level.
type Logger struct {
	log zerolog.Logger
}

// NewLogger returns an observer writing graph events to log.
func NewLogger(log zerolog.Logger) *Logger {
	return &Logger{log: log.With().Str("component", "reactivity").Logger()}
}

func (l *Logger) Linked(signal, reactive reactivity.Node) {
	l.log.Trace().
		Uint64("signal", signal.ID).
		Str("signal_label", signal.Label).
		Uint64("reactive", reactive.ID).
		Str("reactive_label", reactive.Label).
		Msg("linked")
}

func (l *Logger) Unlinked(signal, reactive reactivity.Node) {
	l.log.Trace().
		Uint64("signal", signal.ID).
		Str("signal_label", signal.Label).
		Uint64("reactive", reactive.ID).
		Str("reactive_label", reactive.Label).
		Msg("unlinked")
}

func (l *Logger) Changed(signal reactivity.Node, subscribers int) {
	l.log.Debug().
		Uint64("signal", signal.ID).
		Str("signal_label", signal.Label).
		Int("subscribers", subscribers).
		Msg("changed")
}

func (l *Logger) Invoked(reactive reactivity.Node, tracked bool) {
	l.log.Debug().
		Uint64("reactive", reactive.ID).
		Str("reactive_label", reactive.Label).
		Bool("tracked", tracked).
		Msg("invoked")
}
