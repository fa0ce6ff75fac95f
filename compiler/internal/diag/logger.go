package diag

import (
	"errors"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Logger is the shared diagnostic sink. Every phase of a build may write to
// the same Logger concurrently; each Log call is serialized, so messages from
// one goroutine keep their order.
type Logger struct {
	mu      sync.Mutex
	entries []Message

	log *zap.Logger
}

// NewLogger returns an empty Logger. A nil log discards Dispatch output.
func NewLogger(log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{log: log}
}

// WithLogger sets the zap logger used by Dispatch.
func (l *Logger) WithLogger(log *zap.Logger) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log = log.With(zap.String("component", "diagnostics"))
}

// Log records one message.
func (l *Logger) Log(m Message) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, m)
}

// Messages returns a snapshot of everything logged so far, in order.
func (l *Logger) Messages() []Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Message(nil), l.entries...)
}

// Errors returns the Error-level messages.
func (l *Logger) Errors() []Message {
	return l.filter(Error)
}

// Warnings returns the Warning-level messages.
func (l *Logger) Warnings() []Message {
	return l.filter(Warning)
}

func (l *Logger) filter(level Level) []Message {
	var out []Message
	for _, m := range l.Messages() {
		if m.Level == level {
			out = append(out, m)
		}
	}
	return out
}

// Counts returns the number of errors and warnings logged so far.
func (l *Logger) Counts() (errs, warns int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.entries {
		switch m.Level {
		case Error:
			errs++
		case Warning:
			warns++
		}
	}
	return errs, warns
}

// Err folds every Error-level message into a single error, or nil.
func (l *Logger) Err() error {
	var err error
	for _, m := range l.Errors() {
		err = multierr.Append(err, errors.New(m.Error()))
	}
	return err
}

// Dispatch writes all messages to the zap logger and a closing summary.
func (l *Logger) Dispatch() {
	msgs := l.Messages()
	l.mu.Lock()
	log := l.log
	l.mu.Unlock()

	var errs, warns int
	for _, m := range msgs {
		fields := []zap.Field{zap.String("at", m.Span.String())}
		if m.Code != "" {
			fields = append(fields, zap.String("code", m.Code))
		}
		switch m.Level {
		case Error:
			errs++
			log.Error(m.Msg, fields...)
		case Warning:
			warns++
			log.Warn(m.Msg, fields...)
		default:
			log.Info(m.Msg, fields...)
		}
	}
	log.Info("Finished", zap.Int("errors", errs), zap.Int("warnings", warns))
}
