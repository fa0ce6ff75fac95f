package diag

import "fmt"

// Pos marks a 1-based line/column location in a file.
type Pos struct{ Line, Col int }

// Span marks a half-open range [Start, End) within a file.
type Span struct {
	File  string
	Start Pos
	End   Pos
}

// BuiltinSpan is attached to everything the compiler defines itself.
var BuiltinSpan = Span{File: "<builtin>"}

// IsBuiltin reports whether s points at compiler-defined code.
func (s Span) IsBuiltin() bool { return s == BuiltinSpan }

func (s Span) String() string {
	switch {
	case s.Start.Line == 0 && s.File == "":
		return ""
	case s.Start.Line == 0:
		return s.File
	case s.File == "":
		return fmt.Sprintf("%d:%d", s.Start.Line, s.Start.Col)
	default:
		return fmt.Sprintf("%s:%d:%d", s.File, s.Start.Line, s.Start.Col)
	}
}

// Level is the severity of a Message.
type Level int

const (
	Info Level = iota
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Message is a compiler diagnostic tied to a span.
type Message struct {
	Level Level
	Code  string // e.g., GCE0001; empty when uncatalogued
	Msg   string
	Span  Span
}

// NewMessage formats a message at the given level.
func NewMessage(level Level, span Span, format string, args ...any) Message {
	return Message{Level: level, Msg: fmt.Sprintf(format, args...), Span: span}
}

// WithCode returns a copy of m carrying the catalog code.
func (m Message) WithCode(code string) Message {
	m.Code = code
	return m
}

func (m Message) Error() string {
	msg := fmt.Sprintf("%s: %s", m.Level, m.Msg)
	if m.Code != "" {
		msg = fmt.Sprintf("%s[%s]: %s", m.Level, m.Code, m.Msg)
	}
	if at := m.Span.String(); at != "" {
		return at + ": " + msg
	}
	return msg
}

// Sink accepts diagnostics. Implementations must be safe for concurrent use.
type Sink interface {
	Log(m Message)
}
