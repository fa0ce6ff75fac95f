package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdml-lang/gdml/compiler/internal/diag"
)

// Format renders one diagnostic the way the CLI prints it:
//
//	error[GCE0001]: Unknown name x
//	  --> main.gdml:3:7
func Format(m diag.Message) string {
	var b strings.Builder
	b.WriteString(m.Level.String())
	if m.Code != "" {
		Bprintf(&b, "[%s]", m.Code)
	}
	Bprintf(&b, ": %s", m.Msg)
	if at := m.Span.String(); at != "" && !m.Span.IsBuiltin() {
		Bprintf(&b, "\n  --> %s", at)
	}
	return b.String()
}

// Render writes every message in order.
func Render(w io.Writer, msgs []diag.Message) {
	for _, m := range msgs {
		Wprintf(w, "%s\n", Format(m))
	}
}

// Summary writes the closing count line.
func Summary(w io.Writer, errs, warns int) {
	Wprintf(w, "summary: %d error(s), %d warning(s)\n", errs, warns)
}

// Wprintf writes formatted text to w, ignoring (n, err).
func Wprintf(w io.Writer, format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }

// Bprintf is Wprintf for a strings.Builder.
func Bprintf(b *strings.Builder, format string, a ...any) { _, _ = fmt.Fprintf(b, format, a...) }
