package check

import (
	"strings"
	"sync"

	"github.com/gdml-lang/gdml/compiler/internal/coherency"
	"github.com/gdml-lang/gdml/compiler/internal/diag"
)

// tiny generic stack helpers
func push[T any](s []T, v T) []T { return append(s, v) }
func pop[T any](s []T) []T       { return s[:len(s)-1] }
func top[T any](s []T) *T {
	if len(s) == 0 {
		return nil
	}
	return &s[len(s)-1]
}

/* ---------- reporting ---------- */

func (c *checker) report(level diag.Level, domain, key, fallbackID string, span diag.Span, format string, args ...any) {
	ce := diag.MustLookup(domain, key, fallbackID, key)
	c.v.EmitMsg(diag.NewMessage(level, span, format, args...).WithCode(ce.ID))
}

func (c *checker) errorf(domain, key, fallbackID string, span diag.Span, format string, args ...any) {
	c.report(diag.Error, domain, key, fallbackID, span, format, args...)
}

// limitSink forwards to sink until max errors have been seen, then emits a
// single "too many errors" note and drops further errors.
type limitSink struct {
	mu     sync.Mutex
	sink   diag.Sink
	max    int
	errs   int
	capped bool
}

func (s *limitSink) Log(m diag.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sink == nil {
		return
	}
	if m.Level == diag.Error {
		if s.max > 0 && s.errs >= s.max {
			if !s.capped {
				s.capped = true
				s.sink.Log(diag.NewMessage(diag.Info, m.Span, "too many errors"))
			}
			return
		}
		s.errs++
	}
	s.sink.Log(m)
}

/* ---------- helpers ---------- */

// ignoredName reports whether unused-binding warnings are suppressed.
func ignoredName(name string) bool { return strings.HasPrefix(name, "_") }

// inferring reports whether r still waits for the return that fixes an
// inferred result type.
func inferring(r coherency.Return) bool {
	return r.Kind == coherency.ReturnInferred && r.Expr == nil && r.Ty.IsUnknown()
}

func pathOf(segments []string) coherency.Path { return coherency.NewPath(segments...) }

// declName is the full path a declaration is stored under; `geo::origin`
// declares a qualified name.
func declName(name string) coherency.FullPath { return coherency.ParsePath(name).Full() }
