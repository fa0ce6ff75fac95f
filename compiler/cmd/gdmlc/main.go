package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/gdml-lang/gdml/compiler/internal/term"
)

// version is set at link time with -ldflags "-X main.version=...".
var version = "dev"

/* ---------- main ---------- */

func main() {
	cmd := newRootCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		if ex, ok := errors.Cause(err).(*exitError); ok {
			os.Exit(ex.code)
		}
		term.Wprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}

// exitError ends the process with code once diagnostics have been printed.
// err carries what made the run fail.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return fmt.Sprintf("exit status %d: %v", e.code, e.err)
}

func (e *exitError) Unwrap() error { return e.err }
