package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gdml-lang/gdml/compiler/internal/ast"
	"github.com/gdml-lang/gdml/compiler/internal/check"
	"github.com/gdml-lang/gdml/compiler/internal/config"
	"github.com/gdml-lang/gdml/compiler/internal/diag"
	"github.com/gdml-lang/gdml/compiler/internal/term"
)

/* ---------- check ---------- */

func newCheckCommand() *cobra.Command {
	v := newViper()
	cmd := &cobra.Command{
		Use:   "check [flags] <tree.yaml>",
		Short: "Run semantic checks on a program tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			return runCheck(cmd, cfg, args[0])
		},
	}

	fs := cmd.Flags()
	fs.String("config", "", "YAML config file")
	fs.Bool("werror", false, "treat warnings as errors")
	fs.Int("max-errors", 0, "stop reporting after N errors (0 = unlimited)")
	fs.Bool("no-warn-unused", false, "do not warn about unused bindings")
	fs.String("log-format", config.FormatConsole, "log format: console, json, logfmt")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	mustBindPFlags(v, fs, "config", "werror", "max-errors", "no-warn-unused", "log-format", "log-level")
	return cmd
}

func runCheck(cmd *cobra.Command, cfg config.Config, path string) error {
	stderr := cmd.ErrOrStderr()
	log, err := newLogger(stderr, cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	f, err := ast.LoadFixture(path)
	if err != nil {
		return err
	}

	sink := diag.NewLogger(nil)
	sink.WithLogger(log)
	info := check.CheckFile(f, sink,
		check.WithLogger(log),
		check.WarnUnused(cfg.Check.WarnUnused),
		check.MaxErrors(cfg.Check.MaxErrors),
	)
	log.Debug("Checked", zap.String("path", path), zap.Int("scopes", info.Tree.Len()))

	// structured formats carry diagnostics as log lines
	if cfg.Logging.Format == config.FormatConsole {
		term.Render(stderr, sink.Messages())
	} else {
		sink.Dispatch()
	}

	errs, warns := sink.Counts()
	term.Summary(stderr, errs, warns)
	if err := sink.Err(); err != nil {
		return &exitError{code: 1, err: err}
	}
	if cfg.Check.Werror && warns > 0 {
		return &exitError{code: 1, err: errors.Errorf("%d warning(s) treated as errors", warns)}
	}
	return nil
}
