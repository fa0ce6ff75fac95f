package main

import (
	"github.com/spf13/cobra"

	"github.com/gdml-lang/gdml/compiler/internal/ast"
	"github.com/gdml-lang/gdml/compiler/internal/term"
)

/* ---------- dump ---------- */

func newDumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <tree.yaml>",
		Short: "Print the outline of a program tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ast.LoadFixture(args[0])
			if err != nil {
				return err
			}
			term.Wprintf(cmd.OutOrStdout(), "%s", ast.DumpFile(f))
			return nil
		},
	}
}
