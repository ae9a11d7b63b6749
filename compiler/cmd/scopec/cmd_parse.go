package main

import (
	"github.com/spf13/cobra"

	"github.com/desilang/scopec/compiler/internal/ast"
	"github.com/desilang/scopec/compiler/internal/term"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>...",
		Short: "Parse files and print the AST outline",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, files []string) error {
			funcs, err := a.load(cmd, files)
			if err != nil {
				return err
			}
			term.Wprintf(cmd.OutOrStdout(), "%s", ast.Dump(funcs))
			return nil
		},
	}
}
