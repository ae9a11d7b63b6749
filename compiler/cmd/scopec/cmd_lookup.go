package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/desilang/scopec/compiler/internal/scope"
	"github.com/desilang/scopec/compiler/internal/term"
)

func newLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <file> <name> <scope>",
		Short: "Resolve a name from a scope key",
		Long: `Resolve <name> as seen from <scope>, walking outward one block at a time.
<scope> is written like "0.1.0"; "global" is the empty key.
Exits with status 1 when the name is undeclared.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, name := args[0], args[1]
			key, err := scope.Parse(args[2])
			if err != nil {
				return err
			}
			funcs, err := a.load(cmd, []string{file})
			if err != nil {
				return err
			}
			res, err := a.analyze(cmd.Context(), funcs)
			if err != nil {
				return err
			}

			b, ok := res.Table.Resolve(name, key)
			if !ok {
				return fmt.Errorf("%q is undeclared in scope %s", name, key)
			}
			a.logger.Debug("resolved", "name", name, "from", key.String(), "to", b.Scope.String())
			term.Wprintf(cmd.OutOrStdout(), "%s @ %s -> %s: %s\n", name, key, b.Scope, b.Entry)
			return nil
		},
	}
}
