package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/desilang/scopec/compiler/internal/sema"
	"github.com/desilang/scopec/compiler/internal/symtab"
	"github.com/desilang/scopec/compiler/internal/term"
)

func newTableCmd(a *app) *cobra.Command {
	var (
		format string
		werror bool
	)
	cmd := &cobra.Command{
		Use:   "table <file>...",
		Short: "Build and print the symbol table",
		Long: `Build the symbol table for one or more files. Functions of later files
continue the top-level index of earlier ones.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, files []string) error {
			funcs, err := a.load(cmd, files)
			if err != nil {
				return err
			}
			res, err := a.analyze(cmd.Context(), funcs)
			if err != nil {
				return err
			}
			printWarnings(cmd.ErrOrStderr(), res.Warnings)

			if format == "" {
				format = a.cfg.Output.Format
			}
			switch format {
			case "table":
				renderTable(cmd.OutOrStdout(), res.Table)
			case "plain":
				renderPlain(cmd.OutOrStdout(), res.Table)
			default:
				return fmt.Errorf("unknown output format %q (want table or plain)", format)
			}

			if werror && len(res.Warnings) > 0 {
				term.Wprintf(cmd.ErrOrStderr(), "summary: %d warning(s) treated as errors\n", len(res.Warnings))
				return errReported
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: table or plain (default from config)")
	cmd.Flags().BoolVar(&werror, "Werror", false, "treat warnings as errors")
	return cmd
}

func printWarnings(w io.Writer, warns []sema.Warning) {
	for _, wr := range warns {
		term.Wprintf(w, "%s\n", term.Warning(wr.String()))
	}
}

func renderTable(w io.Writer, tab *symtab.Table) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Name", "Scope", "Kind", "Type", "Origin", "Pos"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	bindings := tab.Bindings()
	for _, b := range bindings {
		table.Append([]string{
			b.Name,
			b.Scope.String(),
			b.Entry.Kind.String(),
			b.Entry.DeclaredType,
			b.Entry.Origin.String(),
			b.Entry.Pos.String(),
		})
	}
	table.SetFooter([]string{fmt.Sprintf("%d binding(s)", len(bindings)), "", "", "", "", ""})
	table.Render()
	term.Wprintf(w, "%s", buf.String())
}

// renderPlain prints one "name scope type origin pos" line per binding.
func renderPlain(w io.Writer, tab *symtab.Table) {
	var b strings.Builder
	for _, bd := range tab.Bindings() {
		term.Bprintf(&b, "%s\t%s\t%s\t%s\t%s\n",
			bd.Name, bd.Scope, bd.Entry.DeclaredType, bd.Entry.Origin, bd.Entry.Pos)
	}
	term.Wprintf(w, "%s", b.String())
}
