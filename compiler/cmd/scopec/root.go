package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/desilang/scopec/compiler/internal/ast"
	"github.com/desilang/scopec/compiler/internal/build"
	"github.com/desilang/scopec/compiler/internal/config"
	"github.com/desilang/scopec/compiler/internal/sema"
	"github.com/desilang/scopec/compiler/internal/term"
	"github.com/desilang/scopec/compiler/internal/version"
)

// errReported is returned after diagnostics were already printed.
var errReported = errors.New("errors reported")

// app holds flag values shared by every subcommand.
type app struct {
	configPath string
	logLevel   string
	policy     string
	workers    int

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "scopec <command> [files...]",
		Short: "Scope resolution and symbol tables for M programs",
		Long: `scopec parses M source files, assigns every block a scope key and builds
the symbol table used by later compiler stages.

Scope keys are printed as dot-separated block indices: "0.1.0" is the first
nested block inside the second block of the first function.`,
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "path to a TOML config file (default ./"+config.DefaultFile+" if present)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.policy, "policy", "", "binding policy: auto-declare or declare-before-use")
	pf.IntVarP(&a.workers, "parallel", "p", 0, "number of functions analyzed concurrently")

	cmd.AddCommand(
		newParseCmd(a),
		newTableCmd(a),
		newLookupCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// setup loads the config, applies flag overrides and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.policy != "" {
		cfg.Analysis.Policy = a.policy
	}
	if a.workers != 0 {
		cfg.Analysis.Workers = a.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := sema.ParsePolicy(cfg.Analysis.Policy); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger, err = newLogger(cfg.Log, cmd.ErrOrStderr())
	return err
}

func newLogger(lc config.Log, w io.Writer) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// load parses files, printing every load error.
func (a *app) load(cmd *cobra.Command, files []string) ([]ast.Node, error) {
	funcs, errs := build.LoadFiles(files...)
	if len(errs) > 0 {
		for _, e := range errs {
			term.Wprintf(cmd.ErrOrStderr(), "%s\n", term.Error(e.Error()))
		}
		return nil, errReported
	}
	a.logger.Info("loaded", "files", len(files), "functions", len(funcs))
	return funcs, nil
}

// analyze runs the walker, in parallel when more than one worker is configured.
func (a *app) analyze(ctx context.Context, funcs []ast.Node) (*sema.Result, error) {
	policy, err := sema.ParsePolicy(a.cfg.Analysis.Policy)
	if err != nil {
		return nil, err
	}
	opts := sema.Options{
		Policy:   policy,
		Workers:  a.cfg.Analysis.Workers,
		MaxDepth: a.cfg.Analysis.MaxDepth,
		Logger:   a.logger,
	}
	if a.cfg.Analysis.Workers > 1 {
		return sema.AnalyzeParallel(ctx, funcs, opts)
	}
	return sema.Analyze(funcs, opts)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(version.String())
		},
	}
}

// Execute runs the CLI and returns the process exit code.
func Execute(args []string) int {
	return run(newRootCmd(), args, os.Stdout, os.Stderr)
}

func run(cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			term.Wprintf(stderr, "%s\n", term.Error(err.Error()))
		}
		return 1
	}
	return 0
}
