package sema

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/desilang/scopec/compiler/internal/ast"
	"github.com/desilang/scopec/compiler/internal/diag"
	"github.com/desilang/scopec/compiler/internal/symtab"
)

// Result is the outcome of a successful build.
type Result struct {
	Table    *symtab.Table // frozen
	Refs     []Ref         // value-side reads in traversal order
	Warnings []Warning
}

// Build walks funcs with default options and returns the frozen table.
func Build(funcs []ast.Node) (*symtab.Table, error) {
	res, err := Analyze(funcs, Options{})
	if err != nil {
		return nil, err
	}
	return res.Table, nil
}

// Analyze walks every function in order on the calling goroutine.
func Analyze(funcs []ast.Node, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	parts := make([]*part, len(funcs))
	for i, n := range funcs {
		p, err := analyzeFunction(i, n, opts)
		if err != nil {
			return nil, err
		}
		parts[i] = p
	}
	return reduce(parts, opts)
}

// AnalyzeParallel builds each function's fragment on its own goroutine,
// bounded by opts.Workers, then reduces them in function order. Fragments
// never collide because each function owns a distinct top-level index.
// When several functions fail, the error of the lowest index is returned,
// as Analyze would.
func AnalyzeParallel(ctx context.Context, funcs []ast.Node, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	parts := make([]*part, len(funcs))
	errs := make([]error, len(funcs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, n := range funcs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			parts[i], errs[i] = analyzeFunction(i, n, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return reduce(parts, opts)
}

type part struct {
	table   *symtab.Table
	refs    []use
	targets []Ref
}

func analyzeFunction(index int, n ast.Node, opts Options) (*part, error) {
	w := &walker{opts: opts}
	t, err := w.function(index, n)
	if err != nil {
		return nil, err
	}
	return &part{table: t, refs: w.refs, targets: w.targets}, nil
}

// reduce merges fragments single-threaded and checks every recorded use
// against the finished table.
func reduce(parts []*part, opts Options) (*Result, error) {
	table := symtab.New()
	res := &Result{Table: table}
	var (
		targets []use
		reads   []use
	)
	for i, p := range parts {
		if err := table.MergeStrict(p.table); err != nil {
			return nil, fmt.Errorf("merge function %d: %w", i, err)
		}
		for _, r := range p.refs {
			res.Refs = append(res.Refs, r.Ref)
		}
		reads = append(reads, p.refs...)
		for _, t := range p.targets {
			targets = append(targets, use{Ref: t})
		}
	}

	if opts.Policy == PolicyDeclareBeforeUse {
		for _, uses := range [][]use{targets, reads} {
			for _, u := range uses {
				if !resolves(table, u, true) {
					return nil, &UndeclaredError{Name: u.Name, Scope: u.Scope, Pos: u.Pos}
				}
			}
		}
	} else {
		for _, r := range reads {
			if resolves(table, r, false) {
				continue
			}
			ce := diag.MustLookup("sema", "undeclared_ref", "W0001", "reference to undeclared variable")
			res.Warnings = append(res.Warnings, Warning{
				Code: ce.ID,
				Pos:  r.Pos,
				Msg:  fmt.Sprintf("reference to undeclared variable %q in scope %s", r.Name, r.Scope),
			})
		}
	}

	opts.Logger.Debug("symbol table built",
		"functions", len(parts), "bindings", table.Len(), "warnings", len(res.Warnings))
	res.Table = table.Freeze()
	return res, nil
}

// resolves walks outward from u's scope looking for a binding of u's name
// other than the one made by u's own statement, so "a = a" and "int a = a"
// do not read themselves. With ordered set, the binding must also precede
// u; a nearer binding that comes later in the source does not hide an
// outer one.
func resolves(t *symtab.Table, u use, ordered bool) bool {
	key := u.Scope
	for {
		if e, ok := t.Get(u.Name, key); ok && e.Pos != u.self && (!ordered || e.Pos.Before(u.Pos)) {
			return true
		}
		parent, ok := key.Parent()
		if !ok {
			return false
		}
		key = parent
	}
}
