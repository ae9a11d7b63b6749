// Package sema walks the syntax tree once and builds the symbol table.
//
// Every function body gets the scope key [i] for the i-th function. Inside a
// block, the n-th nested block (counting only blocks) gets the block's key
// with n appended. Each subtree yields a table fragment that is merged into
// its parent's fragment on the way back up.
package sema

import (
	"github.com/desilang/scopec/compiler/internal/ast"
	"github.com/desilang/scopec/compiler/internal/diag"
	"github.com/desilang/scopec/compiler/internal/scope"
	"github.com/desilang/scopec/compiler/internal/symtab"
)

// Ref is a name occurrence together with the scope it occurs in.
type Ref struct {
	Name  string
	Scope scope.Key
	Pos   diag.Pos
}

// walker builds the fragment for one function.
type walker struct {
	opts Options

	refs    []use // value-side reads
	targets []Ref // mutation targets that did not bind
}

// use is a value-side read. self is the position of the binding made by
// the statement the read belongs to; a read never resolves to it.
type use struct {
	Ref
	self diag.Pos
}

func (w *walker) function(index int, n ast.Node) (*symtab.Table, error) {
	fn, ok := n.(*ast.Function)
	if !ok || fn == nil {
		return nil, structural(n, "not_function", "DSE0001", "top-level node is not a function",
			"top-level node %d is a %s, not a function", index, ast.Kind(n))
	}
	name, ok := ast.NameOf(fn.Name)
	if !ok {
		return nil, structural(fn, "bad_name", "DSE0004", "expected a name",
			"function %d name is a %s", index, ast.Kind(fn.Name))
	}
	if _, ok := fn.Body.(*ast.Block); !ok {
		return nil, structural(fn, "bad_body", "DSE0003", "function body is not a block",
			"function %q body is a %s", name, ast.Kind(fn.Body))
	}
	t, err := w.traverse(fn.Body, scope.Of(index))
	if err != nil {
		return nil, err
	}
	w.opts.Logger.Debug("function analyzed", "function", name, "index", index, "bindings", t.Len())
	return t, nil
}

func (w *walker) traverse(n ast.Node, key scope.Key) (*symtab.Table, error) {
	switch nd := n.(type) {
	case *ast.Block:
		if key.Size() > w.opts.MaxDepth {
			return nil, structural(nd, "too_deep", "DSE0005", "blocks nested too deeply",
				"block at scope %s exceeds the nesting limit of %d", key, w.opts.MaxDepth)
		}
		table := symtab.New()
		i := 0
		for _, stmt := range nd.Stmts {
			var (
				frag *symtab.Table
				err  error
			)
			// sibling blocks consume an index; plain statements do not
			if _, isBlock := stmt.(*ast.Block); isBlock {
				frag, err = w.traverse(stmt, key.Push(i))
				i++
			} else {
				frag, err = w.traverse(stmt, key)
			}
			if err != nil {
				return nil, err
			}
			if err := table.MergeStrict(frag); err != nil {
				return nil, err
			}
		}
		return table, nil
	case *ast.MutationExpr:
		return w.mutation(nd, key)
	case *ast.Declaration:
		return w.declaration(nd, key)
	case *ast.Name, *ast.IntLit, *ast.Function:
		return symtab.New(), nil
	default:
		return nil, structural(n, "unknown_node", "DSE0006", "unknown node kind",
			"cannot analyze %s node", ast.Kind(n))
	}
}

func (w *walker) mutation(m *ast.MutationExpr, key scope.Key) (*symtab.Table, error) {
	name, ok := ast.NameOf(m.Target)
	if !ok {
		return nil, structural(m, "bad_target", "DSE0002", "mutation target is not a name",
			"mutation target must be a name, got %s", ast.Kind(m.Target))
	}
	target := m.Target.Position()
	if w.opts.Policy == PolicyDeclareBeforeUse {
		w.collectRefs(m.Value, key, diag.Pos{})
		w.targets = append(w.targets, Ref{Name: name, Scope: key, Pos: target})
		return symtab.New(), nil
	}
	w.collectRefs(m.Value, key, target)
	return symtab.Singleton(name, key, symtab.Variable(symtab.UnknownType, symtab.OriginAssignment, target)), nil
}

func (w *walker) declaration(d *ast.Declaration, key scope.Key) (*symtab.Table, error) {
	typ, ok := ast.NameOf(d.Type)
	if !ok {
		return nil, structural(d, "bad_name", "DSE0004", "expected a name",
			"declared type is a %s", ast.Kind(d.Type))
	}
	name, ok := ast.NameOf(d.Name)
	if !ok {
		return nil, structural(d, "bad_name", "DSE0004", "expected a name",
			"declared name is a %s", ast.Kind(d.Name))
	}
	w.collectRefs(d.Value, key, d.Name.Position())
	return symtab.Singleton(name, key, symtab.Variable(typ, symtab.OriginDeclaration, d.Name.Position())), nil
}

// collectRefs records names read by an expression. Values are plain
// names or literals.
func (w *walker) collectRefs(n ast.Node, key scope.Key, self diag.Pos) {
	if nm, ok := n.(*ast.Name); ok && nm != nil {
		w.refs = append(w.refs, use{Ref: Ref{Name: nm.Ident, Scope: key, Pos: nm.Pos}, self: self})
	}
}
