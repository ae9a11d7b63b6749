package sema

import (
	"fmt"

	"github.com/desilang/scopec/compiler/internal/ast"
	"github.com/desilang/scopec/compiler/internal/diag"
	"github.com/desilang/scopec/compiler/internal/scope"
)

// StructuralError reports a malformed tree. It aborts the build.
type StructuralError struct {
	Node ast.Node
	Diag diag.Diagnostic
}

func (e *StructuralError) Error() string { return e.Diag.Error() }

func structural(n ast.Node, key, fallbackID, title, format string, args ...any) *StructuralError {
	var p diag.Pos
	if n != nil {
		p = n.Position()
	}
	return &StructuralError{
		Node: n,
		Diag: diag.New("sema", key, fallbackID, title, p, format, args...),
	}
}

// UndeclaredError reports a use with no earlier declaration in scope under
// PolicyDeclareBeforeUse.
type UndeclaredError struct {
	Name  string
	Scope scope.Key
	Pos   diag.Pos
}

func (e *UndeclaredError) Error() string {
	d := diag.New("sema", "undeclared", "DSE0011", "use before declaration",
		e.Pos, "%q used in scope %s before any declaration", e.Name, e.Scope)
	return d.Error()
}

// Warning is a non-fatal finding.
type Warning struct {
	Code string // e.g., W0001
	Pos  diag.Pos
	Msg  string
}

func (w Warning) String() string {
	msg := w.Msg
	if w.Code != "" {
		msg = fmt.Sprintf("%s: %s", w.Code, w.Msg)
	}
	if !w.Pos.IsValid() {
		return msg
	}
	return w.Pos.String() + ": " + msg
}
