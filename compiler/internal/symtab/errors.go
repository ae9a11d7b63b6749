package symtab

import (
	"github.com/desilang/scopec/compiler/internal/diag"
	"github.com/desilang/scopec/compiler/internal/scope"
)

// DuplicateDeclarationError reports a name declared twice in one exact scope.
type DuplicateDeclarationError struct {
	Name   string
	Scope  scope.Key
	First  Entry
	Second Entry
}

func (e *DuplicateDeclarationError) Error() string {
	return e.Diagnostic().Error()
}

// Diagnostic renders the error against the code catalog.
func (e *DuplicateDeclarationError) Diagnostic() diag.Diagnostic {
	return diag.New("sema", "duplicate_declaration", "DSE0010", "duplicate declaration in the same scope",
		e.Second.Pos, "%q redeclared in scope %s (first declared at %s)", e.Name, e.Scope, e.First.Pos)
}
