package symtab

import (
	"fmt"

	"github.com/desilang/scopec/compiler/internal/diag"
	"github.com/desilang/scopec/compiler/internal/scope"
)

// Kind discriminates table entries. Functions and types are expected to
// join Variable here.
type Kind int

const (
	KindVariable Kind = iota + 1
)

func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	default:
		return "unknown"
	}
}

// Origin records which construct created a binding.
type Origin int

const (
	OriginAssignment Origin = iota + 1
	OriginDeclaration
)

func (o Origin) String() string {
	switch o {
	case OriginAssignment:
		return "assignment"
	case OriginDeclaration:
		return "declaration"
	default:
		return "unknown"
	}
}

// UnknownType is the declared type recorded for bindings created by assignment.
const UnknownType = "unknown"

// Entry is the payload stored per table key.
type Entry struct {
	Kind         Kind
	DeclaredType string
	Origin       Origin
	Pos          diag.Pos
}

// Variable returns a variable entry.
func Variable(declaredType string, origin Origin, pos diag.Pos) Entry {
	return Entry{Kind: KindVariable, DeclaredType: declaredType, Origin: origin, Pos: pos}
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s (%s at %s)", e.Kind, e.DeclaredType, e.Origin, e.Pos)
}

// TableKey is the unique lookup key of one binding.
type TableKey struct {
	Name  string
	Scope scope.Key
}

// Binding is a resolved entry together with the key it is stored under.
type Binding struct {
	Name  string
	Scope scope.Key
	Entry Entry
}
