package ast

import (
	"fmt"

	"github.com/desilang/scopec/compiler/internal/diag"
)

/*** NODES ***/

// Node is any syntax tree node. Each node exclusively owns its children.
type Node interface {
	node()
	Position() diag.Pos
}

// Function is a top-level `fn name() { ... }`.
type Function struct {
	Pos  diag.Pos
	Name Node // *Name
	Body Node // *Block
}

func (*Function) node()                {}
func (f *Function) Position() diag.Pos { return f.Pos }

// Block is an ordered statement list and a lexical scope boundary.
type Block struct {
	Pos   diag.Pos
	Stmts []Node
}

func (*Block) node()                {}
func (b *Block) Position() diag.Pos { return b.Pos }

// MutationExpr is `target <verb> value`.
type MutationExpr struct {
	Pos    diag.Pos
	Target Node
	Verb   MutationVerb
	Value  Node
}

func (*MutationExpr) node()                {}
func (m *MutationExpr) Position() diag.Pos { return m.Pos }

// Declaration is `type name = value`.
type Declaration struct {
	Pos   diag.Pos
	Type  Node // *Name
	Name  Node // *Name
	Value Node
}

func (*Declaration) node()                {}
func (d *Declaration) Position() diag.Pos { return d.Pos }

// Name is an identifier occurrence.
type Name struct {
	Pos   diag.Pos
	Ident string
}

func (*Name) node()                {}
func (n *Name) Position() diag.Pos { return n.Pos }

// IntLit is a signed 32-bit integer literal.
type IntLit struct {
	Pos   diag.Pos
	Value int32
}

func (*IntLit) node()                {}
func (i *IntLit) Position() diag.Pos { return i.Pos }

/*** VERBS ***/

type MutationVerb int

const (
	Assign    MutationVerb = iota + 1 // =
	AddAssign                         // +=
)

func (v MutationVerb) String() string {
	switch v {
	case Assign:
		return "="
	case AddAssign:
		return "+="
	default:
		return fmt.Sprintf("MutationVerb(%d)", int(v))
	}
}

// VerbFromString maps operator text to a verb.
func VerbFromString(s string) (MutationVerb, bool) {
	switch s {
	case "=":
		return Assign, true
	case "+=":
		return AddAssign, true
	default:
		return 0, false
	}
}

// Kind names the concrete node type for diagnostics.
func Kind(n Node) string {
	switch n.(type) {
	case *Function:
		return "function"
	case *Block:
		return "block"
	case *MutationExpr:
		return "mutation"
	case *Declaration:
		return "declaration"
	case *Name:
		return "name"
	case *IntLit:
		return "integer"
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%T", n)
	}
}

// NameOf returns the identifier of n when n is a *Name.
func NameOf(n Node) (string, bool) {
	if nm, ok := n.(*Name); ok && nm != nil {
		return nm.Ident, true
	}
	return "", false
}
