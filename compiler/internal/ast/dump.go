package ast

import (
	"fmt"
	"strconv"
	"strings"
)

/*** DUMP (outline for CLI) ***/

// Dump renders functions as an indented outline, one statement per line.
func Dump(funcs []Node) string {
	var b strings.Builder
	for i, n := range funcs {
		if i > 0 {
			b.WriteByte('\n')
		}
		fn, ok := n.(*Function)
		if !ok {
			fmt.Fprintf(&b, "<%s>\n", Kind(n))
			continue
		}
		fmt.Fprintf(&b, "Function: %s\n", exprString(fn.Name))
		if body, ok := fn.Body.(*Block); ok {
			dumpStmts(&b, body.Stmts, 1)
		}
	}
	return b.String()
}

func dumpStmts(b *strings.Builder, stmts []Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, s := range stmts {
		if blk, ok := s.(*Block); ok {
			fmt.Fprintf(b, "%s{\n", indent)
			dumpStmts(b, blk.Stmts, depth+1)
			fmt.Fprintf(b, "%s}\n", indent)
			continue
		}
		fmt.Fprintf(b, "%s%s\n", indent, stmtString(s))
	}
}

func stmtString(s Node) string {
	switch st := s.(type) {
	case *MutationExpr:
		return fmt.Sprintf("%s mutated as %q by %s", exprString(st.Target), st.Verb.String(), exprString(st.Value))
	case *Declaration:
		return fmt.Sprintf("%s declared as %s = %s", exprString(st.Name), exprString(st.Type), exprString(st.Value))
	default:
		return exprString(s)
	}
}

func exprString(e Node) string {
	switch v := e.(type) {
	case *Name:
		return v.Ident
	case *IntLit:
		return strconv.FormatInt(int64(v.Value), 10)
	default:
		return "<" + Kind(e) + ">"
	}
}
