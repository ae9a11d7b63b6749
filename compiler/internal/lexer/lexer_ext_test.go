package lexer_test

import (
	"testing"

	lx "github.com/desilang/scopec/compiler/internal/lexer"
)

func TestStubEOF(t *testing.T) {
	l := lx.New("")
	tok := l.Next()
	if tok.Kind != lx.TokEOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
	if again := l.Next(); again.Kind != lx.TokEOF {
		t.Fatalf("expected EOF to repeat, got %v", again.Kind)
	}
}

func TestUnicodeIdentifiers(t *testing.T) {
	l := lx.New("größe = 1")
	tok := l.Next()
	if tok.Kind != lx.TokIdent || tok.Lex != "größe" {
		t.Fatalf("expected identifier größe, got %v %q", tok.Kind, tok.Lex)
	}
	if eq := l.Next(); eq.Col != 7 {
		t.Fatalf("expected '=' at column 7, got %d", eq.Col)
	}
}
