package lexer

import "fmt"

// TokKind enumerates token kinds produced by the lexer.
type TokKind int

const (
	// Special
	TokEOF     TokKind = iota
	TokIllegal         // unrecognized character; Lex holds it

	// Literals/identifiers
	TokIdent
	TokInt // optional leading '-' is part of the literal

	// Keywords
	TokFn

	// Operators/punctuation
	TokLParen // (
	TokRParen // )
	TokLBrace // {
	TokRBrace // }
	TokEq     // =
	TokPlusEq // +=
	TokSemi   // ;
)

var kindNames = [...]string{
	TokEOF:     "EOF",
	TokIllegal: "ILLEGAL",
	TokIdent:   "identifier",
	TokInt:     "integer",
	TokFn:      "'fn'",
	TokLParen:  "'('",
	TokRParen:  "')'",
	TokLBrace:  "'{'",
	TokRBrace:  "'}'",
	TokEq:      "'='",
	TokPlusEq:  "'+='",
	TokSemi:    "';'",
}

func (k TokKind) String() string {
	if k >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("TokKind(%d)", int(k))
}

// Token is a single lexeme with source position.
type Token struct {
	Kind TokKind
	Lex  string
	Line int
	Col  int
}
