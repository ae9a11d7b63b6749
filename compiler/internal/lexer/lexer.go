package lexer

import (
	"unicode"
)

// Lexer scans brace-delimited source into tokens. Whitespace and newlines
// are insignificant; `//` starts a comment running to end of line.
type Lexer struct {
	src []rune
	i   int

	line int
	col  int
}

func New(src string) *Lexer {
	return &Lexer{
		src:  []rune(src),
		line: 1,
		col:  0,
	}
}

func (lx *Lexer) make(kind TokKind, lex string, line, col int) Token {
	return Token{Kind: kind, Lex: lex, Line: line, Col: col}
}

func (lx *Lexer) peek() (rune, bool) {
	if lx.i >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.i], true
}

func (lx *Lexer) peekAt(off int) (rune, bool) {
	if lx.i+off >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.i+off], true
}

func (lx *Lexer) advance() (rune, bool) {
	ch, ok := lx.peek()
	if !ok {
		return 0, false
	}
	lx.i++
	if ch == '\n' {
		lx.line++
		lx.col = 0
	} else {
		lx.col++
	}
	return ch, true
}

func (lx *Lexer) match(expect rune) bool {
	ch, ok := lx.peek()
	if ok && ch == expect {
		lx.advance()
		return true
	}
	return false
}

func (lx *Lexer) atEOF() bool { return lx.i >= len(lx.src) }

// skipTrivia consumes whitespace and line comments.
func (lx *Lexer) skipTrivia() {
	for {
		ch, ok := lx.peek()
		if !ok {
			return
		}
		if unicode.IsSpace(ch) {
			lx.advance()
			continue
		}
		if ch == '/' {
			if next, ok := lx.peekAt(1); ok && next == '/' {
				for {
					ch, ok := lx.peek()
					if !ok || ch == '\n' {
						break
					}
					lx.advance()
				}
				continue
			}
		}
		return
	}
}

// Next returns the next token. It never panics on user input; unknown
// characters come back as TokIllegal.
func (lx *Lexer) Next() Token {
	lx.skipTrivia()

	startLine, startCol := lx.line, lx.col+1
	if lx.atEOF() {
		return lx.make(TokEOF, "", startLine, startCol)
	}

	// Identifiers / keywords
	if ch, ok := lx.peek(); ok && isIdentStart(ch) {
		lex := lx.scanIdent()
		if kind, ok := keywordKind(lex); ok {
			return lx.make(kind, lex, startLine, startCol)
		}
		return lx.make(TokIdent, lex, startLine, startCol)
	}

	// Integers, with an attached leading '-'
	if ch, ok := lx.peek(); ok && isDigit(ch) {
		return lx.make(TokInt, lx.scanInt(), startLine, startCol)
	}
	if ch, ok := lx.peek(); ok && ch == '-' {
		if next, ok := lx.peekAt(1); ok && isDigit(next) {
			return lx.make(TokInt, lx.scanInt(), startLine, startCol)
		}
	}

	if lx.match('+') {
		if lx.match('=') {
			return lx.make(TokPlusEq, "+=", startLine, startCol)
		}
		return lx.make(TokIllegal, "+", startLine, startCol)
	}

	// Single-char punctuation
	if lx.match('=') {
		return lx.make(TokEq, "=", startLine, startCol)
	}
	if lx.match('(') {
		return lx.make(TokLParen, "(", startLine, startCol)
	}
	if lx.match(')') {
		return lx.make(TokRParen, ")", startLine, startCol)
	}
	if lx.match('{') {
		return lx.make(TokLBrace, "{", startLine, startCol)
	}
	if lx.match('}') {
		return lx.make(TokRBrace, "}", startLine, startCol)
	}
	if lx.match(';') {
		return lx.make(TokSemi, ";", startLine, startCol)
	}

	ch, _ := lx.advance()
	return lx.make(TokIllegal, string(ch), startLine, startCol)
}

// ----- scanning helpers -----

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Integer literals are ASCII only.
func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func (lx *Lexer) scanIdent() string {
	start := lx.i
	for {
		r, ok := lx.peek()
		if !ok || !isIdentPart(r) {
			break
		}
		lx.advance()
	}
	return string(lx.src[start:lx.i])
}

func (lx *Lexer) scanInt() string {
	start := lx.i
	lx.match('-')
	for {
		r, ok := lx.peek()
		if !ok || !isDigit(r) {
			break
		}
		lx.advance()
	}
	return string(lx.src[start:lx.i])
}

// keywordKind maps identifiers to keyword tokens.
func keywordKind(s string) (TokKind, bool) {
	switch s {
	case "fn":
		return TokFn, true
	default:
		return 0, false
	}
}
