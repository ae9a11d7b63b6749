package parser

import (
	"strconv"

	"github.com/desilang/scopec/compiler/internal/ast"
	"github.com/desilang/scopec/compiler/internal/diag"
	"github.com/desilang/scopec/compiler/internal/lexer"
)

// Parser is a recursive-descent parser over a token source. It stops at
// the first error.
type Parser struct {
	src  lexer.Source
	tok  lexer.Token
	peek lexer.Token
}

func New(src string) *Parser {
	return NewFromSource(lexer.New(src))
}

// NewFromSource parses tokens from any Source.
func NewFromSource(src lexer.Source) *Parser {
	p := &Parser{src: src}
	p.peek = src.Next()
	p.next()
	return p
}

func pos(t lexer.Token) diag.Pos { return diag.Pos{Line: t.Line, Col: t.Col} }

func (p *Parser) next() {
	p.tok = p.peek
	if p.tok.Kind != lexer.TokEOF {
		p.peek = p.src.Next()
	}
}
func (p *Parser) at(k lexer.TokKind) bool { return p.tok.Kind == k }
func (p *Parser) accept(k lexer.TokKind) bool {
	if p.at(k) {
		p.next()
		return true
	}
	return false
}
func (p *Parser) expect(k lexer.TokKind) (lexer.Token, error) {
	if !p.at(k) {
		return p.tok, p.unexpected(k.String())
	}
	t := p.tok
	p.next()
	return t, nil
}

func (p *Parser) unexpected(want string) error {
	if p.at(lexer.TokIllegal) {
		return diag.New("lexer", "unexpected_char", "DLE0001", "unexpected character",
			pos(p.tok), "unexpected character %q", p.tok.Lex)
	}
	return diag.New("parser", "expected_token", "DPE0001", "unexpected token",
		pos(p.tok), "expected %s, got %s", want, describe(p.tok))
}

func describe(t lexer.Token) string {
	if t.Lex == "" {
		return t.Kind.String()
	}
	return t.Kind.String() + " " + strconv.Quote(t.Lex)
}

// ParseFile parses a whole program: a sequence of functions.
func (p *Parser) ParseFile() ([]ast.Node, error) {
	var funcs []ast.Node
	for !p.at(lexer.TokEOF) {
		if !p.at(lexer.TokFn) {
			if p.at(lexer.TokIllegal) {
				return nil, p.unexpected("")
			}
			return nil, diag.New("parser", "bad_top_level", "DPE0003", "only functions may appear at top level",
				pos(p.tok), "expected 'fn', got %s", describe(p.tok))
		}
		fn, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		funcs = append(funcs, fn)
	}
	return funcs, nil
}

func (p *Parser) parseFunction() (*ast.Function, error) {
	// fn <name> "(" ")" block
	fnTok, err := p.expect(lexer.TokFn)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.TokIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokLParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokRParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.Function{
		Pos:  pos(fnTok),
		Name: &ast.Name{Pos: pos(nameTok), Ident: nameTok.Lex},
		Body: body,
	}, nil
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	open, err := p.expect(lexer.TokLBrace)
	if err != nil {
		return nil, err
	}
	blk := &ast.Block{Pos: pos(open)}
	for !p.at(lexer.TokRBrace) {
		if p.at(lexer.TokEOF) {
			return nil, p.unexpected(lexer.TokRBrace.String())
		}
		if p.accept(lexer.TokSemi) {
			continue
		}
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		blk.Stmts = append(blk.Stmts, s)
	}
	p.next()
	return blk, nil
}

func (p *Parser) parseStmt() (ast.Node, error) {
	switch {
	case p.at(lexer.TokLBrace):
		return p.parseBlock()
	case p.at(lexer.TokIdent) && p.peek.Kind == lexer.TokIdent:
		// <type> <name> = <expr>
		typeTok := p.tok
		p.next()
		nameTok := p.tok
		p.next()
		if _, err := p.expect(lexer.TokEq); err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Declaration{
			Pos:   pos(typeTok),
			Type:  &ast.Name{Pos: pos(typeTok), Ident: typeTok.Lex},
			Name:  &ast.Name{Pos: pos(nameTok), Ident: nameTok.Lex},
			Value: val,
		}, nil
	case p.at(lexer.TokIdent):
		// <name> (= | +=) <expr>
		target := &ast.Name{Pos: pos(p.tok), Ident: p.tok.Lex}
		p.next()
		verb, ok := ast.VerbFromString(p.tok.Lex)
		if !ok || (!p.at(lexer.TokEq) && !p.at(lexer.TokPlusEq)) {
			return nil, p.unexpected("'=' or '+='")
		}
		p.next()
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.MutationExpr{Pos: target.Pos, Target: target, Verb: verb, Value: val}, nil
	case p.at(lexer.TokIllegal):
		return nil, p.unexpected("")
	default:
		return nil, diag.New("parser", "bad_statement", "DPE0002", "statement is neither a block, a declaration nor a mutation",
			pos(p.tok), "expected statement, got %s", describe(p.tok))
	}
}

func (p *Parser) parseExpr() (ast.Node, error) {
	switch {
	case p.at(lexer.TokInt):
		t := p.tok
		v, err := strconv.ParseInt(t.Lex, 10, 32)
		if err != nil {
			return nil, diag.New("lexer", "int_range", "DLE0002", "integer literal out of range",
				pos(t), "integer literal %s does not fit in 32 bits", t.Lex)
		}
		p.next()
		return &ast.IntLit{Pos: pos(t), Value: int32(v)}, nil
	case p.at(lexer.TokIdent):
		t := p.tok
		p.next()
		return &ast.Name{Pos: pos(t), Ident: t.Lex}, nil
	default:
		return nil, p.unexpected("integer or name")
	}
}
