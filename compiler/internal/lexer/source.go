package lexer

// Source is a minimal token source the parser can consume.
// Any implementation only needs to yield successive tokens via Next().
type Source interface {
	Next() Token
}

// sliceSource replays a pre-lexed token stream.
type sliceSource struct {
	toks []Token
	i    int
}

// NewSliceSource returns a Source over toks. Once exhausted it yields EOF
// at the position of the last token.
func NewSliceSource(toks []Token) Source {
	return &sliceSource{toks: toks}
}

func (s *sliceSource) Next() Token {
	if s.i < len(s.toks) {
		t := s.toks[s.i]
		s.i++
		return t
	}
	if n := len(s.toks); n > 0 {
		last := s.toks[n-1]
		return Token{Kind: TokEOF, Line: last.Line, Col: last.Col}
	}
	return Token{Kind: TokEOF, Line: 1, Col: 1}
}

// All lexes src to completion, including the trailing EOF token.
func All(src string) []Token {
	lx := New(src)
	var out []Token
	for {
		t := lx.Next()
		out = append(out, t)
		if t.Kind == TokEOF {
			return out
		}
	}
}
