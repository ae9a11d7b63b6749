package diag

import "fmt"

// Pos marks a 1-based line/column location in a file.
type Pos struct{ Line, Col int }

// IsValid reports whether the position was set by the lexer.
func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Before reports whether p comes strictly before q in source order.
func (p Pos) Before(q Pos) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Col < q.Col
}

// Span marks a half-open range [Start, End) within a file.
type Span struct {
	Start Pos
	End   Pos
}

// At returns a zero-width span at p.
func At(p Pos) Span { return Span{Start: p, End: p} }

// Diagnostic is a compiler message with an optional code and span.
type Diagnostic struct {
	Code string
	Span Span
	Msg  string
}

func (d Diagnostic) Error() string {
	msg := d.Msg
	if d.Code != "" {
		msg = d.Code + ": " + msg
	}
	if d.Span.Start.Line == 0 {
		return msg
	}
	return fmt.Sprintf("%d:%d: %s", d.Span.Start.Line, d.Span.Start.Col, msg)
}

// New builds a diagnostic at p using the catalog entry (domain, key).
// The fallback id/title are used when the catalog has no such entry.
func New(domain, key, fallbackID, fallbackTitle string, p Pos, format string, args ...any) Diagnostic {
	ce := MustLookup(domain, key, fallbackID, fallbackTitle)
	return Diagnostic{
		Code: ce.ID,
		Span: At(p),
		Msg:  fmt.Sprintf(format, args...),
	}
}
