package token

import "fmt"

// Position is a location in SQL source text.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column, counted in bytes
	Offset int // 0-based byte offset
}

// IsValid reports whether the position was set by a lexer.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a half-open range [Start, End) of source text.
type Span struct {
	Start Position
	End   Position
}

// Contains reports whether offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}
