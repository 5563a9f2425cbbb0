package token

import "fmt"

// Position is a location in Iota source text.
type Position struct {
	Filename string // optional
	Line     int    // 1-indexed
	Column   int    // 1-indexed, counted in bytes
	Offset   int    // 0-indexed byte offset
}

// String formats the position as "filename:line:column", or "line:column"
// when no filename is set.
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position was produced by the lexer.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Before reports whether p comes earlier in the same source than other.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

// Span is the half-open source range [Start, End).
type Span struct {
	Start Position
	End   Position
}

// SpanOf returns the span of a node or token given its bounds.
func SpanOf(start, end Position) Span {
	return Span{Start: start, End: end}
}

// String returns a string representation of the span.
func (s Span) String() string {
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%s-%d", s.Start.String(), s.End.Column)
	}
	return fmt.Sprintf("%s-%d:%d", s.Start.String(), s.End.Line, s.End.Column)
}

// Contains reports whether p lies inside the span.
func (s Span) Contains(p Position) bool {
	return !p.Before(s.Start) && p.Before(s.End)
}

// NoPos is a zero Position used when position is unknown.
var NoPos = Position{}
