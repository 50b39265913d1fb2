package token

import "fmt"

// Position represents a location in the input text.
//
// Line and Column are 1-based and count code points; Offset is the 0-based
// byte offset from the start of the input. For the end of a region, Offset
// is the offset of the first byte after the region, so
// input[start.Offset:end.Offset] is the region's text.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

// String returns the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Span represents a half-open [Start, End) range in the input text.
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Len returns the span's length in bytes.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// Contains returns true if the span contains the given byte offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// IsValid returns true if both start and end positions are valid.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}
