package token

import (
	"fmt"

	mtoken "modernc.org/token"
)

// Position is a resolved location in a source unit.
type Position struct {
	Filename string // optional
	Line     int    // 1-based
	Column   int    // 1-based, in bytes
	Offset   int    // 0-based byte offset
}

// String returns "file:line:col", or "line:col" when no filename is known.
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Before returns true if p is before other in the source.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

// Span is a half-open byte range [Start, End) in a source unit.
type Span struct {
	Start Position
	End   Position
}

// String returns a string representation of the span.
func (s Span) String() string {
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%s-%d", s.Start.String(), s.End.Column)
	}
	return fmt.Sprintf("%s-%s", s.Start.String(), s.End.String())
}

// Len returns the number of source bytes covered by the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// NoPos is a zero Position used when position is unknown.
var NoPos = Position{}

// Lines maps byte offsets of one source unit to line/column positions.
// It is a thin wrapper over a modernc.org/token File line table.
type Lines struct {
	file *mtoken.File
}

// NewLines returns an empty line table for a source of size bytes.
func NewLines(filename string, size int) *Lines {
	return &Lines{file: mtoken.NewFile(filename, size)}
}

// AddLine records that a new line starts at offset. Offsets must be added
// in increasing order; out-of-order or out-of-range offsets are ignored.
func (l *Lines) AddLine(offset int) {
	l.file.AddLine(offset)
}

// Position resolves offset to a Position.
func (l *Lines) Position(offset int) Position {
	if offset > l.file.Size() {
		offset = l.file.Size()
	}
	p := l.file.PositionFor(l.file.Pos(offset), false)
	return Position{
		Filename: p.Filename,
		Line:     p.Line,
		Column:   p.Column,
		Offset:   p.Offset,
	}
}
