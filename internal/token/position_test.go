package token

import "testing"

func TestLinesPosition(t *testing.T) {
	src := "let a = 1\nlet b = 2\n\nfunc f() {}"
	lines := NewLines("main.swift", len(src))
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines.AddLine(i + 1)
		}
	}

	tests := []struct {
		offset     int
		line, col  int
		wantString string
	}{
		{0, 1, 1, "main.swift:1:1"},
		{4, 1, 5, "main.swift:1:5"},
		{10, 2, 1, "main.swift:2:1"},
		{20, 3, 1, "main.swift:3:1"},
		{21, 4, 1, "main.swift:4:1"},
		{23, 4, 3, "main.swift:4:3"},
	}
	for _, tt := range tests {
		p := lines.Position(tt.offset)
		if p.Line != tt.line || p.Column != tt.col {
			t.Errorf("Position(%d) = %d:%d, want %d:%d", tt.offset, p.Line, p.Column, tt.line, tt.col)
		}
		if p.String() != tt.wantString {
			t.Errorf("Position(%d).String() = %q, want %q", tt.offset, p.String(), tt.wantString)
		}
	}
}

func TestPositionCompare(t *testing.T) {
	a := Position{Line: 1, Column: 3, Offset: 2}
	b := Position{Line: 2, Column: 1, Offset: 10}
	if !a.Before(b) || b.Before(a) {
		t.Error("Before ordering mismatch")
	}
	if NoPos.IsValid() {
		t.Error("NoPos should be invalid")
	}
	s := Span{Start: a, End: b}
	if s.Len() != 8 {
		t.Errorf("Span.Len() = %d, want 8", s.Len())
	}
}
