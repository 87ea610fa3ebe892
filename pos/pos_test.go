package pos

import (
	"strings"
	"testing"
)

func TestLineCol(t *testing.T) {
	doc := NewDoc([]byte("ab\ncd\n\nefg"))
	tests := []struct {
		off, line, col int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 0, 2}, // the newline itself
		{3, 1, 0},
		{5, 1, 2},
		{6, 2, 0},
		{7, 3, 0},
		{9, 3, 2},
	}
	for _, tt := range tests {
		l, c := doc.LineCol(tt.off)
		if l != tt.line || c != tt.col {
			t.Errorf("LineCol(%d) = %d,%d, want %d,%d", tt.off, l, c, tt.line, tt.col)
		}
	}
}

func TestPosString(t *testing.T) {
	doc := NewDoc([]byte("hello\nworld"))
	s := doc.At(7).String()
	if !strings.Contains(s, "line=1") || !strings.Contains(s, "offset 7") {
		t.Errorf("Pos.String() = %q", s)
	}
}

func TestAtClamps(t *testing.T) {
	doc := NewDoc([]byte("xy"))
	if p := doc.At(99); p.I != 2 {
		t.Errorf("At(99).I = %d", p.I)
	}
	if p := doc.At(-1); p.I != 0 {
		t.Errorf("At(-1).I = %d", p.I)
	}
}
