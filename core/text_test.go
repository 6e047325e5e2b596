package core

import "testing"

func TestFoldWord(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  Alpha ", "alpha"},
		{"NAND", "nand"},
		{"Anônimo", "anônimo"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FoldWord(tt.in); got != tt.want {
			t.Errorf("FoldWord(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFoldRune(t *testing.T) {
	if got := FoldRune('Q'); got != 'q' {
		t.Errorf("Expected 'q', got %q", got)
	}
	if got := FoldRune('x'); got != 'x' {
		t.Errorf("Expected 'x', got %q", got)
	}
	if got := FoldRune('Ê'); got != 'ê' {
		t.Errorf("Expected 'ê', got %q", got)
	}
}
