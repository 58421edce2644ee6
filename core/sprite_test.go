package core

import "testing"

func TestNewSpriteSingleLine(t *testing.T) {
	s := NewSprite("><>")

	if s.Width != 3 {
		t.Errorf("Expected width 3, got %d", s.Width)
	}
	if s.Height != 1 {
		t.Errorf("Expected height 1, got %d", s.Height)
	}
	if len(s.Lines) != 1 || s.Lines[0] != "><>" {
		t.Errorf("Expected single line \"><>\", got %v", s.Lines)
	}
}

func TestNewSpriteMultiLine(t *testing.T) {
	s := NewSprite("_\n><>\no")

	if s.Height != 3 {
		t.Errorf("Expected height 3, got %d", s.Height)
	}
	// Width is the longest line, not the first or last
	if s.Width != 3 {
		t.Errorf("Expected width 3, got %d", s.Width)
	}
	if s.Lines[0] != "_" || s.Lines[1] != "><>" || s.Lines[2] != "o" {
		t.Errorf("Unexpected lines %v", s.Lines)
	}
}

func TestNewSpriteEmpty(t *testing.T) {
	s := NewSprite("")

	if s.Width != 0 {
		t.Errorf("Expected width 0, got %d", s.Width)
	}
	if s.Height != 1 {
		t.Errorf("Expected height 1, got %d", s.Height)
	}
}

func TestNewSpriteKeepsBlankLines(t *testing.T) {
	s := NewSprite("><>\n\n<><")

	if s.Height != 3 {
		t.Errorf("Expected height 3, got %d", s.Height)
	}
	if s.Lines[1] != "" {
		t.Errorf("Expected blank middle line, got %q", s.Lines[1])
	}
}

func TestViewportHeight(t *testing.T) {
	tests := []struct {
		name string
		vp   Viewport
		want int
	}{
		{"full screen", Viewport{TopRow: 1, BottomRow: 24, Width: 80}, 24},
		{"scrolled", Viewport{TopRow: 10, BottomRow: 14, Width: 80}, 5},
		{"single row", Viewport{TopRow: 3, BottomRow: 3, Width: 80}, 1},
		{"inverted bounds", Viewport{TopRow: 5, BottomRow: 2, Width: 80}, 0},
	}

	for _, tt := range tests {
		if got := tt.vp.Height(); got != tt.want {
			t.Errorf("%s: Height() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestViewportAbsRow(t *testing.T) {
	vp := Viewport{TopRow: 10, BottomRow: 20, Width: 80}

	if got := vp.AbsRow(0); got != 9 {
		t.Errorf("AbsRow(0) = %d, want 9", got)
	}
	if got := vp.AbsRow(5); got != 14 {
		t.Errorf("AbsRow(5) = %d, want 14", got)
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)

	for i := 0; i < 16; i++ {
		if av, bv := a.Float64(), b.Float64(); av != bv {
			t.Fatalf("Same seed diverged at draw %d: %f vs %f", i, av, bv)
		}
	}
}

func TestNewRandIntnRange(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 100; i++ {
		if v := r.Intn(5); v < 0 || v >= 5 {
			t.Fatalf("Intn(5) = %d out of range", v)
		}
	}
}
