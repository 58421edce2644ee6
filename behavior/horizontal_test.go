package behavior

import "testing"

func TestHorizontalRightward(t *testing.T) {
	s := newTestSwimmer(Horizontal{})
	s.Speed = 1.5

	Horizontal{}.Advance(s, plainContext(80, 24, nil))

	if s.Col != 6.5 {
		t.Errorf("Expected col 6.5, got %f", s.Col)
	}
	if s.Row != 10 {
		t.Errorf("Expected row untouched at 10, got %f", s.Row)
	}
}

func TestHorizontalLeftward(t *testing.T) {
	s := newTestSwimmer(Horizontal{})
	s.Dir = -1
	s.Speed = 2

	Horizontal{}.Advance(s, plainContext(80, 24, nil))

	if s.Col != 3 {
		t.Errorf("Expected col 3, got %f", s.Col)
	}
}
