package render

import "testing"

// flatten reduces segments to (col, text) pairs for comparison
func flatten(segs []Segment) []struct {
	col  int
	text string
} {
	out := make([]struct {
		col  int
		text string
	}, 0, len(segs))
	for _, s := range segs {
		out = append(out, struct {
			col  int
			text string
		}{s.Col, s.Text()})
	}
	return out
}

func TestClipScenarios(t *testing.T) {
	tests := []struct {
		name     string
		startCol int
		sprite   string
		rowText  string
		want     []struct {
			col  int
			text string
		}
	}{
		{
			name:     "empty row passes whole sprite",
			startCol: 5,
			sprite:   "><>",
			rowText:  "",
			want: []struct {
				col  int
				text string
			}{{5, "><>"}},
		},
		{
			name:     "solid text hides everything",
			startCol: 0,
			sprite:   "><>",
			rowText:  "hello world",
			want:     nil,
		},
		{
			name:     "leading text clips the head",
			startCol: 1,
			sprite:   "><>",
			rowText:  "hi        ",
			want: []struct {
				col  int
				text string
			}{{2, "<>"}},
		},
		{
			name:     "text on both sides",
			startCol: 0,
			sprite:   "><>>>",
			rowText:  "a   b",
			want: []struct {
				col  int
				text string
			}{{1, "<>>"}},
		},
		{
			name:     "interleaved text splits into three",
			startCol: 1,
			sprite:   "><>>><",
			rowText:  "  x  x  ",
			want: []struct {
				col  int
				text string
			}{{1, ">"}, {3, ">>"}, {6, "<"}},
		},
	}

	for _, tt := range tests {
		got := flatten(Clip(tt.startCol, tt.sprite, "h", tt.rowText))
		if len(got) != len(tt.want) {
			t.Errorf("%s: Expected %d segments, got %d (%v)", tt.name, len(tt.want), len(got), got)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("%s: segment %d: Expected %+v, got %+v", tt.name, i, tt.want[i], got[i])
			}
		}
	}
}

func TestClipPastRowEnd(t *testing.T) {
	// Start at or beyond the row text: nothing can block
	segs := Clip(5, "><>", "h", "hello")
	if len(segs) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segs))
	}
	if segs[0].Col != 5 || segs[0].Text() != "><>" {
		t.Errorf("Expected {5, \"><>\"}, got {%d, %q}", segs[0].Col, segs[0].Text())
	}
}

func TestClipNegativeStart(t *testing.T) {
	// Positions left of column zero are off-row and therefore visible
	segs := Clip(-2, "><>", "h", "abc")
	if len(segs) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segs))
	}
	if segs[0].Col != -2 || segs[0].Text() != "><" {
		t.Errorf("Expected {-2, \"><\"}, got {%d, %q}", segs[0].Col, segs[0].Text())
	}
}

func TestClipSpriteSpacesAreDrawn(t *testing.T) {
	// Sprite spaces are ordinary bytes; only the row text decides visibility
	segs := Clip(0, "> <", "h", "    ")
	if len(segs) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segs))
	}
	if segs[0].Text() != "> <" {
		t.Errorf("Expected \"> <\", got %q", segs[0].Text())
	}
}

func TestClipSegmentsOrderedAndDisjoint(t *testing.T) {
	segs := Clip(0, "><>><>><>", "h", "a b c d e")

	prevEnd := -1 << 30
	for i, s := range segs {
		if len(s.Text()) < 1 {
			t.Errorf("Segment %d is empty", i)
		}
		if s.Col <= prevEnd {
			t.Errorf("Segment %d at col %d overlaps previous end %d", i, s.Col, prevEnd)
		}
		prevEnd = s.Col + len(s.Text()) - 1
	}
}

func TestClipCarriesStyle(t *testing.T) {
	segs := Clip(0, "><>", "IncSearch", "")
	if len(segs) != 1 || len(segs[0].Chunks) != 1 {
		t.Fatalf("Expected 1 segment with 1 chunk, got %v", segs)
	}
	if segs[0].Chunks[0].Style != "IncSearch" {
		t.Errorf("Expected style IncSearch, got %q", segs[0].Chunks[0].Style)
	}
}
