package behavior

import (
	"math"
	"regexp"

	"github.com/lixenwraith/fishtank/swim"
)

// seekTargetKey holds the acquired target in the swimmer's scratch store.
// A missing entry means not yet acquired; a nil entry means the target is
// spent, either because nothing matched or because the swimmer arrived.
const seekTargetKey = "seek.target"

type seekTarget struct {
	row float64
	col float64
}

// Seek steers the swimmer toward the first text match in the viewport, then
// hands it off to a replacement behavior.
//
// The state machine lives entirely in scratch. Transitions are one-way: once
// the target is spent the next advance replaces the behavior slot, so the
// hand-off runs exactly once and acquisition can never restart.
type Seek struct {
	Patterns []*regexp.Regexp // tried in order, first match wins
	Handoff  Spec             // resolved at hand-off, zero value is Horizontal
}

func (k Seek) Advance(s *swim.Swimmer, ctx *swim.Context) {
	var tgt *seekTarget
	if v, ok := s.GetData(seekTargetKey); ok {
		tgt = v.(*seekTarget)
	} else {
		tgt = k.acquire(ctx)
		s.SetData(seekTargetKey, tgt)
	}

	if tgt == nil {
		k.release(s)
		return
	}

	dc := tgt.col - s.Col
	dr := tgt.row - s.Row

	// Close enough to snap. The column lands exactly on the match; the row
	// keeps whatever sub-cell offset remains.
	if math.Abs(dc) <= s.Speed && math.Abs(dr) <= 0.5 {
		s.Col = tgt.col
		s.SetData(seekTargetKey, (*seekTarget)(nil))
		return
	}

	s.Col += math.Copysign(math.Min(math.Abs(dc), s.Speed), dc)
	s.Row += math.Copysign(math.Min(math.Abs(dr), 0.5), dr)
}

// acquire scans the viewport top to bottom for the first match.
// Priority is lowest row, then pattern order within the row, then leftmost
// match of that pattern. The match byte offset is the target column, which
// equals the display column because visible text is tab-expanded.
func (k Seek) acquire(ctx *swim.Context) *seekTarget {
	for row := 0; row < ctx.Height; row++ {
		text := ctx.VisibleText(row)
		if text == "" {
			continue
		}
		for _, re := range k.Patterns {
			if loc := re.FindStringIndex(text); loc != nil {
				return &seekTarget{row: float64(row), col: float64(loc[0])}
			}
		}
	}
	return nil
}

// release swaps in the hand-off behavior and applies the plain horizontal
// step so the swimmer keeps moving on the transition tick
func (k Seek) release(s *swim.Swimmer) {
	next, err := Resolve(k.Handoff)
	if err != nil {
		next = Horizontal{}
	}
	s.SetBehavior(next)
	s.Col += s.Speed * float64(s.Dir)
}
