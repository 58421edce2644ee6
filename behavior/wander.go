package behavior

import "github.com/lixenwraith/fishtank/swim"

// Wander drifts horizontally and occasionally nudges one row up or down,
// clamped to the viewport
type Wander struct {
	Chance float64 // per-tick nudge probability, <= 0 means DefaultWanderChance
}

func (w Wander) Advance(s *swim.Swimmer, ctx *swim.Context) {
	s.Col += s.Speed * float64(s.Dir)

	if ctx.Rand == nil {
		return
	}
	chance := w.Chance
	if chance <= 0 {
		chance = DefaultWanderChance
	}
	if ctx.Rand.Float64() >= chance {
		return
	}

	row := s.Row + 1
	if ctx.Rand.Intn(2) == 0 {
		row = s.Row - 1
	}
	if bottom := float64(ctx.Height - 1); row > bottom {
		row = bottom
	}
	if row < 0 {
		row = 0
	}
	s.Row = row
}
