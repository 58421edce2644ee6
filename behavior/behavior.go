// Package behavior implements the built-in movement strategies and the
// specification union that resolves them at spawn time.
//
// A resolved behavior may drive many swimmers at once, so strategies are
// immutable configuration plus transition logic; anything per-entity goes in
// the swimmer's scratch store under a behavior-owned key.
package behavior

import "github.com/lixenwraith/fishtank/swim"

// Tunable defaults for the built-in presets
const (
	DefaultWanderChance = 0.08
	DefaultAmplitude    = 1.0
	DefaultPeriod       = 20.0
)

// MoveFunc is a plain movement function usable as a behavior specification.
// It returns the column and row deltas to apply for one tick.
type MoveFunc func(tick int64, s *swim.Swimmer, ctx *swim.Context) (dx, dy float64)

// funcBehavior adapts a MoveFunc to the Behavior interface
type funcBehavior struct {
	fn MoveFunc
}

func (b funcBehavior) Advance(s *swim.Swimmer, ctx *swim.Context) {
	dx, dy := b.fn(ctx.Tick, s, ctx)
	s.Col += dx
	s.Row += dy
}
