// Package swim defines the moving entity, its per-tick lifecycle, and the
// behavior contract that movement strategies implement. A behavior instance
// may be shared by many swimmers, so all per-entity state lives in the
// swimmer's scratch store, never on the behavior itself.
package swim

import (
	"math"

	"github.com/lixenwraith/fishtank/core"
)

// Behavior advances one swimmer by one tick.
// Implementations mutate the swimmer's position and scratch store only; the
// context is read-only.
type Behavior interface {
	Advance(s *Swimmer, ctx *Context)
}

// Finisher is an optional behavior capability. When present, Done fully
// replaces the default off-screen removal check.
type Finisher interface {
	Done(s *Swimmer, ctx *Context) bool
}

// Swimmer is one live entity in the pool
type Swimmer struct {
	Row, Col float64 // floating position, col may run off either edge
	Dir      int     // +1 rightward, -1 leftward, fixed after creation
	Speed    float64 // columns per tick at full horizontal rate
	Sprite   *core.Sprite
	Style    string // opaque style tag passed through to the host
	Species  string // population tag used for spawn caps, may be empty
	Age      int    // ticks lived, incremented before the behavior runs

	behavior Behavior
	data     map[string]any
}

// New creates a swimmer at the origin moving rightward at unit speed.
// Callers position it afterwards; the scratch store starts empty.
func New(sprite *core.Sprite, b Behavior) *Swimmer {
	return &Swimmer{
		Dir:      1,
		Speed:    1,
		Sprite:   sprite,
		behavior: b,
		data:     make(map[string]any),
	}
}

// Behavior returns the current movement strategy
func (s *Swimmer) Behavior() Behavior {
	return s.behavior
}

// SetBehavior replaces the movement strategy. Behaviors call this to hand an
// entity off; the replacement runs from the next advance.
func (s *Swimmer) SetBehavior(b Behavior) {
	s.behavior = b
}

// GetData returns the scratch value stored under key
func (s *Swimmer) GetData(key string) (any, bool) {
	v, ok := s.data[key]
	return v, ok
}

// SetData stores a scratch value under key. The store belongs to whichever
// behavior currently drives the swimmer.
func (s *Swimmer) SetData(key string, val any) {
	if s.data == nil {
		s.data = make(map[string]any)
	}
	s.data[key] = val
}

// Update advances the swimmer one tick and reports whether it survives.
// The age increments first so behaviors see it starting at 1. Removal is
// decided by the behavior's Done when it implements Finisher; otherwise the
// swimmer dies once it has fully crossed past its direction's far edge.
func (s *Swimmer) Update(ctx *Context) bool {
	s.Age++
	if s.behavior != nil {
		s.behavior.Advance(s, ctx)
	}

	// A hand-off during Advance swaps the slot, so this sees the new behavior
	if f, ok := s.behavior.(Finisher); ok {
		return !f.Done(s, ctx)
	}

	if s.Dir >= 0 {
		return s.Col <= float64(ctx.Width+1)
	}
	return s.Col >= -float64(s.Sprite.Width+1)
}

// Frame is the drawable snapshot of a swimmer for one tick
type Frame struct {
	Row    int
	Col    int
	Sprite *core.Sprite
	Style  string
}

// Render snapshots the integral display position. The floating position is
// kept internally for sub-cell motion; only the snapshot is floored.
func (s *Swimmer) Render() Frame {
	return Frame{
		Row:    int(math.Floor(s.Row)),
		Col:    int(math.Floor(s.Col)),
		Sprite: s.Sprite,
		Style:  s.Style,
	}
}
