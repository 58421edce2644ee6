package behavior

import "github.com/lixenwraith/fishtank/swim"

// Horizontal drifts straight across at the swimmer's own speed and direction.
// The baseline strategy and the fallback everything else degrades to; the
// zero value is ready to use and safe to share.
type Horizontal struct{}

func (Horizontal) Advance(s *swim.Swimmer, ctx *swim.Context) {
	s.Col += s.Speed * float64(s.Dir)
}
