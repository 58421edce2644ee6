package behavior

import (
	"math"

	"github.com/lixenwraith/fishtank/swim"
)

// zigzagBaseKey stores the row the swimmer oscillates around
const zigzagBaseKey = "zigzag.base"

// Zigzag drifts horizontally while the row follows a triangle wave around
// the row the swimmer had when the behavior first ran. Same envelope as
// Sine, piecewise-linear instead of smooth.
type Zigzag struct {
	Amplitude float64 // rows of deviation, 0 means DefaultAmplitude
	Period    float64 // ticks per full cycle, <= 0 means DefaultPeriod
}

func (b Zigzag) Advance(s *swim.Swimmer, ctx *swim.Context) {
	s.Col += s.Speed * float64(s.Dir)

	var base float64
	if v, ok := s.GetData(zigzagBaseKey); ok {
		base = v.(float64)
	} else {
		base = s.Row
		s.SetData(zigzagBaseKey, base)
	}

	amp := b.Amplitude
	if amp == 0 {
		amp = DefaultAmplitude
	}
	period := b.Period
	if period <= 0 {
		period = DefaultPeriod
	}

	// 0 -> 1 -> 0 ramp over one period, remapped to [-1, 1]
	phase := math.Mod(float64(s.Age), period) / period
	tri := 2 * phase
	if phase >= 0.5 {
		tri = 2 * (1 - phase)
	}
	s.Row = base + amp*(2*tri-1)
}
