package behavior

import (
	"math"

	"github.com/lixenwraith/fishtank/swim"
)

// sineBaseKey stores the row the swimmer oscillates around
const sineBaseKey = "sine.base"

// Sine drifts horizontally while the row follows a smooth wave around the
// row the swimmer had when the behavior first ran
type Sine struct {
	Amplitude float64 // rows of deviation, 0 means DefaultAmplitude
	Period    float64 // ticks per full cycle, <= 0 means DefaultPeriod
}

func (b Sine) Advance(s *swim.Swimmer, ctx *swim.Context) {
	s.Col += s.Speed * float64(s.Dir)

	var base float64
	if v, ok := s.GetData(sineBaseKey); ok {
		base = v.(float64)
	} else {
		base = s.Row
		s.SetData(sineBaseKey, base)
	}

	amp := b.Amplitude
	if amp == 0 {
		amp = DefaultAmplitude
	}
	period := b.Period
	if period <= 0 {
		period = DefaultPeriod
	}

	s.Row = base + amp*math.Sin(2*math.Pi*float64(s.Age)/period)
}
