package behavior

import (
	"github.com/lixenwraith/fishtank/core"
	"github.com/lixenwraith/fishtank/swim"
)

// scriptRand replays fixed draw sequences, wrapping when exhausted
type scriptRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

func newTestSwimmer(b swim.Behavior) *swim.Swimmer {
	s := swim.New(core.NewSprite("><>"), b)
	s.Row = 10
	s.Col = 5
	return s
}

func plainContext(width, height int, r core.Rand) *swim.Context {
	if r == nil {
		r = &scriptRand{}
	}
	return swim.NewContext(width, height, 1, r, nil)
}

func textContext(width int, lines []string) *swim.Context {
	return swim.NewContext(width, len(lines), 1, &scriptRand{}, func(row int) string {
		return lines[row]
	})
}

func approx(got, want float64) bool {
	d := got - want
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
