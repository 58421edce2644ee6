package core

import (
	"math/rand"
	"time"
)

// Rand is the randomness capability consumed by spawners and behaviors.
// Implementations must produce uniform values. *math/rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a uniform float in [0, 1)
	Float64() float64

	// Intn returns a uniform int in [0, n); n must be > 0
	Intn(n int) int
}

// NewRand returns a Rand seeded with seed, or with the current time when seed
// is zero. Fixed seeds give deterministic spawn and wander sequences.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
