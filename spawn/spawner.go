// Package spawn turns per-population configuration into a stochastic swimmer
// factory. Each spawner owns one population: its cap, its odds, its sprite
// pair, and the behavior specification resolved fresh for every fish.
package spawn

import (
	"fmt"

	"github.com/lixenwraith/fishtank/asset"
	"github.com/lixenwraith/fishtank/behavior"
	"github.com/lixenwraith/fishtank/core"
	"github.com/lixenwraith/fishtank/swim"
)

// Config tunes one population
type Config struct {
	Max         int           // population cap, 0 disables spawning
	Chance      float64       // per-tick spawn probability in [0, 1]
	Style       string        // style tag stamped on spawned swimmers
	SpriteRight string        // art for left-edge entries moving right
	SpriteLeft  string        // art for right-edge entries moving left
	Behavior    behavior.Spec // resolved fresh per spawn
	Species     string        // population tag; empty caps against every entity
}

// DefaultConfig returns a small school of plain fish
func DefaultConfig() Config {
	return Config{
		Max:         5,
		Chance:      0.1,
		Style:       "fish",
		SpriteRight: asset.FishRight,
		SpriteLeft:  asset.FishLeft,
		Species:     "fish",
	}
}

// Spawner creates swimmers for one population
type Spawner struct {
	cfg         Config
	spriteRight *core.Sprite
	spriteLeft  *core.Sprite
}

// NewSpawner validates cfg and parses its sprites once.
// A missing sprite variant borrows the other side's art; the behavior
// specification must resolve so bad presets fail here, not mid-swim.
func NewSpawner(cfg Config) (*Spawner, error) {
	if cfg.Max < 0 {
		return nil, fmt.Errorf("spawner cap %d is negative", cfg.Max)
	}
	if cfg.Chance < 0 || cfg.Chance > 1 {
		return nil, fmt.Errorf("spawn chance %g outside [0, 1]", cfg.Chance)
	}
	if cfg.SpriteRight == "" && cfg.SpriteLeft == "" {
		return nil, fmt.Errorf("spawner needs sprite art for at least one direction")
	}
	if cfg.SpriteRight == "" {
		cfg.SpriteRight = cfg.SpriteLeft
	}
	if cfg.SpriteLeft == "" {
		cfg.SpriteLeft = cfg.SpriteRight
	}
	if _, err := behavior.Resolve(cfg.Behavior); err != nil {
		return nil, fmt.Errorf("spawner behavior: %w", err)
	}

	return &Spawner{
		cfg:         cfg,
		spriteRight: core.NewSprite(cfg.SpriteRight),
		spriteLeft:  core.NewSprite(cfg.SpriteLeft),
	}, nil
}

// Spawn rolls the population and probability gates, then creates one swimmer
// entering from a random side. Returns nil when nothing spawns this tick.
func (sp *Spawner) Spawn(ctx *swim.Context) *swim.Swimmer {
	if ctx.Rand == nil {
		return nil
	}
	if ctx.Population(sp.cfg.Species) >= sp.cfg.Max {
		return nil
	}
	if ctx.Rand.Float64() >= sp.cfg.Chance {
		return nil
	}

	b, err := behavior.Resolve(sp.cfg.Behavior)
	if err != nil {
		// Cannot happen for a spec that validated at construction
		return nil
	}

	sprite := sp.spriteRight
	dir := 1
	if ctx.Rand.Intn(2) == 1 {
		sprite = sp.spriteLeft
		dir = -1
	}

	s := swim.New(sprite, b)
	s.Dir = dir
	s.Style = sp.cfg.Style
	s.Species = sp.cfg.Species
	s.Speed = 0.5 + ctx.Rand.Float64()*1.5

	// Keep multi-row sprites fully inside the viewport vertically
	maxRow := ctx.Height - sprite.Height
	if maxRow < 0 {
		maxRow = 0
	}
	s.Row = float64(ctx.Rand.Intn(maxRow + 1))

	// Start fully off the entry edge
	if dir > 0 {
		s.Col = -float64(sprite.Width)
	} else {
		s.Col = float64(ctx.Width)
	}

	return s
}
