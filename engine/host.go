package engine

import (
	"github.com/lixenwraith/fishtank/core"
	"github.com/lixenwraith/fishtank/render"
	"github.com/lixenwraith/fishtank/swim"
)

// Host is the embedding application's display surface.
// Rows handed to LineText and DrawOverlay are 0-indexed absolute display
// rows; the engine converts visible rows using the reported viewport. A host
// guarantees monospace cells, one byte per column.
type Host interface {
	// Viewport returns the currently visible region. An error aborts the tick.
	Viewport() (core.Viewport, error)

	// LineText returns the raw text of an absolute display row, "" when the
	// row does not exist. Tabs are the engine's problem.
	LineText(row int) string

	// Tabstop returns the width used to expand tabs, typically 4 or 8
	Tabstop() int

	// DrawOverlay renders styled chunks anchored at col on an absolute row.
	// Overlays are opaque, sit above the text, and may be issued many times
	// per row per tick.
	DrawOverlay(row, col int, chunks []render.Chunk) error

	// ClearOverlays removes every overlay the engine has drawn
	ClearOverlays() error
}

// Spawner adds entities to the pool. Spawn runs once per tick and returns
// nil when nothing spawns.
type Spawner interface {
	Spawn(ctx *swim.Context) *swim.Swimmer
}

// SpawnerFunc adapts a plain function to the Spawner interface
type SpawnerFunc func(ctx *swim.Context) *swim.Swimmer

func (f SpawnerFunc) Spawn(ctx *swim.Context) *swim.Swimmer {
	return f(ctx)
}
