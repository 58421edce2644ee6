package swim

import "github.com/lixenwraith/fishtank/core"

// Context is the per-tick snapshot handed to spawners and behaviors.
// It is rebuilt every tick and treated as read-only by both; the engine alone
// maintains Entities as the pool changes during the spawn phase.
type Context struct {
	Width    int
	Height   int
	Tick     int64
	Entities []*Swimmer
	Rand     core.Rand

	lookup func(row int) string
	memo   map[int]string
}

// NewContext builds a tick context. lookup maps a 0-indexed visible row to
// its current tab-expanded text; it may be nil when no host text exists.
func NewContext(width, height int, tick int64, rnd core.Rand, lookup func(int) string) *Context {
	return &Context{
		Width:  width,
		Height: height,
		Tick:   tick,
		Rand:   rnd,
		lookup: lookup,
	}
}

// VisibleText returns the expanded text of a visible row, or "" for rows
// outside the viewport. Lookups are memoized for the life of the tick, so
// many seekers scanning the same rows cost one host call per row.
func (c *Context) VisibleText(row int) string {
	if row < 0 || row >= c.Height || c.lookup == nil {
		return ""
	}
	if text, ok := c.memo[row]; ok {
		return text
	}
	text := c.lookup(row)
	if c.memo == nil {
		c.memo = make(map[int]string)
	}
	c.memo[row] = text
	return text
}

// Population counts live entities tagged with species. An empty species
// counts the whole pool.
func (c *Context) Population(species string) int {
	if species == "" {
		return len(c.Entities)
	}
	n := 0
	for _, s := range c.Entities {
		if s.Species == species {
			n++
		}
	}
	return n
}
