// Package engine drives the animation: a fixed-tick scheduler that runs the
// spawn, update and render phases over one shared entity pool and draws the
// results through a Host.
package engine

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/fishtank/core"
	"github.com/lixenwraith/fishtank/render"
	"github.com/lixenwraith/fishtank/status"
	"github.com/lixenwraith/fishtank/swim"
)

// DefaultTickInterval paces the scheduler when Start is given no interval
const DefaultTickInterval = 150 * time.Millisecond

// Config carries the engine's injectable collaborators.
// The zero value works: a nil Rand seeds from the clock and a nil Status
// allocates a private registry.
type Config struct {
	Rand   core.Rand
	Status *status.Registry
}

// Engine owns the entity pool and the tick loop. One goroutine runs the
// loop; ticks never overlap. All mutable state is guarded by mu, so hosts
// may call lifecycle methods from any goroutine.
type Engine struct {
	host Host

	mu       sync.Mutex
	spawners []Spawner
	pool     []*swim.Swimmer
	tick     int64
	running  bool
	stopCh   chan struct{}
	wg       sync.WaitGroup

	rand   core.Rand
	status *status.Registry

	// Cached metric pointers
	statTicks       *atomic.Int64
	statTicksAbort  *atomic.Int64
	statPanics      *atomic.Int64
	statLive        *atomic.Int64
	statSpawned     *atomic.Int64
	statSegments    *atomic.Int64
	statDrawErrors  *atomic.Int64
	statTickSeconds *status.AtomicFloat
	statRunning     *atomic.Bool
}

// New creates a stopped engine drawing through host
func New(host Host, cfg Config) *Engine {
	if cfg.Rand == nil {
		cfg.Rand = core.NewRand(0)
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}

	return &Engine{
		host:   host,
		rand:   cfg.Rand,
		status: cfg.Status,

		statTicks:       cfg.Status.Int("engine.ticks"),
		statTicksAbort:  cfg.Status.Int("engine.ticks_aborted"),
		statPanics:      cfg.Status.Int("engine.panics"),
		statLive:        cfg.Status.Int("pool.live"),
		statSpawned:     cfg.Status.Int("pool.spawned"),
		statSegments:    cfg.Status.Int("render.segments"),
		statDrawErrors:  cfg.Status.Int("render.draw_errors"),
		statTickSeconds: cfg.Status.Float("engine.tick_seconds"),
		statRunning:     cfg.Status.Bool("engine.running"),
	}
}

// Status returns the metrics registry the engine reports into
func (e *Engine) Status() *status.Registry {
	return e.status
}

// RegisterSpawner adds a population source. Safe to call while running;
// each registered spawner gets one Spawn call per tick.
func (e *Engine) RegisterSpawner(sp Spawner) {
	if sp == nil {
		return
	}
	e.mu.Lock()
	e.spawners = append(e.spawners, sp)
	e.mu.Unlock()
}

// Start launches the tick loop. An interval of zero or less means
// DefaultTickInterval. Starting a running engine is an error.
func (e *Engine) Start(interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return fmt.Errorf("engine already running")
	}
	e.running = true
	e.stopCh = make(chan struct{})
	stopCh := e.stopCh
	e.mu.Unlock()

	e.statRunning.Store(true)

	e.wg.Add(1)
	go e.loop(stopCh, interval)
	return nil
}

// Stop halts the loop and tears the animation down: the pool is discarded,
// overlays are cleared and the tick counter resets. A stopped engine can be
// started again. Stopping a stopped engine is a no-op.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	stopCh := e.stopCh
	e.mu.Unlock()

	close(stopCh)
	e.wg.Wait()

	e.mu.Lock()
	e.pool = nil
	e.tick = 0
	e.mu.Unlock()

	e.statRunning.Store(false)
	e.statLive.Store(0)
	e.statSegments.Store(0)
	e.statTickSeconds.Set(0)

	// Teardown is best-effort; the surface may already be gone
	_ = e.host.ClearOverlays()
}

// Toggle starts the engine when stopped and stops it when running
func (e *Engine) Toggle(interval time.Duration) error {
	if e.Running() {
		e.Stop()
		return nil
	}
	return e.Start(interval)
}

// Running reports whether the tick loop is live
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

func (e *Engine) loop(stopCh chan struct{}, interval time.Duration) {
	defer e.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			e.runTick()
		}
	}
}

// runTick executes one spawn, update, render cycle. Host failures abandon
// the tick; the ticker keeps its schedule and the next tick starts clean.
func (e *Engine) runTick() {
	defer func() {
		if r := recover(); r != nil {
			e.statPanics.Add(1)
		}
	}()

	start := time.Now()

	e.mu.Lock()
	defer e.mu.Unlock()

	vp, err := e.host.Viewport()
	if err != nil {
		e.statTicksAbort.Add(1)
		return
	}
	width := vp.Width
	height := vp.Height()
	if width <= 0 || height <= 0 {
		e.statTicksAbort.Add(1)
		return
	}

	e.tick++
	e.statTicks.Add(1)

	tabstop := e.host.Tabstop()
	ctx := swim.NewContext(width, height, e.tick, e.rand, func(visible int) string {
		return render.ExpandTabs(e.host.LineText(vp.AbsRow(visible)), tabstop)
	})

	// 1. Spawn: each spawner sees the pool grown by earlier spawners
	ctx.Entities = e.pool
	for _, sp := range e.spawners {
		if s := sp.Spawn(ctx); s != nil {
			e.pool = append(e.pool, s)
			ctx.Entities = e.pool
			e.statSpawned.Add(1)
		}
	}

	// 2. Update: filter the pool in place, nil the tail for the collector
	live := e.pool[:0]
	for _, s := range e.pool {
		if s.Update(ctx) {
			live = append(live, s)
		}
	}
	for i := len(live); i < len(e.pool); i++ {
		e.pool[i] = nil
	}
	e.pool = live
	e.statLive.Store(int64(len(e.pool)))

	// 3. Render: redraw every overlay from scratch
	if err := e.host.ClearOverlays(); err != nil {
		e.statTicksAbort.Add(1)
		return
	}

	segments := 0
	for _, s := range e.pool {
		f := s.Render()
		for i, line := range f.Sprite.Lines {
			visRow := f.Row + i
			if visRow < 0 || visRow >= height {
				continue
			}
			rowText := ctx.VisibleText(visRow)
			for _, seg := range render.Clip(f.Col, line, f.Style, rowText) {
				segments++
				if err := e.host.DrawOverlay(vp.AbsRow(visRow), seg.Col, seg.Chunks); err != nil {
					e.statDrawErrors.Add(1)
				}
			}
		}
	}
	e.statSegments.Store(int64(segments))
	e.statTickSeconds.Set(time.Since(start).Seconds())
}
