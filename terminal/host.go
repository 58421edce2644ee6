// Package terminal is a tcell-backed host for the fishtank engine. It owns
// a read-only text pane, composites engine overlays opaquely above it, and
// keeps a HUD line fed from the status registry on the bottom screen row.
package terminal

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fishtank/core"
	"github.com/lixenwraith/fishtank/render"
	"github.com/lixenwraith/fishtank/status"
)

var errClosed = errors.New("terminal host closed")

// Config adjusts pane rendering. The zero value is usable.
type Config struct {
	// Tabstop is the tab expansion width, 8 when unset
	Tabstop int

	// Styles maps overlay style tags to terminal styles. Tags without a
	// mapping fall back to Fallback.
	Styles map[string]tcell.Style

	// Fallback renders overlay chunks whose tag has no mapping
	Fallback tcell.Style

	// Text renders the pane itself
	Text tcell.Style

	// HUD renders the bottom status line, reverse video when unset
	HUD tcell.Style

	// Status feeds the HUD counters. With a nil registry the HUD shows
	// only the key help.
	Status *status.Registry
}

// DefaultStyles returns the palette the demo ships with
func DefaultStyles() map[string]tcell.Style {
	return map[string]tcell.Style{
		"fish":   tcell.StyleDefault.Foreground(tcell.ColorGreen),
		"big":    tcell.StyleDefault.Foreground(tcell.ColorYellow),
		"bubble": tcell.StyleDefault.Foreground(tcell.ColorAqua),
		"hunter": tcell.StyleDefault.Foreground(tcell.ColorRed),
	}
}

// Host renders a text pane and engine overlays to a tcell screen. The
// caller owns the screen lifecycle; the host only draws on it. All methods
// are safe for concurrent use.
type Host struct {
	screen tcell.Screen

	tabstop  int
	styles   map[string]tcell.Style
	fallback tcell.Style
	text     tcell.Style
	hud      tcell.Style
	status   *status.Registry

	mu     sync.Mutex
	lines  []string
	top    int
	closed bool
}

// New wraps an initialized screen. Call SetText or Render to paint the
// first frame.
func New(screen tcell.Screen, cfg Config) *Host {
	tabstop := cfg.Tabstop
	if tabstop <= 0 {
		tabstop = 8
	}
	hudStyle := cfg.HUD
	if hudStyle == (tcell.Style{}) {
		hudStyle = tcell.StyleDefault.Reverse(true)
	}
	return &Host{
		screen:   screen,
		tabstop:  tabstop,
		styles:   cfg.Styles,
		fallback: cfg.Fallback,
		text:     cfg.Text,
		hud:      hudStyle,
		status:   cfg.Status,
	}
}

// SetText replaces the pane content and repaints
func (h *Host) SetText(text string) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.lines = lines
	h.clampTopLocked()
	h.paintLocked()
	h.screen.Show()
}

// LineCount returns the number of pane lines
func (h *Host) LineCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.lines)
}

// ScrollBy moves the pane top by delta rows, clamped to the text
func (h *Host) ScrollBy(delta int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.top += delta
	h.clampTopLocked()
	h.paintLocked()
	h.screen.Show()
}

// Render repaints the whole screen, pane and HUD both. Overlays drawn since
// the last clear are dropped until the next tick redraws them.
func (h *Host) Render() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.clampTopLocked()
	h.paintLocked()
	h.screen.Show()
}

// Close stops the host. Later draw calls fail; the screen itself stays up
// for the caller to finalize.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
}

// ===== Engine surface =====

// Viewport reports the visible slice of the text pane. The bottom screen
// row belongs to the HUD and is never part of the viewport.
func (h *Host) Viewport() (core.Viewport, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return core.Viewport{}, errClosed
	}
	w, sh := h.screen.Size()
	return core.Viewport{TopRow: h.top + 1, BottomRow: h.top + sh - 1, Width: w}, nil
}

// LineText returns the raw, unexpanded text of an absolute pane row
func (h *Host) LineText(row int) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if row < 0 || row >= len(h.lines) {
		return ""
	}
	return h.lines[row]
}

// Tabstop returns the pane's tab expansion width
func (h *Host) Tabstop() int {
	return h.tabstop
}

// DrawOverlay paints styled chunks over the pane. Rows that scrolled out of
// view since the engine read the viewport are skipped, not failed.
func (h *Host) DrawOverlay(row, col int, chunks []render.Chunk) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return errClosed
	}
	w, sh := h.screen.Size()
	y := row - h.top
	if y < 0 || y >= sh-1 {
		return nil
	}
	x := col
	for _, c := range chunks {
		st, ok := h.styles[c.Style]
		if !ok {
			st = h.fallback
		}
		for i := 0; i < len(c.Text); i++ {
			if sx := x + i; sx >= 0 && sx < w {
				h.screen.SetContent(sx, y, rune(c.Text[i]), nil, st)
			}
		}
		x += len(c.Text)
	}
	h.screen.Show()
	return nil
}

// ClearOverlays repaints the pane, erasing everything drawn over it. The
// HUD refreshes on the same pass, so its counters track the tick rate.
func (h *Host) ClearOverlays() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return errClosed
	}
	h.paintLocked()
	h.screen.Show()
	return nil
}

// ===== Painting =====

func (h *Host) clampTopLocked() {
	_, sh := h.screen.Size()
	maxTop := len(h.lines) - (sh - 1)
	if maxTop < 0 {
		maxTop = 0
	}
	if h.top > maxTop {
		h.top = maxTop
	}
	if h.top < 0 {
		h.top = 0
	}
}

func (h *Host) paintLocked() {
	w, sh := h.screen.Size()
	for y := 0; y < sh-1; y++ {
		line := ""
		if idx := h.top + y; idx < len(h.lines) {
			line = render.ExpandTabs(h.lines[idx], h.tabstop)
		}
		for x := 0; x < w; x++ {
			ch := ' '
			if x < len(line) {
				ch = rune(line[x])
			}
			h.screen.SetContent(x, y, ch, nil, h.text)
		}
	}
	h.paintHUDLocked(w, sh)
}

func (h *Host) paintHUDLocked(w, sh int) {
	if sh < 1 {
		return
	}
	text := h.hudLineLocked()
	y := sh - 1
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(text) {
			ch = rune(text[x])
		}
		h.screen.SetContent(x, y, ch, nil, h.hud)
	}
}

func (h *Host) hudLineLocked() string {
	const help = "[q]uit  [t]oggle  [j/k] scroll"
	if h.status == nil {
		return " fishtank  " + help
	}
	state := "stopped"
	if h.status.Bool("engine.running").Load() {
		state = "running"
	}
	return fmt.Sprintf(" fishtank %s  tick %d  live %d  %s",
		state,
		h.status.Int("engine.ticks").Load(),
		h.status.Int("pool.live").Load(),
		help)
}
