// Package core holds the foundational types shared by every layer of the
// animation engine: parsed sprites, host viewport geometry, and the injected
// randomness capability.
package core

import "strings"

// Sprite is a parsed multi-line sprite blob.
// Lines are split on "\n" once at creation. Width is the longest line in
// bytes and Height the line count; the engine treats one byte as one display
// column (monospace, no wide-rune handling).
type Sprite struct {
	Text   string
	Lines  []string
	Width  int
	Height int
}

// NewSprite derives the line form and dimensions of a sprite blob
func NewSprite(text string) *Sprite {
	lines := strings.Split(text, "\n")
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	return &Sprite{
		Text:   text,
		Lines:  lines,
		Width:  width,
		Height: len(lines),
	}
}
