// Package render computes what part of a sprite is actually drawable over a
// row of real text. Sprites duck behind printed characters and surface in
// whitespace, so a single sprite line can come out the other side as zero,
// one, or several visible segments.
package render

import "strings"

// Chunk is a styled run of text within a segment
type Chunk struct {
	Text  string
	Style string
}

// Segment is one contiguous visible run of a sprite line.
// Col is the destination display column of the first chunk byte. Columns are
// not clamped; callers must tolerate negative or past-the-edge values.
type Segment struct {
	Col    int
	Chunks []Chunk
}

// Text returns the concatenated chunk text
func (s Segment) Text() string {
	if len(s.Chunks) == 1 {
		return s.Chunks[0].Text
	}
	var b strings.Builder
	for _, c := range s.Chunks {
		b.WriteString(c.Text)
	}
	return b.String()
}

// Clip splits one sprite line into its visible segments over rowText.
// A sprite byte at destination column d is hidden when d lands on a non-space
// byte of rowText; it is visible when d falls outside rowText entirely or on
// a space. rowText must already be tab-expanded so byte index equals display
// column.
func Clip(startCol int, spriteLine, style, rowText string) []Segment {
	var segs []Segment
	runStart := -1

	flush := func(end int) {
		if runStart < 0 {
			return
		}
		segs = append(segs, Segment{
			Col:    startCol + runStart,
			Chunks: []Chunk{{Text: spriteLine[runStart:end], Style: style}},
		})
		runStart = -1
	}

	for i := 0; i < len(spriteLine); i++ {
		dest := startCol + i
		if dest >= 0 && dest < len(rowText) && rowText[dest] != ' ' {
			flush(i)
			continue
		}
		if runStart < 0 {
			runStart = i
		}
	}
	flush(len(spriteLine))

	return segs
}
