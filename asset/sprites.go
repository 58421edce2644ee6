// Package asset holds the built-in sprite art as plain string constants.
// One byte is one display column, so the art stays strictly ASCII; sprite
// rows are separated by newlines.
package asset

// Small fish, one row, mirror images of one another
const (
	FishRight = "><>"
	FishLeft  = "<><"
)

// Big fish, three rows, for multi-row clipping
const (
	BigFishRight = `  /\
-<  o>
  \/`

	BigFishLeft = `  /\
<o  >-
  \/`
)

// Bubble drifting up from the depths
const Bubble = "o"
