package core

// Viewport describes the host's currently visible region.
// TopRow and BottomRow are 1-indexed inclusive display rows, the convention
// editor hosts report; Width is in columns. The engine converts to 0-indexed
// visible rows before use.
type Viewport struct {
	TopRow    int
	BottomRow int
	Width     int
}

// Height returns the number of visible rows, never negative
func (v Viewport) Height() int {
	h := v.BottomRow - v.TopRow + 1
	if h < 0 {
		return 0
	}
	return h
}

// AbsRow converts a 0-indexed visible row to the host's 0-indexed absolute row
func (v Viewport) AbsRow(visible int) int {
	return v.TopRow - 1 + visible
}
