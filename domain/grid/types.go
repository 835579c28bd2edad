package grid

import "image"

// Cell is one rectangle of the detected participant grid. Coordinates are
// pixels relative to the scanned frame's top-left corner. Cells are immutable
// once built; Index is the cell's position in row-major detection order and
// is the key all selection state and labels hang off.
type Cell struct {
	Index  int
	X      int
	Y      int
	Width  int
	Height int
}

// Rect returns the cell as an image.Rectangle.
func (c Cell) Rect() image.Rectangle {
	return image.Rect(c.X, c.Y, c.X+c.Width, c.Y+c.Height)
}

// SizeBounds filters candidate cells by absolute minimum size and by a
// maximum fraction of each image dimension. A candidate spanning nearly the
// whole frame indicates a false grid line, not a real cell boundary.
type SizeBounds struct {
	MinCellPx   int
	MaxFraction float64
}
