package grid

// BuildCells combines grouped horizontal and vertical grid lines into cells.
// Every adjacent pair of horizontal lines crossed with every adjacent pair of
// vertical lines forms a candidate rectangle; a candidate survives when both
// dimensions exceed bounds.MinCellPx and stay under bounds.MaxFraction of the
// corresponding image dimension. Iteration is row-major and assigns each
// accepted cell its Index, which downstream selection state is keyed on.
//
// Fewer than two lines on either axis means no grid: the result is empty,
// not an error.
func BuildCells(hLines, vLines []int, width, height int, bounds SizeBounds) []Cell {
	if len(hLines) < 2 || len(vLines) < 2 {
		return nil
	}
	maxW := bounds.MaxFraction * float64(width)
	maxH := bounds.MaxFraction * float64(height)
	var cells []Cell
	for i := 0; i+1 < len(hLines); i++ {
		ch := hLines[i+1] - hLines[i]
		if ch <= bounds.MinCellPx || float64(ch) >= maxH {
			continue
		}
		for j := 0; j+1 < len(vLines); j++ {
			cw := vLines[j+1] - vLines[j]
			if cw <= bounds.MinCellPx || float64(cw) >= maxW {
				continue
			}
			cells = append(cells, Cell{
				Index:  len(cells),
				X:      vLines[j],
				Y:      hLines[i],
				Width:  cw,
				Height: ch,
			})
		}
	}
	return cells
}
