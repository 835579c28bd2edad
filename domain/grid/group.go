package grid

// GroupLines clusters a strictly increasing slice of raw edge coordinates
// into one representative coordinate per grid line. A gap of less than
// proximity pixels continues the current cluster; a gap of proximity or more
// starts a new one. Each output line is the rounded mean of its cluster, so
// grouping an already-grouped set with the same proximity is a no-op.
func GroupLines(coords []int, proximity int) []int {
	if len(coords) == 0 {
		return nil
	}
	var (
		lines []int
		sum   int
		n     int
		last  int
	)
	flush := func() {
		if n > 0 {
			lines = append(lines, (sum+n/2)/n)
		}
		sum, n = 0, 0
	}
	for _, c := range coords {
		if n > 0 && c-last >= proximity {
			flush()
		}
		sum += c
		n++
		last = c
	}
	flush()
	return lines
}
