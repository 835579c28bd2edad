package grid

import (
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Scanner finds raw horizontal and vertical edge coordinates in a frame.
// A pixel counts as an edge pixel when the summed absolute RGB difference
// between its two neighbours across the scan axis exceeds DiffThreshold;
// a whole row (or column) becomes an edge when more than Fraction of its
// pixels are edge pixels. Integer arithmetic only, so repeated scans of the
// same frame are byte-identical.
type Scanner struct {
	DiffThreshold int     // summed per-channel difference, 0..765
	Fraction      float64 // fraction of row/column width that must be edge pixels
}

// Scan returns the raw horizontal edge rows and vertical edge columns of
// frame, each strictly increasing. Frames narrower or shorter than 3px yield
// empty sets on the corresponding axis. The two passes share no state and
// run concurrently; each pass is additionally chunked across workers.
func (s Scanner) Scan(frame *image.RGBA) (rows, cols []int) {
	if frame == nil {
		return nil, nil
	}
	var g errgroup.Group
	g.Go(func() error {
		rows = s.scanRows(frame)
		return nil
	})
	g.Go(func() error {
		cols = s.scanCols(frame)
		return nil
	})
	_ = g.Wait()
	return rows, cols
}

// scanRows compares, for every interior row y, the pixel directly above with
// the pixel directly below. Results land in a per-row flag slice so chunked
// workers never contend and the collected output order is deterministic.
func (s Scanner) scanRows(frame *image.RGBA) []int {
	b := frame.Bounds()
	w, h := b.Dx(), b.Dy()
	if h < 3 || w < 1 {
		return nil
	}
	hits := make([]bool, h)
	minEdge := s.Fraction * float64(w)

	var g errgroup.Group
	for _, ch := range chunks(1, h-1) {
		y0, y1 := ch[0], ch[1]
		g.Go(func() error {
			for y := y0; y < y1; y++ {
				above := frame.PixOffset(b.Min.X, b.Min.Y+y-1)
				below := frame.PixOffset(b.Min.X, b.Min.Y+y+1)
				count := 0
				for x := 0; x < w; x++ {
					if pixDiff(frame.Pix, above+x*4, below+x*4) > s.DiffThreshold {
						count++
					}
				}
				if float64(count) > minEdge {
					hits[y] = true
				}
			}
			return nil
		})
	}
	_ = g.Wait()
	return collect(hits)
}

// scanCols is the transposed pass: left/right neighbour pairs per column,
// counted against the image height.
func (s Scanner) scanCols(frame *image.RGBA) []int {
	b := frame.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 3 || h < 1 {
		return nil
	}
	hits := make([]bool, w)
	minEdge := s.Fraction * float64(h)

	var g errgroup.Group
	for _, ch := range chunks(1, w-1) {
		x0, x1 := ch[0], ch[1]
		g.Go(func() error {
			for x := x0; x < x1; x++ {
				count := 0
				for y := 0; y < h; y++ {
					row := frame.PixOffset(b.Min.X, b.Min.Y+y)
					if pixDiff(frame.Pix, row+(x-1)*4, row+(x+1)*4) > s.DiffThreshold {
						count++
					}
				}
				if float64(count) > minEdge {
					hits[x] = true
				}
			}
			return nil
		})
	}
	_ = g.Wait()
	return collect(hits)
}

// pixDiff sums the absolute R, G and B differences of two pixels addressed
// by their offsets into pix. Alpha is ignored.
func pixDiff(pix []uint8, a, b int) int {
	d := absInt(int(pix[a]) - int(pix[b]))
	d += absInt(int(pix[a+1]) - int(pix[b+1]))
	d += absInt(int(pix[a+2]) - int(pix[b+2]))
	return d
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// chunks splits the half-open interval [lo, hi) into at most GOMAXPROCS
// contiguous ranges. Returns nil when the interval is empty.
func chunks(lo, hi int) [][2]int {
	if hi <= lo {
		return nil
	}
	n := runtime.GOMAXPROCS(0)
	span := hi - lo
	if n > span {
		n = span
	}
	size := span / n
	rem := span % n
	out := make([][2]int, 0, n)
	start := lo
	for i := 0; i < n; i++ {
		end := start + size
		if i < rem {
			end++
		}
		out = append(out, [2]int{start, end})
		start = end
	}
	return out
}

// collect turns the flag slice into a strictly increasing coordinate slice.
func collect(hits []bool) []int {
	var out []int
	for i, hit := range hits {
		if hit {
			out = append(out, i)
		}
	}
	return out
}
