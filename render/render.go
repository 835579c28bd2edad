package render

import (
	"image"
	"image/color"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/soocke/gallery-picker-go/domain/grid"
	"github.com/soocke/gallery-picker-go/domain/picker"
)

// Committed visual contract: currently selected cells get a thick green
// outline, previously selected a thin blue one, available a thin gray one,
// and every cell shows its 1-based index near the top-left corner.
var (
	ColorCurrent   = color.RGBA{16, 185, 129, 255} // green
	ColorPrevious  = color.RGBA{37, 99, 235, 255}  // blue
	ColorAvailable = color.RGBA{148, 163, 184, 255}
)

const (
	thickStroke  = 3
	thinStroke   = 1
	labelOffsetX = 6
	labelOffsetY = 16 // baseline offset for the 7x13 face
)

// Instruction is one draw command for a host surface: an outlined rectangle
// plus a text label anchored at LabelAt (text baseline).
type Instruction struct {
	Rect      image.Rectangle
	Color     color.RGBA
	Thickness int
	Label     string
	LabelAt   image.Point
}

// Plan maps cells and their selection states onto draw instructions, one per
// cell, in cell index order. states must be keyed by cell index; missing
// entries render as available.
func Plan(cells []grid.Cell, states []picker.State) []Instruction {
	ins := make([]Instruction, 0, len(cells))
	for _, c := range cells {
		st := picker.StateAvailable
		if c.Index < len(states) {
			st = states[c.Index]
		}
		in := Instruction{
			Rect:    c.Rect(),
			Label:   strconv.Itoa(c.Index + 1),
			LabelAt: image.Pt(c.X+labelOffsetX, c.Y+labelOffsetY),
		}
		switch st {
		case picker.StateCurrentlySelected:
			in.Color, in.Thickness = ColorCurrent, thickStroke
		case picker.StatePreviouslySelected:
			in.Color, in.Thickness = ColorPrevious, thinStroke
		default:
			in.Color, in.Thickness = ColorAvailable, thinStroke
		}
		ins = append(ins, in)
	}
	return ins
}

// Draw rasterizes instructions onto dst. Outlines are stroked inward from
// the rectangle edge; labels use the fixed 7x13 face.
func Draw(dst *image.RGBA, ins []Instruction) {
	if dst == nil {
		return
	}
	for _, in := range ins {
		strokeRect(dst, in.Rect, in.Color, in.Thickness)
		if in.Label != "" {
			d := font.Drawer{
				Dst:  dst,
				Src:  image.NewUniform(in.Color),
				Face: basicfont.Face7x13,
				Dot:  fixed.P(in.LabelAt.X, in.LabelAt.Y),
			}
			d.DrawString(in.Label)
		}
	}
}

// Annotate returns a copy of frame with the overlay drawn on it. The source
// frame is never touched. The returned image comes from an internal pool;
// hand it back via Release once it is no longer displayed.
func Annotate(frame *image.RGBA, cells []grid.Cell, states []picker.State) *image.RGBA {
	if frame == nil {
		return nil
	}
	canvas := acquireCanvas(frame.Bounds())
	copyPixels(canvas, frame)
	Draw(canvas, Plan(cells, states))
	return canvas
}

// strokeRect draws a border of the given thickness just inside r, clipped to
// dst bounds.
func strokeRect(dst *image.RGBA, r image.Rectangle, c color.RGBA, thickness int) {
	if thickness < 1 {
		thickness = 1
	}
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	for t := 0; t < thickness; t++ {
		top, bottom := r.Min.Y+t, r.Max.Y-1-t
		left, right := r.Min.X+t, r.Max.X-1-t
		if top > bottom || left > right {
			break
		}
		for x := left; x <= right; x++ {
			dst.SetRGBA(x, top, c)
			dst.SetRGBA(x, bottom, c)
		}
		for y := top; y <= bottom; y++ {
			dst.SetRGBA(left, y, c)
			dst.SetRGBA(right, y, c)
		}
	}
}

// copyPixels copies src into dst; both share bounds by construction.
func copyPixels(dst, src *image.RGBA) {
	if dst.Stride == src.Stride {
		copy(dst.Pix, src.Pix)
		return
	}
	b := src.Bounds()
	w := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		so := src.PixOffset(b.Min.X, b.Min.Y+y)
		do := dst.PixOffset(b.Min.X, b.Min.Y+y)
		copy(dst.Pix[do:do+w], src.Pix[so:so+w])
	}
}
