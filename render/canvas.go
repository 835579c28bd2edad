package render

import (
	"image"
	"sync"
)

// Annotation produces a full-frame RGBA copy on every redraw. For screen-sized
// frames that is tens of megabytes of churn per session, so canvases are
// pooled and reused. Callers that never Release simply degrade to plain
// allocation.

var canvasPool sync.Pool // stores *image.RGBA

// acquireCanvas returns an RGBA canvas sized to rect, reusing a pooled
// backing slice when its capacity suffices. Pix length is exactly
// rect area * 4 and Stride is width*4.
func acquireCanvas(rect image.Rectangle) *image.RGBA {
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return &image.RGBA{Rect: rect}
	}
	needed := w * h * 4
	var img *image.RGBA
	if v := canvasPool.Get(); v != nil {
		img = v.(*image.RGBA)
	}
	if img == nil || cap(img.Pix) < needed {
		img = &image.RGBA{Pix: make([]byte, needed), Stride: w * 4, Rect: rect}
	} else {
		img.Stride = w * 4
		img.Rect = rect
		img.Pix = img.Pix[:needed]
	}
	return img
}

// Release returns an annotated canvas to the pool. The caller must not touch
// the image afterwards.
func Release(img *image.RGBA) {
	if img == nil || img.Pix == nil {
		return
	}
	canvasPool.Put(img)
}
