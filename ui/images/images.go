package images

import (
	"bytes"
	"errors"
	"image"
	"image/draw"
	"image/png"

	"github.com/disintegration/imaging"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// LoadRGBA opens an image file (PNG, JPEG, ...) honoring EXIF orientation and
// returns it as *image.RGBA with a zero-origin bounds, the shape the scanner
// expects.
func LoadRGBA(path string) (*image.RGBA, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	return ToRGBA(img), nil
}

// ToRGBA converts any image to a zero-origin *image.RGBA, copying only when
// necessary.
func ToRGBA(img image.Image) *image.RGBA {
	if img == nil {
		return nil
	}
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// FitPreview scales img down so it fits within maxW x maxH, preserving aspect
// ratio. Images that already fit are returned unchanged.
func FitPreview(img image.Image, maxW, maxH int) image.Image {
	if img == nil {
		return nil
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	b := img.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return img
	}
	return imaging.Fit(img, maxW, maxH, imaging.NearestNeighbor)
}

// ExtractCell copies the given cell rectangle out of frame, clamped to the
// frame bounds. Used for the zoomed view of the currently drawn participant.
func ExtractCell(frame *image.RGBA, r image.Rectangle) (*image.RGBA, error) {
	if frame == nil {
		return nil, errors.New("nil frame")
	}
	r = r.Intersect(frame.Bounds())
	if r.Empty() {
		return nil, errors.New("cell outside frame")
	}
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), frame, r.Min, draw.Src)
	return out, nil
}
