package images

import (
	"image"
	"image/color"
	"testing"
)

func TestFitPreviewShrinksLargeImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 800, 600))
	out := FitPreview(src, 400, 225)
	b := out.Bounds()
	if b.Dx() > 400 || b.Dy() > 225 {
		t.Fatalf("preview %dx%d exceeds limits", b.Dx(), b.Dy())
	}
	// Aspect ratio preserved: 800x600 constrained by height -> 300x225.
	if b.Dx() != 300 || b.Dy() != 225 {
		t.Fatalf("expected 300x225, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestFitPreviewKeepsSmallImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	if out := FitPreview(src, 400, 225); out != image.Image(src) {
		t.Fatalf("image already within limits should pass through")
	}
}

func TestToRGBANonZeroOrigin(t *testing.T) {
	base := image.NewRGBA(image.Rect(0, 0, 40, 40))
	base.SetRGBA(20, 20, color.RGBA{200, 10, 10, 255})
	sub := base.SubImage(image.Rect(10, 10, 30, 30)).(*image.RGBA)
	out := ToRGBA(sub)
	if out.Bounds().Min != (image.Point{}) {
		t.Fatalf("expected zero origin, got %v", out.Bounds().Min)
	}
	if got := out.RGBAAt(10, 10); got != (color.RGBA{200, 10, 10, 255}) {
		t.Fatalf("pixel lost in conversion: %v", got)
	}
}

func TestExtractCellClampsToFrame(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 100, 100))
	frame.SetRGBA(95, 95, color.RGBA{1, 2, 3, 255})
	out, err := ExtractCell(frame, image.Rect(90, 90, 140, 140))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if out.Bounds().Dx() != 10 || out.Bounds().Dy() != 10 {
		t.Fatalf("expected clamped 10x10, got %v", out.Bounds())
	}
	if got := out.RGBAAt(5, 5); got != (color.RGBA{1, 2, 3, 255}) {
		t.Fatalf("wrong pixel copied: %v", got)
	}
}

func TestExtractCellOutsideFrame(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 50, 50))
	if _, err := ExtractCell(frame, image.Rect(60, 60, 80, 80)); err == nil {
		t.Fatalf("expected error for rect outside frame")
	}
	if _, err := ExtractCell(nil, image.Rect(0, 0, 10, 10)); err == nil {
		t.Fatalf("expected error for nil frame")
	}
}

func TestEncodePNGRoundTripsNonEmpty(t *testing.T) {
	if got := EncodePNG(nil); got != nil {
		t.Fatalf("nil image should encode to nil")
	}
	if got := EncodePNG(image.NewRGBA(image.Rect(0, 0, 4, 4))); len(got) == 0 {
		t.Fatalf("expected PNG bytes")
	}
}
