package capture

import (
	"image"

	"github.com/vova616/screenshot"

	"github.com/soocke/gallery-picker-go/config"
)

// Grab returns a screen capture of the current active monitor.
func Grab() (*image.RGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, err
	}
	return img, nil
}

// GrabSelection captures only the given screen rectangle.
func GrabSelection(area image.Rectangle) (*image.RGBA, error) {
	img, err := screenshot.CaptureRect(area)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// GrabConfigured captures the selection rectangle persisted in cfg, falling
// back to the full screen when none is set.
func GrabConfigured(cfg *config.Config) (*image.RGBA, error) {
	if cfg != nil && cfg.SelectionW > 0 && cfg.SelectionH > 0 {
		r := image.Rect(cfg.SelectionX, cfg.SelectionY,
			cfg.SelectionX+cfg.SelectionW, cfg.SelectionY+cfg.SelectionH)
		return GrabSelection(r)
	}
	return Grab()
}
