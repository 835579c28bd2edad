package grid

import (
	"image"
	"log/slog"

	"github.com/soocke/gallery-picker-go/config"
	"github.com/soocke/gallery-picker-go/domain/diag"
)

// Detector runs the full detection pipeline: raw edge scan, line grouping,
// cell construction. It is stateless between runs; each call consumes one
// frame and produces one complete cell list. Zero cells is the "grid not
// detected" terminal state callers must handle, never an error.
type Detector struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewDetector binds a validated config and logger. cfg must not be nil.
func NewDetector(cfg *config.Config, logger *slog.Logger) *Detector {
	return &Detector{cfg: cfg, logger: logger}
}

// Detect scans frame and returns the ordered cell list. Progress counts are
// appended to rec; rec may be nil.
func (d *Detector) Detect(frame *image.RGBA, rec *diag.Recorder) []Cell {
	if frame == nil {
		rec.Eventf("scan", "no frame")
		return nil
	}
	b := frame.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 3 || h < 3 {
		rec.Eventf("scan", "frame %dx%d too small to scan", w, h)
		return nil
	}

	scanner := Scanner{DiffThreshold: d.cfg.ChannelDiffThreshold, Fraction: d.cfg.RowColFraction}
	rows, cols := scanner.Scan(frame)
	rec.Eventf("scan", "raw edges: %d horizontal, %d vertical", len(rows), len(cols))

	hLines := GroupLines(rows, d.cfg.LineProximity)
	vLines := GroupLines(cols, d.cfg.LineProximity)
	rec.Eventf("group", "grid lines: %d horizontal, %d vertical", len(hLines), len(vLines))

	cells := BuildCells(hLines, vLines, w, h, SizeBounds{
		MinCellPx:   d.cfg.MinCellSize,
		MaxFraction: d.cfg.MaxCellFraction,
	})
	if len(cells) == 0 {
		rec.Eventf("build", "no grid detected")
	} else {
		rec.Eventf("build", "accepted %d cells", len(cells))
	}
	if d.logger != nil {
		d.logger.Info("grid detection",
			"width", w, "height", h,
			"h_lines", len(hLines), "v_lines", len(vLines),
			"cells", len(cells),
		)
	}
	return cells
}
