package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/soocke/gallery-picker-go/config"
	"github.com/soocke/gallery-picker-go/domain/picker"
	"github.com/soocke/gallery-picker-go/ui/images"
)

// RunHeadless detects the grid in a single image file and performs picks
// without touching the Tk runtime. All output goes through the logger.
func RunHeadless(cfg *config.Config, logger *slog.Logger, imagePath string, picks int) error {
	if imagePath == "" {
		return errors.New("headless mode requires -image")
	}
	frame, err := images.LoadRGBA(imagePath)
	if err != nil {
		return fmt.Errorf("load image: %w", err)
	}

	s := NewSession(frame, cfg, nil, logger)
	for _, c := range s.Cells() {
		logger.Info("cell", "index", c.Index+1, "x", c.X, "y", c.Y, "width", c.Width, "height", c.Height)
	}
	if s.CellCount() == 0 {
		logger.Warn("no grid detected", "path", imagePath)
		return nil
	}

	for i := 0; i < picks; i++ {
		cell, err := s.Draw()
		if errors.Is(err, picker.ErrNoneAvailable) {
			logger.Info("all cells drawn", "total", s.CellCount())
			break
		}
		if err != nil {
			return fmt.Errorf("draw: %w", err)
		}
		logger.Info("picked", "cell", cell.Index+1, "x", cell.X, "y", cell.Y)
	}

	st := s.Status()
	logger.Info("done", "total", st.Total, "selected", st.Selected, "available", st.Available)
	return nil
}
