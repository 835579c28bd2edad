package app

import (
	"image"
	"log/slog"
	"sync/atomic"

	"github.com/soocke/gallery-picker-go/config"
	"github.com/soocke/gallery-picker-go/domain/diag"
	"github.com/soocke/gallery-picker-go/domain/grid"
	"github.com/soocke/gallery-picker-go/domain/picker"
	"github.com/soocke/gallery-picker-go/render"
	"github.com/soocke/gallery-picker-go/ui/images"
)

var sessionIDs atomic.Uint64

// Session binds one frame to its detected cells, selection engine and
// diagnostic trail. A session is immutable apart from the engine's selection
// state; loading a new image builds a whole new session which the app swaps
// in atomically, so consumers never see old cells with new selection state.
type Session struct {
	id     uint64
	frame  *image.RGBA
	cells  []grid.Cell
	engine *picker.Engine
	rec    *diag.Recorder
}

// NewSession runs detection on frame and wires a fresh engine over the
// resulting cells. rng may be nil for the auto-seeded default.
func NewSession(frame *image.RGBA, cfg *config.Config, rng picker.Rand, logger *slog.Logger) *Session {
	rec := diag.NewRecorder(logger)
	cells := grid.NewDetector(cfg, logger).Detect(frame, rec)
	return &Session{
		id:     sessionIDs.Add(1),
		frame:  frame,
		cells:  cells,
		engine: picker.NewEngine(len(cells), rng, rec, logger),
		rec:    rec,
	}
}

// ID uniquely identifies the session within the process lifetime.
func (s *Session) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Cells returns the ordered detected cell list. Zero cells means the grid
// was not detected.
func (s *Session) Cells() []grid.Cell {
	if s == nil {
		return nil
	}
	return s.cells
}

// CellCount reports how many cells were detected.
func (s *Session) CellCount() int { return len(s.Cells()) }

// Draw picks one available cell at random and returns it.
func (s *Session) Draw() (grid.Cell, error) {
	if s == nil {
		return grid.Cell{}, picker.ErrNoneAvailable
	}
	idx, err := s.engine.Draw()
	if err != nil {
		return grid.Cell{}, err
	}
	return s.cells[idx], nil
}

// Reset clears all selection marks.
func (s *Session) Reset() {
	if s != nil {
		s.engine.Reset()
	}
}

// Status returns the engine's selection snapshot.
func (s *Session) Status() picker.Status {
	if s == nil {
		return picker.Status{}
	}
	return s.engine.Status()
}

// Version changes whenever selection state mutates.
func (s *Session) Version() uint64 {
	if s == nil {
		return 0
	}
	return s.engine.Version()
}

// EventsSince exposes the diagnostic trail incrementally.
func (s *Session) EventsSince(seq int) []diag.Event {
	if s == nil {
		return nil
	}
	return s.rec.EventsSince(seq)
}

// Annotate renders the selection overlay onto a pooled copy of the frame.
// Callers release the returned canvas via render.Release.
func (s *Session) Annotate() *image.RGBA {
	if s == nil {
		return nil
	}
	return render.Annotate(s.frame, s.cells, s.engine.States())
}

// CurrentCellImage crops the currently selected cell out of the frame for
// the zoomed preview. ok is false when nothing is selected.
func (s *Session) CurrentCellImage() (*image.RGBA, bool) {
	if s == nil {
		return nil, false
	}
	st := s.engine.Status()
	if !st.HasCurrent {
		return nil, false
	}
	img, err := images.ExtractCell(s.frame, s.cells[st.Current].Rect())
	if err != nil {
		return nil, false
	}
	return img, true
}
