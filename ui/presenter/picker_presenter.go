package presenter

import (
	"fmt"
	"image"

	"github.com/soocke/gallery-picker-go/domain/diag"
	"github.com/soocke/gallery-picker-go/domain/picker"
	"github.com/soocke/gallery-picker-go/render"
	"github.com/soocke/gallery-picker-go/ui/images"
	"github.com/soocke/gallery-picker-go/ui/model"
)

// Preview sizing limits; scaling is proportional.
const (
	maxGalleryW = 640
	maxGalleryH = 360
	maxCellW    = 200
	maxCellH    = 200
)

// GallerySession narrows what the presenter needs from the app's session.
type GallerySession interface {
	ID() uint64
	Version() uint64
	Status() picker.Status
	CellCount() int
	Annotate() *image.RGBA
	CurrentCellImage() (*image.RGBA, bool)
	EventsSince(seq int) []diag.Event
}

// PickerView is the subset of view operations the presenter drives.
type PickerView interface {
	SetStatus(text string)
	UpdateGallery(img image.Image)
	UpdateCell(img image.Image)
	ClearCell()
	AppendLog(lines []string)
}

// PickerPresenter polls the current session on each UI tick and pushes
// status, preview and log updates into the view. Rendering is skipped while
// the session generation and selection version are unchanged.
type PickerPresenter struct {
	session  func() GallerySession // returns nil when no image is loaded
	view     PickerView
	gallery  *model.GalleryModel
	log      *model.LogModel
	Schedule func()
}

func NewPickerPresenter(session func() GallerySession, view PickerView, gallery *model.GalleryModel, log *model.LogModel) *PickerPresenter {
	return &PickerPresenter{session: session, view: view, gallery: gallery, log: log}
}

// Tick runs one poll cycle and reschedules itself via Schedule.
func (p *PickerPresenter) Tick() {
	if p == nil {
		return
	}
	if s := p.session(); s != nil {
		p.refresh(s)
	}
	if p.Schedule != nil {
		p.Schedule()
	}
}

func (p *PickerPresenter) refresh(s GallerySession) {
	if lines := p.log.Format(s.EventsSince(p.log.Consumed(s.ID()))); len(lines) > 0 {
		p.view.AppendLog(lines)
	}
	if !p.gallery.NeedsRender(s.ID(), s.Version()) {
		return
	}
	if annotated := s.Annotate(); annotated != nil {
		// The view encodes synchronously, so the canvas can go straight back
		// to the pool.
		p.view.UpdateGallery(images.FitPreview(annotated, maxGalleryW, maxGalleryH))
		render.Release(annotated)
	}
	if crop, ok := s.CurrentCellImage(); ok {
		p.view.UpdateCell(images.FitPreview(crop, maxCellW, maxCellH))
	} else {
		p.view.ClearCell()
	}
	p.view.SetStatus(statusText(s.Status()))
	p.gallery.MarkRendered(s.ID(), s.Version())
}

func statusText(st picker.Status) string {
	current := "-"
	if st.HasCurrent {
		current = fmt.Sprintf("#%d", st.Current+1)
	}
	return fmt.Sprintf("Cells: %d  Available: %d  Selected: %d  Current: %s",
		st.Total, st.Available, st.Selected, current)
}
