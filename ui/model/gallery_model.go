package model

// GalleryModel tracks which session generation and selection version the
// preview last rendered, so the presenter only re-renders on change.
// No synchronization needed: updates occur on the UI thread tick.
type GalleryModel struct {
	sessionID uint64
	version   uint64
	rendered  bool
}

// NewGalleryModel returns a pointer to a ready-to-use GalleryModel.
func NewGalleryModel() *GalleryModel { return &GalleryModel{} }

// NeedsRender reports whether the given session/version differs from the
// last rendered one.
func (m *GalleryModel) NeedsRender(sessionID, version uint64) bool {
	if m == nil {
		return false
	}
	return !m.rendered || m.sessionID != sessionID || m.version != version
}

// MarkRendered records the state that was just drawn.
func (m *GalleryModel) MarkRendered(sessionID, version uint64) {
	if m == nil {
		return
	}
	m.sessionID = sessionID
	m.version = version
	m.rendered = true
}

// Invalidate forces the next NeedsRender to report true.
func (m *GalleryModel) Invalidate() {
	if m == nil {
		return
	}
	m.rendered = false
}
