package model

import (
	"testing"

	"github.com/soocke/gallery-picker-go/domain/diag"
)

func TestGalleryModelRenderTracking(t *testing.T) {
	m := NewGalleryModel()
	if !m.NeedsRender(1, 0) {
		t.Fatalf("fresh model must need a render")
	}
	m.MarkRendered(1, 0)
	if m.NeedsRender(1, 0) {
		t.Fatalf("unchanged state should not re-render")
	}
	if !m.NeedsRender(1, 1) {
		t.Fatalf("version bump should re-render")
	}
	if !m.NeedsRender(2, 0) {
		t.Fatalf("new session should re-render")
	}
	m.Invalidate()
	if !m.NeedsRender(1, 0) {
		t.Fatalf("invalidate should force re-render")
	}
}

func TestLogModelConsumesIncrementally(t *testing.T) {
	m := NewLogModel()
	rec := diag.NewRecorder(nil)
	rec.Eventf("scan", "raw edges: 4 horizontal, 4 vertical")
	rec.Eventf("build", "accepted 1 cells")

	lines := m.Format(rec.EventsSince(m.Consumed(1)))
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %v", lines)
	}
	if lines[0] != "[scan] raw edges: 4 horizontal, 4 vertical" {
		t.Fatalf("unexpected line %q", lines[0])
	}
	if lines = m.Format(rec.EventsSince(m.Consumed(1))); lines != nil {
		t.Fatalf("no new events should mean no lines, got %v", lines)
	}

	rec.Eventf("pick", "drew cell 1 (0 of 1 remaining)")
	lines = m.Format(rec.EventsSince(m.Consumed(1)))
	if len(lines) != 1 || lines[0] != "[pick] drew cell 1 (0 of 1 remaining)" {
		t.Fatalf("incremental consume broken: %v", lines)
	}
}

func TestLogModelRewindsOnSessionSwitch(t *testing.T) {
	m := NewLogModel()
	rec := diag.NewRecorder(nil)
	rec.Eventf("scan", "a")
	m.Format(rec.EventsSince(m.Consumed(1)))
	if got := m.Consumed(2); got != 0 {
		t.Fatalf("new session should rewind cursor, got %d", got)
	}
}
