package grid

import (
	"reflect"
	"testing"

	"github.com/soocke/gallery-picker-go/config"
	"github.com/soocke/gallery-picker-go/domain/diag"
)

func TestDetectSyntheticGallery(t *testing.T) {
	rec := diag.NewRecorder(nil)
	d := NewDetector(config.DefaultConfig(), nil)

	cells := d.Detect(galleryFrame(), rec)
	if len(cells) != 1 {
		t.Fatalf("expected exactly 1 cell, got %+v", cells)
	}
	want := Cell{Index: 0, X: 130, Y: 100, Width: 140, Height: 100}
	if cells[0] != want {
		t.Fatalf("cell = %+v, want %+v", cells[0], want)
	}

	stages := []string{}
	for _, ev := range rec.Events() {
		stages = append(stages, ev.Stage)
	}
	if !reflect.DeepEqual(stages, []string{"scan", "group", "build"}) {
		t.Fatalf("unexpected diagnostic stages %v", stages)
	}
}

func TestDetectBlankFrameYieldsZeroCells(t *testing.T) {
	rec := diag.NewRecorder(nil)
	d := NewDetector(config.DefaultConfig(), nil)
	if cells := d.Detect(uniformFrame(640, 480, white), rec); len(cells) != 0 {
		t.Fatalf("blank frame should yield zero cells, got %+v", cells)
	}
	evs := rec.Events()
	if len(evs) == 0 || evs[len(evs)-1].Message != "no grid detected" {
		t.Fatalf("expected terminal no-grid event, got %+v", evs)
	}
}

func TestDetectTooSmallFrame(t *testing.T) {
	d := NewDetector(config.DefaultConfig(), nil)
	if cells := d.Detect(uniformFrame(2, 2, white), nil); cells != nil {
		t.Fatalf("2x2 frame should detect nothing, got %+v", cells)
	}
	if cells := d.Detect(nil, nil); cells != nil {
		t.Fatalf("nil frame should detect nothing, got %+v", cells)
	}
}

func TestDetectRepeatRunsIdentical(t *testing.T) {
	d := NewDetector(config.DefaultConfig(), nil)
	frame := galleryFrame()
	first := d.Detect(frame, nil)
	for i := 0; i < 5; i++ {
		if again := d.Detect(frame, nil); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d diverged: %+v vs %+v", i, first, again)
		}
	}
}
