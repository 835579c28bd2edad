package diag

import (
	"sync"
	"testing"
)

func TestRecorderOrdersEvents(t *testing.T) {
	r := NewRecorder(nil)
	r.Eventf("scan", "raw edges rows=%d cols=%d", 4, 3)
	r.Eventf("group", "grouped lines rows=%d cols=%d", 2, 2)
	r.Eventf("build", "accepted cells=%d", 1)

	evs := r.Events()
	if len(evs) != 3 {
		t.Fatalf("expected 3 events, got %d", len(evs))
	}
	for i, ev := range evs {
		if ev.Seq != i {
			t.Fatalf("event %d has seq %d", i, ev.Seq)
		}
	}
	if evs[0].Stage != "scan" || evs[2].Stage != "build" {
		t.Fatalf("unexpected stages: %q %q", evs[0].Stage, evs[2].Stage)
	}
	if evs[2].Message != "accepted cells=1" {
		t.Fatalf("unexpected message %q", evs[2].Message)
	}
}

func TestEventsSince(t *testing.T) {
	r := NewRecorder(nil)
	for i := 0; i < 5; i++ {
		r.Eventf("s", "e%d", i)
	}
	tail := r.EventsSince(3)
	if len(tail) != 2 || tail[0].Seq != 3 || tail[1].Seq != 4 {
		t.Fatalf("unexpected tail %+v", tail)
	}
	if got := r.EventsSince(5); got != nil {
		t.Fatalf("expected nil past end, got %+v", got)
	}
	if got := r.EventsSince(99); got != nil {
		t.Fatalf("expected nil far past end, got %+v", got)
	}
}

func TestNilRecorderIsSilent(t *testing.T) {
	var r *Recorder
	r.Eventf("s", "dropped")
	if r.Len() != 0 || r.Events() != nil {
		t.Fatalf("nil recorder should drop events")
	}
}

func TestRecorderConcurrentAppends(t *testing.T) {
	r := NewRecorder(nil)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				r.Eventf("c", "event")
			}
		}()
	}
	wg.Wait()
	evs := r.Events()
	if len(evs) != 800 {
		t.Fatalf("expected 800 events, got %d", len(evs))
	}
	for i, ev := range evs {
		if ev.Seq != i {
			t.Fatalf("sequence gap at %d (seq=%d)", i, ev.Seq)
		}
	}
}
