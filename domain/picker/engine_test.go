package picker

import (
	"errors"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/soocke/gallery-picker-go/domain/diag"
)

func seededEngine(total int, seed uint64) *Engine {
	rng := rand.New(rand.NewPCG(seed, 0))
	return NewEngine(total, rng, nil, nil)
}

func checkInvariant(t *testing.T, e *Engine) {
	t.Helper()
	st := e.Status()
	if st.Available+st.Selected != st.Total {
		t.Fatalf("invariant broken: available=%d selected=%d total=%d", st.Available, st.Selected, st.Total)
	}
	current := 0
	for _, s := range e.States() {
		if s == StateCurrentlySelected {
			current++
		}
	}
	if current > 1 {
		t.Fatalf("more than one currently-selected cell (%d)", current)
	}
}

func TestDrawCoversAllCellsExactlyOnce(t *testing.T) {
	e := seededEngine(5, 1)
	seen := map[int]bool{}
	for i := 0; i < 5; i++ {
		idx, err := e.Draw()
		if err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		if idx < 0 || idx > 4 {
			t.Fatalf("draw %d: index %d out of range", i, idx)
		}
		if seen[idx] {
			t.Fatalf("draw %d: index %d repeated", i, idx)
		}
		seen[idx] = true
		checkInvariant(t, e)
	}
	if len(seen) != 5 {
		t.Fatalf("expected indices {0..4}, got %v", seen)
	}
	if _, err := e.Draw(); !errors.Is(err, ErrNoneAvailable) {
		t.Fatalf("6th draw should exhaust, got %v", err)
	}
	checkInvariant(t, e)
}

func TestDrawTransitionsCurrentToPrevious(t *testing.T) {
	e := seededEngine(3, 7)
	first, err := e.Draw()
	if err != nil {
		t.Fatal(err)
	}
	if got := e.States()[first]; got != StateCurrentlySelected {
		t.Fatalf("first drawn cell state = %v", got)
	}
	second, err := e.Draw()
	if err != nil {
		t.Fatal(err)
	}
	states := e.States()
	if states[first] != StatePreviouslySelected {
		t.Fatalf("first cell should demote to previously-selected, got %v", states[first])
	}
	if states[second] != StateCurrentlySelected {
		t.Fatalf("second cell state = %v", states[second])
	}
	st := e.Status()
	if !st.HasCurrent || st.Current != second {
		t.Fatalf("status current = %+v, want %d", st, second)
	}
}

func TestResetRestoresAllAvailable(t *testing.T) {
	e := seededEngine(8, 3)
	for i := 0; i < 3; i++ {
		if _, err := e.Draw(); err != nil {
			t.Fatal(err)
		}
	}
	e.Reset()
	st := e.Status()
	if st.Available != st.Total || st.Selected != 0 || st.HasCurrent {
		t.Fatalf("after reset: %+v", st)
	}
	// Idempotent.
	e.Reset()
	if st := e.Status(); st.Available != 8 || st.HasCurrent {
		t.Fatalf("second reset changed state: %+v", st)
	}
	checkInvariant(t, e)
}

func TestDrawOnEmptyEngine(t *testing.T) {
	e := seededEngine(0, 1)
	if _, err := e.Draw(); !errors.Is(err, ErrNoneAvailable) {
		t.Fatalf("empty engine draw should fail with ErrNoneAvailable, got %v", err)
	}
}

func TestSeededDrawsAreReproducible(t *testing.T) {
	a := seededEngine(10, 42)
	b := seededEngine(10, 42)
	for i := 0; i < 10; i++ {
		ia, ea := a.Draw()
		ib, eb := b.Draw()
		if ea != nil || eb != nil || ia != ib {
			t.Fatalf("draw %d diverged: %d/%v vs %d/%v", i, ia, ea, ib, eb)
		}
	}
}

func TestDrawRecordsDiagnostics(t *testing.T) {
	rec := diag.NewRecorder(nil)
	e := NewEngine(1, rand.New(rand.NewPCG(5, 0)), rec, nil)
	if _, err := e.Draw(); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Draw(); !errors.Is(err, ErrNoneAvailable) {
		t.Fatal(err)
	}
	e.Reset()
	evs := rec.Events()
	if len(evs) != 3 {
		t.Fatalf("expected 3 pick events, got %+v", evs)
	}
	if evs[1].Message != "draw failed: all 1 cells selected" {
		t.Fatalf("unexpected failure message %q", evs[1].Message)
	}
}

func TestConcurrentDrawsKeepInvariant(t *testing.T) {
	e := NewEngine(64, nil, nil, nil)
	var wg sync.WaitGroup
	drawn := make(chan int, 64)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				idx, err := e.Draw()
				if err != nil {
					return
				}
				drawn <- idx
			}
		}()
	}
	wg.Wait()
	close(drawn)

	seen := map[int]bool{}
	for idx := range drawn {
		if seen[idx] {
			t.Fatalf("index %d drawn twice", idx)
		}
		seen[idx] = true
	}
	if len(seen) != 64 {
		t.Fatalf("expected 64 distinct draws, got %d", len(seen))
	}
	checkInvariant(t, e)
}

func TestVersionBumpsOnMutation(t *testing.T) {
	e := seededEngine(4, 9)
	v0 := e.Version()
	if _, err := e.Draw(); err != nil {
		t.Fatal(err)
	}
	if e.Version() == v0 {
		t.Fatalf("draw should bump version")
	}
	v1 := e.Version()
	e.Status()
	e.States()
	if e.Version() != v1 {
		t.Fatalf("reads must not bump version")
	}
	e.Reset()
	if e.Version() == v1 {
		t.Fatalf("reset should bump version")
	}
}
