package picker

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/soocke/gallery-picker-go/domain/diag"
)

// ErrNoneAvailable reports that every cell has already been drawn. It is an
// expected terminal condition, not a fault; callers branch on it.
var ErrNoneAvailable = errors.New("no cells available")

// Engine tracks per-cell selection state and performs uniform random draws
// without replacement. All state transitions happen under one mutex, so a
// status read can never observe more than one currently-selected cell.
type Engine struct {
	mu      sync.Mutex
	states  []State
	current int // index of the currently selected cell, -1 when none
	rng     Rand
	rec     *diag.Recorder
	logger  *slog.Logger
	version atomic.Uint64
}

// systemRand adapts the auto-seeded math/rand/v2 global generator.
type systemRand struct{}

func (systemRand) IntN(n int) int { return rand.IntN(n) }

// NewEngine creates an engine over total cells, all Available. rng may be
// nil, in which case the auto-seeded global generator is used. rec and
// logger may be nil.
func NewEngine(total int, rng Rand, rec *diag.Recorder, logger *slog.Logger) *Engine {
	if total < 0 {
		total = 0
	}
	if rng == nil {
		rng = systemRand{}
	}
	return &Engine{states: make([]State, total), current: -1, rng: rng, rec: rec, logger: logger}
}

// Draw uniformly samples one index from the currently available cells. The
// previously current cell (if any) becomes previously-selected and the drawn
// cell becomes current. Returns ErrNoneAvailable once every cell is selected.
func (e *Engine) Draw() (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	available := make([]int, 0, len(e.states))
	for i, s := range e.states {
		if s == StateAvailable {
			available = append(available, i)
		}
	}
	if len(available) == 0 {
		e.rec.Eventf("pick", "draw failed: all %d cells selected", len(e.states))
		return 0, ErrNoneAvailable
	}

	idx := available[e.rng.IntN(len(available))]
	if e.current >= 0 {
		e.states[e.current] = StatePreviouslySelected
	}
	e.states[idx] = StateCurrentlySelected
	e.current = idx
	e.version.Add(1)

	e.rec.Eventf("pick", "drew cell %d (%d of %d remaining)", idx+1, len(available)-1, len(e.states))
	if e.logger != nil {
		e.logger.Info("cell drawn", "index", idx, "remaining", len(available)-1)
	}
	return idx, nil
}

// Reset returns every cell to Available and clears the current selection.
// Idempotent; always succeeds.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.states {
		e.states[i] = StateAvailable
	}
	e.current = -1
	e.version.Add(1)
	e.rec.Eventf("pick", "selection reset, %d cells available", len(e.states))
}

// Status returns a consistent snapshot without side effects.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	st := Status{Total: len(e.states), Current: e.current, HasCurrent: e.current >= 0}
	for _, s := range e.states {
		if s == StateAvailable {
			st.Available++
		} else {
			st.Selected++
		}
	}
	return st
}

// States returns a copy of the per-cell states in cell index order.
func (e *Engine) States() []State {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]State, len(e.states))
	copy(out, e.states)
	return out
}

// Version increments on every successful mutation. Pollers use it to skip
// redundant re-rendering.
func (e *Engine) Version() uint64 { return e.version.Load() }

var _ EngineContract = (*Engine)(nil)
