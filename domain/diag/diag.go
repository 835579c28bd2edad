package diag

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Event is one entry in the append-only diagnostic trail. Events carry no
// control semantics; hosts may render or discard them.
type Event struct {
	Seq     int
	Stage   string
	Message string
	At      time.Time
}

// Recorder accumulates ordered diagnostic events. A nil *Recorder is valid
// and drops everything, so core code can record unconditionally.
// Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	logger *slog.Logger
}

// NewRecorder returns a Recorder that mirrors events to logger at debug
// level. logger may be nil.
func NewRecorder(logger *slog.Logger) *Recorder {
	return &Recorder{logger: logger}
}

// Eventf appends a formatted event under the given stage.
func (r *Recorder) Eventf(stage, format string, args ...any) {
	if r == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	r.mu.Lock()
	ev := Event{Seq: len(r.events), Stage: stage, Message: msg, At: time.Now()}
	r.events = append(r.events, ev)
	r.mu.Unlock()
	if r.logger != nil {
		r.logger.Debug("diag", "stage", stage, "msg", msg)
	}
}

// Events returns a copy of all recorded events in append order.
func (r *Recorder) Events() []Event {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// EventsSince returns events with Seq >= seq, for incremental consumers
// such as a UI log panel.
func (r *Recorder) EventsSince(seq int) []Event {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if seq < 0 {
		seq = 0
	}
	if seq >= len(r.events) {
		return nil
	}
	out := make([]Event, len(r.events)-seq)
	copy(out, r.events[seq:])
	return out
}

// Len reports the number of recorded events.
func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}
