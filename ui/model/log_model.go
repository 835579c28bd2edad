package model

import (
	"fmt"

	"github.com/soocke/gallery-picker-go/domain/diag"
)

// LogModel tracks how much of a session's diagnostic trail the log panel has
// already displayed. Switching sessions rewinds to the start of the new
// trail. UI-thread only, like the other models.
type LogModel struct {
	sessionID uint64
	consumed  int
}

// NewLogModel returns a pointer to a ready-to-use LogModel.
func NewLogModel() *LogModel { return &LogModel{} }

// Consumed returns the next event sequence to fetch for the given session.
func (m *LogModel) Consumed(sessionID uint64) int {
	if m == nil {
		return 0
	}
	if m.sessionID != sessionID {
		m.sessionID = sessionID
		m.consumed = 0
	}
	return m.consumed
}

// Format renders new events into display lines and advances the consumed
// cursor.
func (m *LogModel) Format(events []diag.Event) []string {
	if m == nil || len(events) == 0 {
		return nil
	}
	lines := make([]string, 0, len(events))
	for _, ev := range events {
		lines = append(lines, fmt.Sprintf("[%s] %s", ev.Stage, ev.Message))
	}
	m.consumed = events[len(events)-1].Seq + 1
	return lines
}
