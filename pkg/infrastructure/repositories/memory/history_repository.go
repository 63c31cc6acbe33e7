package memory

import (
	"github.com/Michal-learning/magazyn/pkg/domain/entities"
	"github.com/Michal-learning/magazyn/pkg/domain/repositories"
)

// HistoryRepository provides the in-memory capped action log. Events are
// stored oldest first; once the cap is reached the oldest events fall off.
type HistoryRepository struct {
	events []entities.HistoryEvent
}

// NewHistoryRepository creates a new in-memory history repository
func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{events: make([]entities.HistoryEvent, 0)}
}

// Verify interface compliance
var _ repositories.HistoryRepository = (*HistoryRepository)(nil)

// Append records an event, dropping the oldest entries when the log exceeds
// entities.HistoryLimit.
func (r *HistoryRepository) Append(event entities.HistoryEvent) {
	r.events = append(r.events, event)
	if overflow := len(r.events) - entities.HistoryLimit; overflow > 0 {
		r.events = append(r.events[:0], r.events[overflow:]...)
	}
}

// Recent returns up to n events, newest first. n <= 0 returns all.
func (r *HistoryRepository) Recent(n int) []entities.HistoryEvent {
	if n <= 0 || n > len(r.events) {
		n = len(r.events)
	}
	out := make([]entities.HistoryEvent, 0, n)
	for i := len(r.events) - 1; i >= len(r.events)-n; i-- {
		out = append(out, r.events[i])
	}
	return out
}

// Len returns the number of retained events.
func (r *HistoryRepository) Len() int {
	return len(r.events)
}

// Snapshot returns the retained events oldest first, for persistence.
func (r *HistoryRepository) Snapshot() []entities.HistoryEvent {
	out := make([]entities.HistoryEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Restore replaces the log with the given events, re-applying the cap.
func (r *HistoryRepository) Restore(events []entities.HistoryEvent) {
	if overflow := len(events) - entities.HistoryLimit; overflow > 0 {
		events = events[overflow:]
	}
	r.events = make([]entities.HistoryEvent, len(events))
	copy(r.events, events)
}
