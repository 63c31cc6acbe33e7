package repositories

import "github.com/Michal-learning/magazyn/pkg/domain/entities"

// HistoryRepository is the append-only, capped record of committed
// deliveries and builds. When the cap is exceeded the oldest events are
// dropped first.
type HistoryRepository interface {
	Append(event entities.HistoryEvent)
	// Recent returns up to n events, newest first. n <= 0 returns all.
	Recent(n int) []entities.HistoryEvent
	Len() int
	Snapshot() []entities.HistoryEvent
	Restore(events []entities.HistoryEvent)
}
