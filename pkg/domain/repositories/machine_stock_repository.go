package repositories

import "github.com/Michal-learning/magazyn/pkg/domain/entities"

// MachineStockRepository tracks finished-machine counts.
type MachineStockRepository interface {
	Get(code string) (*entities.MachineStockEntry, bool)
	// Increment grows the count for a machine, creating the entry if absent.
	Increment(code, name string, qty entities.Quantity)
	All() []entities.MachineStockEntry
	Snapshot() []entities.MachineStockEntry
	Restore(entries []entities.MachineStockEntry)
}
