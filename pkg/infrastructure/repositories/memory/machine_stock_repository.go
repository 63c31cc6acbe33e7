package memory

import (
	"sort"

	"github.com/Michal-learning/magazyn/pkg/domain/entities"
	"github.com/Michal-learning/magazyn/pkg/domain/repositories"
)

// MachineStockRepository provides in-memory finished-machine counters keyed
// by machine code.
type MachineStockRepository struct {
	entries map[string]*entities.MachineStockEntry
}

// NewMachineStockRepository creates a new in-memory machine stock repository
func NewMachineStockRepository() *MachineStockRepository {
	return &MachineStockRepository{entries: make(map[string]*entities.MachineStockEntry)}
}

// Verify interface compliance
var _ repositories.MachineStockRepository = (*MachineStockRepository)(nil)

// Get returns the stock entry for a machine code.
func (r *MachineStockRepository) Get(code string) (*entities.MachineStockEntry, bool) {
	e, ok := r.entries[code]
	return e, ok
}

// Increment grows the count for a machine, creating the entry if absent.
// The name is refreshed on every call so renames propagate.
func (r *MachineStockRepository) Increment(code, name string, qty entities.Quantity) {
	if e, ok := r.entries[code]; ok {
		e.Qty += qty
		e.Name = name
		return
	}
	r.entries[code] = &entities.MachineStockEntry{Code: code, Name: name, Qty: qty}
}

// All returns all entries sorted by code.
func (r *MachineStockRepository) All() []entities.MachineStockEntry {
	out := make([]entities.MachineStockEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Snapshot returns all entries for persistence.
func (r *MachineStockRepository) Snapshot() []entities.MachineStockEntry {
	return r.All()
}

// Restore replaces the stored counters with the given set.
func (r *MachineStockRepository) Restore(entries []entities.MachineStockEntry) {
	r.entries = make(map[string]*entities.MachineStockEntry, len(entries))
	for i := range entries {
		e := entries[i]
		r.entries[e.Code] = &e
	}
}
