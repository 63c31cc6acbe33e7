package repositories

import "github.com/Michal-learning/magazyn/pkg/domain/entities"

// StateSnapshot is the full serialized entity set handed to the persistence
// collaborator after every committing mutation, and read back on startup.
type StateSnapshot struct {
	Parts        []entities.Part
	Suppliers    []entities.Supplier
	Machines     []entities.Machine
	Lots         []entities.Lot
	MachineStock []entities.MachineStockEntry
	History      []entities.HistoryEvent
	Delivery     entities.DeliveryStaging
	Build        entities.BuildStaging
	Thresholds   entities.Thresholds
	LastID       int64
}

// StateStore is the persistence collaborator boundary: a synchronous
// whole-state snapshot write after mutation, and a load at startup.
// Load returns nil when no state has been saved yet.
type StateStore interface {
	Load() (*StateSnapshot, error)
	Save(snapshot *StateSnapshot) error
}
