package repositories

import "github.com/Michal-learning/magazyn/pkg/domain/entities"

// MachineRepository provides access to the machine catalog.
type MachineRepository interface {
	Get(code string) (*entities.Machine, bool)
	// ExistsFold reports whether a machine exists under the code,
	// compared case-insensitively.
	ExistsFold(code string) bool
	Put(machine *entities.Machine)
	Delete(code string)
	All() []*entities.Machine
	// RequiringPart returns the codes of machines whose BOM references the
	// given part key. Used by the part deletion guard.
	RequiringPart(key entities.SKUKey) []string
	Snapshot() []entities.Machine
	Restore(machines []entities.Machine)
}
