package repositories

import "github.com/Michal-learning/magazyn/pkg/domain/entities"

// PartRepository provides access to the global part catalog.
type PartRepository interface {
	Get(key entities.SKUKey) (*entities.Part, bool)
	Put(part entities.Part)
	Delete(key entities.SKUKey)
	All() []entities.Part
	Len() int
	Snapshot() []entities.Part
	Restore(parts []entities.Part)
}
