package repositories

import "github.com/Michal-learning/magazyn/pkg/domain/entities"

// SupplierRepository provides access to suppliers and their price lists.
type SupplierRepository interface {
	Get(name string) (*entities.Supplier, bool)
	Put(supplier *entities.Supplier)
	Delete(name string)
	All() []*entities.Supplier
	Names() []string
	// ListingPriceFor returns the names of suppliers whose price list
	// references the given part key. Used by the part deletion guard.
	ListingPriceFor(key entities.SKUKey) []string
	Snapshot() []entities.Supplier
	Restore(suppliers []entities.Supplier)
}
