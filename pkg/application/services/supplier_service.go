package services

import (
	"github.com/shopspring/decimal"

	zlog "github.com/rs/zerolog/log"

	"github.com/Michal-learning/magazyn/pkg/domain/entities"
	"github.com/Michal-learning/magazyn/pkg/domain/repositories"
)

// SupplierService manages suppliers and their price lists. A price may only
// be listed for a part the catalog knows.
type SupplierService struct {
	suppliers  repositories.SupplierRepository
	parts      repositories.PartRepository
	checkpoint Checkpointer
}

// NewSupplierService creates a new supplier service
func NewSupplierService(
	suppliers repositories.SupplierRepository,
	parts repositories.PartRepository,
	checkpoint Checkpointer,
) *SupplierService {
	return &SupplierService{suppliers: suppliers, parts: parts, checkpoint: checkpoint}
}

// EnsureSupplier registers a supplier if it does not exist yet and returns
// it either way.
func (s *SupplierService) EnsureSupplier(name string) (*entities.Supplier, error) {
	sup, err := entities.NewSupplier(name)
	if err != nil {
		return nil, err
	}
	if existing, ok := s.suppliers.Get(sup.Name); ok {
		return existing, nil
	}
	s.suppliers.Put(sup)
	zlog.Info().Str("supplier", sup.Name).Msg("supplier registered")
	s.checkpoint.Checkpoint()
	return sup, nil
}

// SetPrice lists a unit price for a part. The part must exist in the
// catalog; negative prices clamp to zero. Listing the same part again
// overwrites the previous price.
func (s *SupplierService) SetPrice(supplierName, sku string, price decimal.Decimal) error {
	sup, ok := s.suppliers.Get(supplierName)
	if !ok {
		return entities.Validationf("unknown supplier %q", supplierName)
	}
	key := entities.KeyForSKU(sku)
	if _, ok := s.parts.Get(key); !ok {
		return entities.Validationf("cannot list price for unknown part %q", sku)
	}
	sup.SetPrice(key, price)
	s.suppliers.Put(sup)
	s.checkpoint.Checkpoint()
	return nil
}

// RemovePrice delists a part from the supplier's price list.
func (s *SupplierService) RemovePrice(supplierName, sku string) error {
	sup, ok := s.suppliers.Get(supplierName)
	if !ok {
		return entities.Validationf("unknown supplier %q", supplierName)
	}
	sup.RemovePrice(entities.KeyForSKU(sku))
	s.suppliers.Put(sup)
	s.checkpoint.Checkpoint()
	return nil
}

// DeleteSupplier removes a supplier and its price list. Lots received from
// it keep the supplier name as a historical label.
func (s *SupplierService) DeleteSupplier(name string) error {
	if _, ok := s.suppliers.Get(name); !ok {
		return entities.Validationf("unknown supplier %q", name)
	}
	s.suppliers.Delete(name)
	zlog.Info().Str("supplier", name).Msg("supplier deleted")
	s.checkpoint.Checkpoint()
	return nil
}

// Names returns all supplier names sorted alphabetically.
func (s *SupplierService) Names() []string {
	return s.suppliers.Names()
}

// Get returns a supplier by exact name.
func (s *SupplierService) Get(name string) (*entities.Supplier, bool) {
	return s.suppliers.Get(name)
}
