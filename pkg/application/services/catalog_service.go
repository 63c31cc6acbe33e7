package services

import (
	zlog "github.com/rs/zerolog/log"

	"github.com/Michal-learning/magazyn/pkg/application/dto"
	"github.com/Michal-learning/magazyn/pkg/domain/entities"
	"github.com/Michal-learning/magazyn/pkg/domain/repositories"
)

// CatalogService manages the global part catalog. Deletion is guarded:
// a part still referenced by a supplier price list or a machine BOM stays.
type CatalogService struct {
	parts      repositories.PartRepository
	suppliers  repositories.SupplierRepository
	machines   repositories.MachineRepository
	checkpoint Checkpointer
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	parts repositories.PartRepository,
	suppliers repositories.SupplierRepository,
	machines repositories.MachineRepository,
	checkpoint Checkpointer,
) *CatalogService {
	return &CatalogService{
		parts:      parts,
		suppliers:  suppliers,
		machines:   machines,
		checkpoint: checkpoint,
	}
}

// UpsertPart registers a part or updates its name. The SKU keeps the casing
// it was first entered with for display; identity is the normalized key.
func (s *CatalogService) UpsertPart(sku, name string) (*entities.Part, error) {
	part, err := entities.NewPart(sku, name)
	if err != nil {
		return nil, err
	}
	s.parts.Put(*part)
	zlog.Info().Str("sku", part.SKU).Str("name", part.Name).Msg("part upserted")
	s.checkpoint.Checkpoint()
	return part, nil
}

// Lookup resolves a raw SKU against the catalog. A miss degrades to an
// uppercased display label instead of an error.
func (s *CatalogService) Lookup(raw string) entities.PartLookup {
	if p, ok := s.parts.Get(entities.KeyForSKU(raw)); ok {
		return entities.LookupHit(p)
	}
	return entities.LookupMiss(raw)
}

// CanDeletePart returns the references blocking deletion, if any.
func (s *CatalogService) CanDeletePart(sku string) []string {
	key := entities.KeyForSKU(sku)
	var refs []string
	for _, name := range s.suppliers.ListingPriceFor(key) {
		refs = append(refs, "supplier "+name)
	}
	for _, code := range s.machines.RequiringPart(key) {
		refs = append(refs, "machine "+code)
	}
	return refs
}

// DeletePart removes a part from the catalog. Parts referenced by a price
// list or a BOM are protected; existing lots are not a blocker because they
// carry their own display data.
func (s *CatalogService) DeletePart(sku string) error {
	key := entities.KeyForSKU(sku)
	if _, ok := s.parts.Get(key); !ok {
		return entities.Validationf("unknown part %q", sku)
	}
	if refs := s.CanDeletePart(sku); len(refs) > 0 {
		return &entities.ReferentialIntegrityError{
			Entity:     "part",
			Key:        entities.NormalizeSKU(sku),
			References: refs,
		}
	}
	s.parts.Delete(key)
	zlog.Info().Str("sku", sku).Msg("part deleted")
	s.checkpoint.Checkpoint()
	return nil
}

// EditPart renames a part and reconciles which suppliers list it. Suppliers
// present in assignments get the given price set (clamped to >= 0); suppliers
// that listed the part but are absent from assignments have the entry purged.
func (s *CatalogService) EditPart(sku, newName string, assignments []dto.SupplierAssignment) error {
	key := entities.KeyForSKU(sku)
	part, ok := s.parts.Get(key)
	if !ok {
		return entities.Validationf("unknown part %q", sku)
	}

	updated, err := entities.NewPart(part.SKU, newName)
	if err != nil {
		return err
	}

	assigned := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		sup, ok := s.suppliers.Get(a.Supplier)
		if !ok {
			return entities.Validationf("unknown supplier %q", a.Supplier)
		}
		assigned[sup.Name] = true
	}

	s.parts.Put(*updated)
	for _, a := range assignments {
		sup, _ := s.suppliers.Get(a.Supplier)
		sup.SetPrice(key, a.Price)
		s.suppliers.Put(sup)
	}
	for _, name := range s.suppliers.ListingPriceFor(key) {
		if !assigned[name] {
			sup, _ := s.suppliers.Get(name)
			sup.RemovePrice(key)
			s.suppliers.Put(sup)
		}
	}

	zlog.Info().Str("sku", part.SKU).Int("suppliers", len(assignments)).Msg("part edited")
	s.checkpoint.Checkpoint()
	return nil
}

// All returns the catalog sorted by SKU.
func (s *CatalogService) All() []entities.Part {
	return s.parts.All()
}
