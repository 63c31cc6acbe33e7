package memory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Michal-learning/magazyn/pkg/domain/entities"
	"github.com/Michal-learning/magazyn/pkg/domain/repositories"
)

// SupplierRepository provides in-memory supplier storage keyed by the
// supplier's exact name.
type SupplierRepository struct {
	suppliers map[string]*entities.Supplier
}

// NewSupplierRepository creates a new in-memory supplier repository
func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{suppliers: make(map[string]*entities.Supplier)}
}

// Verify interface compliance
var _ repositories.SupplierRepository = (*SupplierRepository)(nil)

// Get returns the supplier stored under the name.
func (r *SupplierRepository) Get(name string) (*entities.Supplier, bool) {
	s, ok := r.suppliers[name]
	return s, ok
}

// Put stores a supplier, replacing any entry with the same name.
func (r *SupplierRepository) Put(supplier *entities.Supplier) {
	r.suppliers[supplier.Name] = supplier
}

// Delete removes the supplier stored under the name.
func (r *SupplierRepository) Delete(name string) {
	delete(r.suppliers, name)
}

// All returns all suppliers sorted by name.
func (r *SupplierRepository) All() []*entities.Supplier {
	out := make([]*entities.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns all supplier names sorted alphabetically.
func (r *SupplierRepository) Names() []string {
	names := make([]string, 0, len(r.suppliers))
	for name := range r.suppliers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListingPriceFor returns the names of suppliers whose price list references
// the given part key, sorted alphabetically.
func (r *SupplierRepository) ListingPriceFor(key entities.SKUKey) []string {
	var names []string
	for name, s := range r.suppliers {
		if s.HasPrice(key) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Snapshot returns value copies of all suppliers for persistence.
func (r *SupplierRepository) Snapshot() []entities.Supplier {
	all := r.All()
	out := make([]entities.Supplier, 0, len(all))
	for _, s := range all {
		cp := entities.Supplier{Name: s.Name, Prices: make(map[entities.SKUKey]decimal.Decimal, len(s.Prices))}
		for k, v := range s.Prices {
			cp.Prices[k] = v
		}
		out = append(out, cp)
	}
	return out
}

// Restore replaces the stored suppliers with the given set.
func (r *SupplierRepository) Restore(suppliers []entities.Supplier) {
	r.suppliers = make(map[string]*entities.Supplier, len(suppliers))
	for i := range suppliers {
		s := suppliers[i]
		if s.Prices == nil {
			s.Prices = make(map[entities.SKUKey]decimal.Decimal)
		}
		r.suppliers[s.Name] = &s
	}
}
