package memory

import (
	"sort"

	"github.com/Michal-learning/magazyn/pkg/domain/entities"
	"github.com/Michal-learning/magazyn/pkg/domain/repositories"
)

// PartRepository provides in-memory part catalog storage keyed by the
// normalized SKU.
type PartRepository struct {
	parts map[entities.SKUKey]entities.Part
}

// NewPartRepository creates a new in-memory part repository
func NewPartRepository() *PartRepository {
	return &PartRepository{parts: make(map[entities.SKUKey]entities.Part)}
}

// Verify interface compliance
var _ repositories.PartRepository = (*PartRepository)(nil)

// Get returns the part stored under the key.
func (r *PartRepository) Get(key entities.SKUKey) (*entities.Part, bool) {
	p, ok := r.parts[key]
	if !ok {
		return nil, false
	}
	return &p, true
}

// Put stores a part, replacing any entry with the same key.
func (r *PartRepository) Put(part entities.Part) {
	r.parts[part.Key()] = part
}

// Delete removes the part stored under the key.
func (r *PartRepository) Delete(key entities.SKUKey) {
	delete(r.parts, key)
}

// All returns all parts sorted by display SKU.
func (r *PartRepository) All() []entities.Part {
	out := make([]entities.Part, 0, len(r.parts))
	for _, p := range r.parts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out
}

// Len returns the number of catalog entries.
func (r *PartRepository) Len() int {
	return len(r.parts)
}

// Snapshot returns all parts for persistence.
func (r *PartRepository) Snapshot() []entities.Part {
	return r.All()
}

// Restore replaces the catalog with the given parts.
func (r *PartRepository) Restore(parts []entities.Part) {
	r.parts = make(map[entities.SKUKey]entities.Part, len(parts))
	for _, p := range parts {
		r.parts[p.Key()] = p
	}
}
