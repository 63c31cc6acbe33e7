package memory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Michal-learning/magazyn/pkg/domain/entities"
	"github.com/Michal-learning/magazyn/pkg/domain/repositories"
)

// LotRepository provides in-memory lot ledger storage. The slice is kept in
// ascending-ID order at all times, so a linear scan visits lots oldest first.
type LotRepository struct {
	lots []entities.Lot
}

// NewLotRepository creates a new in-memory lot repository
func NewLotRepository() *LotRepository {
	return &LotRepository{lots: make([]entities.Lot, 0)}
}

// Verify interface compliance
var _ repositories.LotRepository = (*LotRepository)(nil)

// Get returns the lot with the given ID.
func (r *LotRepository) Get(id int64) (*entities.Lot, bool) {
	for i := range r.lots {
		if r.lots[i].ID == id {
			return &r.lots[i], true
		}
	}
	return nil, false
}

// Append adds a new lot to the ledger. IDs come from a monotonic allocator,
// so appending preserves ascending-ID order.
func (r *LotRepository) Append(lot entities.Lot) {
	r.lots = append(r.lots, lot)
}

// FindMergeTarget locates a lot an incoming delivery line can be folded
// into: same SKU key, same supplier (case-insensitive), exact unit price.
func (r *LotRepository) FindMergeTarget(key entities.SKUKey, supplier string, unitPrice decimal.Decimal) (*entities.Lot, bool) {
	for i := range r.lots {
		if r.lots[i].MergesWith(key, supplier, unitPrice) {
			return &r.lots[i], true
		}
	}
	return nil, false
}

// AddQty adds a delta to the lot with the given ID. Unknown IDs are ignored.
func (r *LotRepository) AddQty(id int64, delta entities.Quantity) {
	for i := range r.lots {
		if r.lots[i].ID == id {
			r.lots[i].Qty += delta
			return
		}
	}
}

// BySKU returns the lots of one part in ascending-ID order, zero-quantity
// lots excluded.
func (r *LotRepository) BySKU(key entities.SKUKey) []entities.Lot {
	var out []entities.Lot
	for _, l := range r.lots {
		if l.Key() == key && l.Qty > 0 {
			out = append(out, l)
		}
	}
	return out
}

// All returns a copy of the whole ledger in ascending-ID order.
func (r *LotRepository) All() []entities.Lot {
	out := make([]entities.Lot, len(r.lots))
	copy(out, r.lots)
	return out
}

// TotalQty sums the on-hand quantity of one part across all its lots.
func (r *LotRepository) TotalQty(key entities.SKUKey) entities.Quantity {
	var total entities.Quantity
	for _, l := range r.lots {
		if l.Key() == key {
			total += l.Qty
		}
	}
	return total
}

// Consume applies a consumption plan (lot ID -> quantity drawn) in one pass
// and prunes lots that reach zero. The caller verifies the plan balances
// before calling.
func (r *LotRepository) Consume(plan map[int64]entities.Quantity) {
	kept := r.lots[:0]
	for _, l := range r.lots {
		if take, ok := plan[l.ID]; ok {
			l.Qty -= take
		}
		if l.Qty > 0 {
			kept = append(kept, l)
		}
	}
	r.lots = kept
}

// Snapshot returns the ledger for persistence.
func (r *LotRepository) Snapshot() []entities.Lot {
	return r.All()
}

// Restore replaces the ledger with the given lots, re-sorted by ID in case
// the stored order drifted.
func (r *LotRepository) Restore(lots []entities.Lot) {
	r.lots = make([]entities.Lot, len(lots))
	copy(r.lots, lots)
	sort.Slice(r.lots, func(i, j int) bool { return r.lots[i].ID < r.lots[j].ID })
}
