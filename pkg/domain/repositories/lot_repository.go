package repositories

import (
	"github.com/shopspring/decimal"

	"github.com/Michal-learning/magazyn/pkg/domain/entities"
)

// LotRepository is the warehouse's physical stock ledger. Lots are kept in
// ascending-ID order, which is receipt order and therefore FIFO order.
type LotRepository interface {
	Get(id int64) (*entities.Lot, bool)
	Append(lot entities.Lot)
	// FindMergeTarget locates a lot an incoming delivery line can be folded
	// into: same SKU key, same supplier (case-insensitive), exact unit price.
	FindMergeTarget(key entities.SKUKey, supplier string, unitPrice decimal.Decimal) (*entities.Lot, bool)
	AddQty(id int64, delta entities.Quantity)
	// BySKU returns the lots of one part in ascending-ID (FIFO) order,
	// zero-quantity lots excluded.
	BySKU(key entities.SKUKey) []entities.Lot
	All() []entities.Lot
	TotalQty(key entities.SKUKey) entities.Quantity
	// Consume applies a consumption plan (lot ID -> quantity drawn) in one
	// pass and prunes lots that reach zero. The caller must have verified
	// the plan balances; Consume itself never leaves partial state because
	// it is the single mutation point of a commit.
	Consume(plan map[int64]entities.Quantity)
	Snapshot() []entities.Lot
	Restore(lots []entities.Lot)
}
