package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Michal-learning/magazyn/pkg/domain/entities"
)

// PartsSummaryRow is one aggregated line of the warehouse summary: all lots
// of one part folded together.
type PartsSummaryRow struct {
	SKU   string
	Name  string
	Qty   entities.Quantity
	Value decimal.Decimal
	Level entities.StockLevel
}

// DeliveryReceipt summarizes a committed delivery.
type DeliveryReceipt struct {
	EventID    int64
	Supplier   string
	DateISO    string
	Lines      int
	TotalValue decimal.Decimal
}

// BuildReceipt summarizes a committed production run.
type BuildReceipt struct {
	EventID     int64
	DateISO     string
	Machines    []entities.HistoryMachineItem
	TotalPieces entities.Quantity
}

// SupplierAssignment pairs a supplier name with the unit price it lists for
// a part. Used when editing a part's supplier set.
type SupplierAssignment struct {
	Supplier string
	Price    decimal.Decimal
}

// LowStockEntry is one row of the low-stock panel.
type LowStockEntry struct {
	SKU   string
	Name  string
	Qty   entities.Quantity
	Level entities.StockLevel
}

// ManualAllocation maps part key -> lot ID -> quantity drawn, as entered by
// the operator for a manual consumption commit.
type ManualAllocation map[entities.SKUKey]map[int64]entities.Quantity
