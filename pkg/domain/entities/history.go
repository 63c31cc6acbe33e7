package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryLimit caps the history log; the oldest events are dropped first.
const HistoryLimit = 200

// HistoryEventType distinguishes committed deliveries from builds.
type HistoryEventType string

const (
	HistoryDelivery HistoryEventType = "delivery"
	HistoryBuild    HistoryEventType = "build"
)

// HistoryPartItem is one delivered line as recorded in history.
type HistoryPartItem struct {
	SKU   string
	Name  string
	Qty   Quantity
	Price decimal.Decimal
}

// HistoryMachineItem is one built machine line as recorded in history.
type HistoryMachineItem struct {
	Code string
	Name string
	Qty  Quantity
}

// HistoryEvent is an append-only record of a committed delivery or build.
// Delivery events carry Supplier and Parts; build events carry Machines.
type HistoryEvent struct {
	ID        int64
	Type      HistoryEventType
	Timestamp time.Time
	DateISO   string
	Supplier  string
	Parts     []HistoryPartItem
	Machines  []HistoryMachineItem
}

// TotalValue sums qty*price over the delivered lines.
func (e HistoryEvent) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, it := range e.Parts {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	return total
}

// TotalPieces sums the built machine quantities.
func (e HistoryEvent) TotalPieces() Quantity {
	var total Quantity
	for _, it := range e.Machines {
		total += it.Qty
	}
	return total
}
