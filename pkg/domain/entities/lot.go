package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Lot is a discrete quantity of one part received from one supplier at one
// unit price. Identity is the ID, allocated once and immutable; only the
// quantity ever changes, and lots that reach zero are pruned from the
// ledger. Ascending IDs double as receipt order, which makes oldest-first
// consumption a sort by ID.
type Lot struct {
	ID        int64
	SKU       string
	Name      string
	Supplier  string
	UnitPrice decimal.Decimal
	Qty       Quantity
}

// NewLot creates a validated lot. Negative prices and quantities are
// rejected rather than clamped; lot creation from deliveries normalizes
// inputs before calling this.
func NewLot(id int64, sku, name, supplier string, unitPrice decimal.Decimal, qty Quantity) (*Lot, error) {
	s := NormalizeSKU(sku)
	n := strings.TrimSpace(name)
	if s == "" {
		return nil, &ValidationError{Field: "lot", Reason: "SKU cannot be empty"}
	}
	if n == "" {
		return nil, &ValidationError{Field: "lot", Reason: "name cannot be empty"}
	}
	if qty <= 0 {
		return nil, Validationf("lot quantity must be positive, got %d", qty)
	}
	if unitPrice.IsNegative() {
		return nil, Validationf("lot unit price cannot be negative, got %s", unitPrice)
	}
	return &Lot{
		ID:        id,
		SKU:       s,
		Name:      n,
		Supplier:  strings.TrimSpace(supplier),
		UnitPrice: unitPrice,
		Qty:       qty,
	}, nil
}

// Key returns the lot's canonical part key.
func (l Lot) Key() SKUKey {
	return KeyForSKU(l.SKU)
}

// Value returns quantity times unit price.
func (l Lot) Value() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// MergesWith reports whether an incoming delivery line may be folded into
// this lot instead of opening a new one: same SKU key, same supplier
// (case-insensitive) and exactly the same unit price.
func (l Lot) MergesWith(key SKUKey, supplier string, unitPrice decimal.Decimal) bool {
	return l.Key() == key &&
		strings.EqualFold(strings.TrimSpace(l.Supplier), strings.TrimSpace(supplier)) &&
		l.UnitPrice.Equal(unitPrice)
}
