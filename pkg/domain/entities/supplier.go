package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Supplier owns a price list keyed by SKUKey. Supplier identity is the name
// exactly as entered (trimmed, case preserved).
type Supplier struct {
	Name   string
	Prices map[SKUKey]decimal.Decimal
}

// NewSupplier creates a validated Supplier with an empty price list.
func NewSupplier(name string) (*Supplier, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return nil, &ValidationError{Field: "supplier", Reason: "name cannot be empty"}
	}
	return &Supplier{Name: n, Prices: make(map[SKUKey]decimal.Decimal)}, nil
}

// SetPrice records a unit price for a SKU, clamped to be non-negative.
// Last write wins.
func (s *Supplier) SetPrice(key SKUKey, price decimal.Decimal) {
	if s.Prices == nil {
		s.Prices = make(map[SKUKey]decimal.Decimal)
	}
	if price.IsNegative() {
		price = decimal.Zero
	}
	s.Prices[key] = price
}

// PriceFor returns the listed unit price for a SKU, if any.
func (s *Supplier) PriceFor(key SKUKey) (decimal.Decimal, bool) {
	p, ok := s.Prices[key]
	return p, ok
}

// RemovePrice purges a SKU from the price list.
func (s *Supplier) RemovePrice(key SKUKey) {
	delete(s.Prices, key)
}

// HasPrice reports whether the supplier lists the SKU.
func (s *Supplier) HasPrice(key SKUKey) bool {
	_, ok := s.Prices[key]
	return ok
}
