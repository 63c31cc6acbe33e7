package entities

import "github.com/shopspring/decimal"

// DeliveryLine is one staged, not-yet-committed row of an incoming
// delivery. It carries the part name so delivery finalization can register
// unknown SKUs in the catalog.
type DeliveryLine struct {
	ID    int64
	SKU   string
	Name  string
	Qty   Quantity
	Price decimal.Decimal
}

// Key returns the canonical part key of the line.
func (d DeliveryLine) Key() SKUKey {
	return KeyForSKU(d.SKU)
}

// Total returns quantity times unit price.
func (d DeliveryLine) Total() decimal.Decimal {
	return d.Price.Mul(decimal.NewFromInt(int64(d.Qty)))
}

// DeliveryStaging is the editable buffer of an in-progress delivery tied to
// one supplier. Committing converts lines into lot mutations and clears it.
type DeliveryStaging struct {
	Supplier string
	DateISO  string
	Items    []DeliveryLine
}

// Total sums quantity*price over all staged lines.
func (s *DeliveryStaging) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.Total())
	}
	return total
}

// Remove deletes a staged line by ID.
func (s *DeliveryStaging) Remove(id int64) {
	kept := s.Items[:0]
	for _, it := range s.Items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.Items = kept
}

// Clear drops all staged lines.
func (s *DeliveryStaging) Clear() {
	s.Items = nil
}

// BuildLine is one staged machine build request.
type BuildLine struct {
	ID          int64
	MachineCode string
	Qty         Quantity
}

// BuildStaging is the editable buffer of an in-progress production order.
type BuildStaging struct {
	DateISO string
	Items   []BuildLine
}

// Remove deletes a staged line by ID.
func (s *BuildStaging) Remove(id int64) {
	kept := s.Items[:0]
	for _, it := range s.Items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.Items = kept
}

// Clear drops all staged lines.
func (s *BuildStaging) Clear() {
	s.Items = nil
}
