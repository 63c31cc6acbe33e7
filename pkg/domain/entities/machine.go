package entities

import "strings"

// BOMLine is a single requirement of a machine's bill of materials.
type BOMLine struct {
	SKU string
	Qty Quantity
}

// Key returns the canonical key of the required part.
func (b BOMLine) Key() SKUKey {
	return KeyForSKU(b.SKU)
}

// Machine is a buildable product: a code, a name and a non-empty ordered
// BOM. A machine may transiently hold an empty BOM while it is being edited
// in a draft; committing such a draft is blocked.
type Machine struct {
	Code string
	Name string
	BOM  []BOMLine
}

// NewMachine creates a validated machine with an empty BOM.
func NewMachine(code, name string) (*Machine, error) {
	c := strings.TrimSpace(code)
	n := strings.TrimSpace(name)
	if c == "" || n == "" {
		return nil, &ValidationError{Reason: "machine code and name are required"}
	}
	return &Machine{Code: c, Name: n, BOM: []BOMLine{}}, nil
}

// HasBOM reports whether the machine can be committed.
func (m *Machine) HasBOM() bool {
	return len(m.BOM) > 0
}

// AddBOMQty adds a requirement for a part. Duplicate SKU entries are
// disallowed: re-adding an existing SKU increments its quantity instead of
// appending a second line. Quantities below one are coerced to one.
func (m *Machine) AddBOMQty(sku string, qty Quantity) {
	if qty < 1 {
		qty = 1
	}
	key := KeyForSKU(sku)
	for i := range m.BOM {
		if m.BOM[i].Key() == key {
			m.BOM[i].Qty += qty
			return
		}
	}
	m.BOM = append(m.BOM, BOMLine{SKU: NormalizeSKU(sku), Qty: qty})
}

// SetBOMQty replaces the requirement quantity for a part, appending a line
// when the SKU is not yet present.
func (m *Machine) SetBOMQty(sku string, qty Quantity) {
	if qty < 1 {
		qty = 1
	}
	key := KeyForSKU(sku)
	for i := range m.BOM {
		if m.BOM[i].Key() == key {
			m.BOM[i].Qty = qty
			return
		}
	}
	m.BOM = append(m.BOM, BOMLine{SKU: NormalizeSKU(sku), Qty: qty})
}

// RemoveBOMAt removes a BOM line by position. Emptying the BOM is allowed;
// the non-empty guard applies only at save time.
func (m *Machine) RemoveBOMAt(idx int) bool {
	if idx < 0 || idx >= len(m.BOM) {
		return false
	}
	m.BOM = append(m.BOM[:idx], m.BOM[idx+1:]...)
	return true
}

// Requires reports whether the BOM references the given part key.
func (m *Machine) Requires(key SKUKey) bool {
	for _, b := range m.BOM {
		if b.Key() == key {
			return true
		}
	}
	return false
}

// Clone returns a deep copy suitable for draft editing.
func (m *Machine) Clone() *Machine {
	c := &Machine{Code: m.Code, Name: m.Name, BOM: make([]BOMLine, len(m.BOM))}
	copy(c.BOM, m.BOM)
	return c
}
