package entities

import "strings"

// SKUKey is the case-normalized (trimmed, lowercased) part identifier used
// for all lookups and equality checks. The display SKU keeps original casing.
type SKUKey string

// Quantity represents an integer quantity of discrete stock units.
type Quantity int64

// NormalizeSKU trims surrounding whitespace from a raw SKU while preserving
// its casing for display.
func NormalizeSKU(raw string) string {
	return strings.TrimSpace(raw)
}

// KeyForSKU derives the canonical lookup key from a raw SKU.
func KeyForSKU(raw string) SKUKey {
	return SKUKey(strings.ToLower(NormalizeSKU(raw)))
}

// Part is one entry of the global part catalog. Every SKU referenced by a
// price list, a BOM, a lot or a staged line must resolve to a Part.
type Part struct {
	SKU  string
	Name string
}

// NewPart creates a validated Part from raw form input.
func NewPart(sku, name string) (*Part, error) {
	s := NormalizeSKU(sku)
	n := strings.TrimSpace(name)
	if s == "" || n == "" {
		return nil, &ValidationError{Reason: "both SKU and name are required"}
	}
	return &Part{SKU: s, Name: n}, nil
}

// Key returns the part's canonical lookup key.
func (p Part) Key() SKUKey {
	return KeyForSKU(p.SKU)
}

// PartLookup is the result of a catalog lookup that never fails hard: the
// read path degrades to an uppercased display label when the SKU is unknown.
type PartLookup struct {
	Part     *Part
	Fallback string
}

// LookupHit wraps a catalog hit.
func LookupHit(p *Part) PartLookup {
	return PartLookup{Part: p}
}

// LookupMiss produces the display-only degradation for an unknown SKU.
func LookupMiss(rawSKU string) PartLookup {
	return PartLookup{Fallback: strings.ToUpper(NormalizeSKU(rawSKU))}
}

// Known reports whether the lookup resolved to a catalog entry.
func (l PartLookup) Known() bool {
	return l.Part != nil
}

// DisplaySKU returns the display SKU, or the fallback label on a miss.
func (l PartLookup) DisplaySKU() string {
	if l.Part != nil {
		return l.Part.SKU
	}
	return l.Fallback
}

// DisplayName returns the part name, or the fallback label on a miss.
func (l PartLookup) DisplayName() string {
	if l.Part != nil {
		return l.Part.Name
	}
	return l.Fallback
}
