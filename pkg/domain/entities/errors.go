package entities

import (
	"fmt"
	"strings"
)

// ValidationError reports malformed or missing required input. It is always
// recoverable and never leaves any state mutated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validationf builds a ValidationError with a formatted reason.
func Validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ReferentialIntegrityError blocks deletion of an entity that is still
// referenced elsewhere. References name the blocking entries so the caller
// can resolve them first.
type ReferentialIntegrityError struct {
	Entity     string
	Key        string
	References []string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s %q is still referenced by: %s",
		e.Entity, e.Key, strings.Join(e.References, ", "))
}

// ShortageLine describes one SKU whose available quantity does not cover a
// build's computed requirement.
type ShortageLine struct {
	SKU    string
	Key    SKUKey
	Needed Quantity
	Has    Quantity
}

// Deficit returns how many units are missing.
func (s ShortageLine) Deficit() Quantity {
	return s.Needed - s.Has
}

// ShortageError carries every shortage line of a blocked build commit, not
// just the first one.
type ShortageError struct {
	Lines []ShortageLine
}

func (e *ShortageError) Error() string {
	parts := make([]string, 0, len(e.Lines))
	for _, l := range e.Lines {
		parts = append(parts, fmt.Sprintf("%s: need %d, have %d (missing %d)",
			l.SKU, l.Needed, l.Has, l.Deficit()))
	}
	return "insufficient stock: " + strings.Join(parts, "; ")
}

// AllocationMismatch reports one SKU whose manually allocated sum differs
// from the computed requirement.
type AllocationMismatch struct {
	SKU      string
	Key      SKUKey
	Chosen   Quantity
	Required Quantity
}

// AllocationMismatchError rejects a manual consumption plan whose per-SKU
// sums do not exactly equal the requirements. Both under- and
// over-allocation are rejected.
type AllocationMismatchError struct {
	Mismatches []AllocationMismatch
}

func (e *AllocationMismatchError) Error() string {
	parts := make([]string, 0, len(e.Mismatches))
	for _, m := range e.Mismatches {
		parts = append(parts, fmt.Sprintf("%s: chose %d, need %d", m.SKU, m.Chosen, m.Required))
	}
	return "manual allocation does not balance: " + strings.Join(parts, "; ")
}
