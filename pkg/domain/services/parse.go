package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Michal-learning/magazyn/pkg/domain/entities"
)

// Form fields deliver quantities and prices as strings. These parsers are
// the explicit validation boundary: everything past them works with already
// validated numeric types.

var asciiDigits = regexp.MustCompile(`^[0-9]+$`)

// ParsePositiveInt parses a strict base-10 integer >= 1. Only ASCII digits
// are accepted: no sign, no spaces, no decimal point, no exponent notation
// like "1e3".
func ParsePositiveInt(raw string) (entities.Quantity, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &entities.ValidationError{Field: "quantity", Reason: "value is required"}
	}
	if !asciiDigits.MatchString(s) {
		return 0, entities.Validationf("quantity must be a whole number >= 1, got %q", raw)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 1 {
		return 0, entities.Validationf("quantity must be a whole number >= 1, got %q", raw)
	}
	return entities.Quantity(n), nil
}

// ParseNonNegativeDecimal parses a price field. Empty input means zero;
// negative values are rejected.
func ParseNonNegativeDecimal(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, entities.Validationf("price must be a number, got %q", raw)
	}
	if d.IsNegative() {
		return decimal.Zero, entities.Validationf("price cannot be negative, got %q", raw)
	}
	return d, nil
}

// ClampNonNegative coerces an already-parsed amount into the valid price
// range. Used where the original clamps instead of rejecting.
func ClampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
