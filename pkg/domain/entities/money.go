package entities

import "github.com/shopspring/decimal"

// FormatPLN renders an amount as Polish złoty for display. This is the
// single currency formatting point of the whole ledger.
func FormatPLN(amount decimal.Decimal) string {
	return amount.StringFixed(2) + " zł"
}
