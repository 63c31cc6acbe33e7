package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Michal-learning/magazyn/pkg/domain/entities"
)

// Loader reads seed data from CSV files: the part catalog, supplier price
// lists, machine BOMs and opening lots.
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// PriceRow is one supplier price listing.
type PriceRow struct {
	Supplier string
	SKU      string
	Price    decimal.Decimal
}

// LotRow is one opening stock row.
type LotRow struct {
	SKU       string
	Supplier  string
	UnitPrice decimal.Decimal
	Qty       entities.Quantity
}

// MachineRow is one machine BOM line; rows sharing a code belong to the
// same machine.
type MachineRow struct {
	Code string
	Name string
	SKU  string
	Qty  entities.Quantity
}

// LoadParts loads the part catalog from a CSV file
func (l *Loader) LoadParts(filename string) ([]entities.Part, error) {
	records, err := readAll(filename, []string{"sku", "name"})
	if err != nil {
		return nil, fmt.Errorf("parts CSV: %w", err)
	}

	var parts []entities.Part
	for i, record := range records {
		part, err := entities.NewPart(record[0], record[1])
		if err != nil {
			return nil, fmt.Errorf("parts CSV row %d: %w", i+2, err)
		}
		parts = append(parts, *part)
	}
	return parts, nil
}

// LoadPrices loads supplier price listings from a CSV file
func (l *Loader) LoadPrices(filename string) ([]PriceRow, error) {
	records, err := readAll(filename, []string{"supplier", "sku", "unit_price"})
	if err != nil {
		return nil, fmt.Errorf("prices CSV: %w", err)
	}

	var rows []PriceRow
	for i, record := range records {
		price, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, fmt.Errorf("prices CSV row %d: bad unit_price %q", i+2, record[2])
		}
		rows = append(rows, PriceRow{
			Supplier: strings.TrimSpace(record[0]),
			SKU:      entities.NormalizeSKU(record[1]),
			Price:    price,
		})
	}
	return rows, nil
}

// LoadMachines loads machine BOM lines from a CSV file
func (l *Loader) LoadMachines(filename string) ([]MachineRow, error) {
	records, err := readAll(filename, []string{"code", "name", "sku", "qty"})
	if err != nil {
		return nil, fmt.Errorf("machines CSV: %w", err)
	}

	var rows []MachineRow
	for i, record := range records {
		qty, err := strconv.ParseInt(strings.TrimSpace(record[3]), 10, 64)
		if err != nil || qty < 1 {
			return nil, fmt.Errorf("machines CSV row %d: bad qty %q", i+2, record[3])
		}
		rows = append(rows, MachineRow{
			Code: strings.TrimSpace(record[0]),
			Name: strings.TrimSpace(record[1]),
			SKU:  entities.NormalizeSKU(record[2]),
			Qty:  entities.Quantity(qty),
		})
	}
	return rows, nil
}

// LoadLots loads opening stock from a CSV file
func (l *Loader) LoadLots(filename string) ([]LotRow, error) {
	records, err := readAll(filename, []string{"sku", "supplier", "unit_price", "qty"})
	if err != nil {
		return nil, fmt.Errorf("lots CSV: %w", err)
	}

	var rows []LotRow
	for i, record := range records {
		price, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil || price.IsNegative() {
			return nil, fmt.Errorf("lots CSV row %d: bad unit_price %q", i+2, record[2])
		}
		qty, err := strconv.ParseInt(strings.TrimSpace(record[3]), 10, 64)
		if err != nil || qty < 1 {
			return nil, fmt.Errorf("lots CSV row %d: bad qty %q", i+2, record[3])
		}
		rows = append(rows, LotRow{
			SKU:       entities.NormalizeSKU(record[0]),
			Supplier:  strings.TrimSpace(record[1]),
			UnitPrice: price,
			Qty:       entities.Quantity(qty),
		})
	}
	return rows, nil
}

// readAll opens a CSV file, validates its header and returns the data rows.
func readAll(filename string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s must have header and at least one data row", filename)
	}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("%s header mismatch. Expected: %v, Got: %v",
			filename, expectedHeader, records[0])
	}
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("%s row %d: expected %d columns, got %d",
				filename, i+2, len(expectedHeader), len(record))
		}
	}
	return records[1:], nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}
