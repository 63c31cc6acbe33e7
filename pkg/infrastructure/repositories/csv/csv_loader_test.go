package csv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Michal-learning/magazyn/pkg/domain/entities"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestLoadParts(t *testing.T) {
	path := writeFile(t, "parts.csv", "sku,name\nBRG-6204,Łożysko 6204\nSCR-M6-30,Śruba M6x30\n")

	parts, err := NewLoader().LoadParts(path)
	if err != nil {
		t.Fatalf("Failed to load parts: %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("Expected 2 parts, got %d", len(parts))
	}
	if parts[0].SKU != "BRG-6204" || parts[0].Name != "Łożysko 6204" {
		t.Errorf("Unexpected first part: %+v", parts[0])
	}
}

func TestLoadParts_HeaderMismatch(t *testing.T) {
	path := writeFile(t, "parts.csv", "code,label\nX,Y\n")

	_, err := NewLoader().LoadParts(path)
	if err == nil {
		t.Fatal("Expected header mismatch error, got none")
	}
	if !strings.Contains(err.Error(), "header mismatch") {
		t.Errorf("Expected header mismatch message, got: %v", err)
	}
}

func TestLoadPrices(t *testing.T) {
	path := writeFile(t, "prices.csv", "supplier,sku,unit_price\nABC-Tools,BRG-6204,12.50\n")

	rows, err := NewLoader().LoadPrices(path)
	if err != nil {
		t.Fatalf("Failed to load prices: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if !rows[0].Price.Equal(decimal.RequireFromString("12.50")) {
		t.Errorf("Expected price 12.50, got %s", rows[0].Price)
	}
}

func TestLoadLots_RejectsBadRows(t *testing.T) {
	loader := NewLoader()

	badQty := writeFile(t, "lots.csv", "sku,supplier,unit_price,qty\nBRG-6204,ABC-Tools,12.50,0\n")
	if _, err := loader.LoadLots(badQty); err == nil {
		t.Error("Expected error for zero qty")
	}

	badPrice := writeFile(t, "lots2.csv", "sku,supplier,unit_price,qty\nBRG-6204,ABC-Tools,-1,5\n")
	if _, err := loader.LoadLots(badPrice); err == nil {
		t.Error("Expected error for negative price")
	}
}

func TestLoadMachines_GroupsByCode(t *testing.T) {
	path := writeFile(t, "machines.csv",
		"code,name,sku,qty\nMX-100,Prasa,BRG-6204,2\nMX-100,Prasa,SCR-M6-30,8\n")

	rows, err := NewLoader().LoadMachines(path)
	if err != nil {
		t.Fatalf("Failed to load machines: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 BOM rows, got %d", len(rows))
	}
	if rows[0].Code != "MX-100" || rows[0].Qty != entities.Quantity(2) {
		t.Errorf("Unexpected first row: %+v", rows[0])
	}
}
