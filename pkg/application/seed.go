package application

import (
	"fmt"

	"github.com/shopspring/decimal"

	zlog "github.com/rs/zerolog/log"

	"github.com/Michal-learning/magazyn/pkg/domain/entities"
)

// SeedDemoData loads the demo catalog: seven parts, three suppliers with
// price lists, and opening lots including two differently priced bearing
// lots so FIFO consumption is visible immediately.
func (a *App) SeedDemoData() error {
	parts := []struct{ sku, name string }{
		{"BRG-6204", "Łożysko 6204"},
		{"SCR-M6-30", "Śruba M6x30"},
		{"SEN-IR01", "Czujnik IR"},
		{"BLT-A32", "Pasek A32"},
		{"PLT-3MM", "Blacha 3mm"},
		{"ROD-10", "Pręt 10mm"},
		{"PSU-12V5A", "Zasilacz 12V 5A"},
	}
	for _, p := range parts {
		if _, err := a.Catalog.UpsertPart(p.sku, p.name); err != nil {
			return fmt.Errorf("seeding part %s: %w", p.sku, err)
		}
	}

	prices := []struct {
		supplier, sku, price string
	}{
		{"ABC-Tools", "BRG-6204", "12.50"},
		{"ABC-Tools", "SCR-M6-30", "0.35"},
		{"ABC-Tools", "BLT-A32", "19.90"},
		{"Elektronix", "SEN-IR01", "14.99"},
		{"Elektronix", "PSU-12V5A", "39.00"},
		{"Metal-Pol", "PLT-3MM", "180.00"},
		{"Metal-Pol", "ROD-10", "25.00"},
	}
	for _, pr := range prices {
		if _, err := a.Supplier.EnsureSupplier(pr.supplier); err != nil {
			return fmt.Errorf("seeding supplier %s: %w", pr.supplier, err)
		}
		if err := a.Supplier.SetPrice(pr.supplier, pr.sku, decimal.RequireFromString(pr.price)); err != nil {
			return fmt.Errorf("seeding price %s/%s: %w", pr.supplier, pr.sku, err)
		}
	}

	lots := []struct {
		sku, supplier, price string
		qty                  int64
	}{
		{"BRG-6204", "ABC-Tools", "12.50", 10},
		{"BRG-6204", "ABC-Tools", "15.00", 10},
		{"SCR-M6-30", "ABC-Tools", "0.35", 400},
		{"SEN-IR01", "Elektronix", "14.99", 10},
		{"BLT-A32", "ABC-Tools", "19.90", 10},
	}
	// Opening lots go straight into the ledger: seeding is not a delivery,
	// so it leaves no history events behind.
	for _, l := range lots {
		lookup := a.Catalog.Lookup(l.sku)
		lot, err := entities.NewLot(
			a.Seq.Next(),
			lookup.DisplaySKU(),
			lookup.DisplayName(),
			l.supplier,
			decimal.RequireFromString(l.price),
			entities.Quantity(l.qty),
		)
		if err != nil {
			return fmt.Errorf("seeding lot %s: %w", l.sku, err)
		}
		a.Lots.Append(*lot)
	}
	a.Checkpoint()

	zlog.Info().Int("parts", len(parts)).Int("lots", len(lots)).Msg("demo data seeded")
	return nil
}
