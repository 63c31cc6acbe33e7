package main

import (
	"fmt"

	"github.com/Michal-learning/magazyn/pkg/application"
	"github.com/Michal-learning/magazyn/pkg/application/dto"
	"github.com/Michal-learning/magazyn/pkg/domain/entities"
)

// Embedding example: run the warehouse ledger fully in memory, stage a
// delivery and a build, and print the resulting stock.
func main() {
	app := application.New(nil)

	setupCatalog(app)

	// Receive a delivery from ABC-Tools.
	if _, err := app.Delivery.SetSupplier("ABC-Tools", false); err != nil {
		fmt.Printf("delivery setup failed: %v\n", err)
		return
	}
	mustAdd := func(sku, name, qty, price string) {
		if _, err := app.Delivery.AddItem(sku, name, qty, price); err != nil {
			fmt.Printf("staging %s failed: %v\n", sku, err)
		}
	}
	mustAdd("BRG-6204", "", "10", "12.50")
	mustAdd("BRG-6204", "", "10", "15.00")
	mustAdd("SCR-M6-30", "", "100", "0.35")

	receipt, err := app.Delivery.FinalizeDelivery()
	if err != nil {
		fmt.Printf("delivery failed: %v\n", err)
		return
	}
	fmt.Printf("Delivery #%d from %s: %d lines, %s\n",
		receipt.EventID, receipt.Supplier, receipt.Lines,
		entities.FormatPLN(receipt.TotalValue))

	// Build two presses; the ledger consumes the oldest lots first.
	if _, err := app.Build.AddItem("MX-100", 2); err != nil {
		fmt.Printf("build staging failed: %v\n", err)
		return
	}
	buildReceipt, err := app.Build.FinalizeFIFO()
	if err != nil {
		fmt.Printf("build failed: %v\n", err)
		return
	}
	fmt.Printf("Build #%d: %d machine(s) built\n",
		buildReceipt.EventID, buildReceipt.TotalPieces)
	fmt.Println()

	printSummary(app.Inventory.ComputePartsSummary(""))

	fmt.Printf("\nWarehouse value: %s\n",
		entities.FormatPLN(app.Inventory.WarehouseTotalValue()))
}

// setupCatalog registers the parts, one supplier price list and one machine.
func setupCatalog(app *application.App) {
	parts := [][2]string{
		{"BRG-6204", "Łożysko 6204"},
		{"SCR-M6-30", "Śruba M6x30"},
	}
	for _, p := range parts {
		if _, err := app.Catalog.UpsertPart(p[0], p[1]); err != nil {
			fmt.Printf("catalog setup failed: %v\n", err)
			return
		}
	}

	if _, err := app.Supplier.EnsureSupplier("ABC-Tools"); err != nil {
		fmt.Printf("supplier setup failed: %v\n", err)
		return
	}

	if err := app.Machine.StartDraft("MX-100", "Prasa"); err != nil {
		fmt.Printf("machine setup failed: %v\n", err)
		return
	}
	app.Machine.DraftAddBOMItem("BRG-6204", 2)
	app.Machine.DraftAddBOMItem("SCR-M6-30", 8)
	if err := app.Machine.SaveDraft(); err != nil {
		fmt.Printf("machine setup failed: %v\n", err)
	}
}

func printSummary(rows []dto.PartsSummaryRow) {
	fmt.Println("Stock (lowest quantity first):")
	for _, row := range rows {
		fmt.Printf("  %-12s %-16s %5d szt. %12s [%s]\n",
			row.SKU, row.Name, row.Qty, entities.FormatPLN(row.Value), row.Level)
	}
}
