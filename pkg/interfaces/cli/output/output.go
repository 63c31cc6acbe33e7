package output

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Michal-learning/magazyn/pkg/application/dto"
	"github.com/Michal-learning/magazyn/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format  string
	Verbose bool
}

// Report is the assembled read model printed by the CLI.
type Report struct {
	Summary      []dto.PartsSummaryRow
	TotalValue   decimal.Decimal
	Lots         []entities.Lot
	MachineStock []entities.MachineStockEntry
	LowStock     []dto.LowStockEntry
	Recent       []entities.HistoryEvent
	Thresholds   entities.Thresholds
}

// Generate creates output in the specified format
func Generate(report *Report, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(report, config)
	case "json":
		return generateJSONOutput(report)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(report *Report, config Config) error {
	fmt.Printf("Warehouse Summary\n")
	fmt.Printf("=================\n\n")
	fmt.Printf("Stocked parts: %d\n", len(report.Summary))
	fmt.Printf("Total value:   %s\n", entities.FormatPLN(report.TotalValue))
	fmt.Printf("Thresholds:    warn <= %d, danger <= %d\n\n",
		report.Thresholds.Warn, report.Thresholds.Danger)

	if len(report.Summary) > 0 {
		fmt.Printf("%-14s %-24s %8s %14s %-8s\n", "SKU", "Name", "Qty", "Value", "Level")
		fmt.Printf("%-14s %-24s %8s %14s %-8s\n",
			"--------------", "------------------------", "--------", "--------------", "--------")
		for _, row := range report.Summary {
			fmt.Printf("%-14s %-24s %8d %14s %-8s\n",
				row.SKU, row.Name, row.Qty, entities.FormatPLN(row.Value), row.Level)
		}
		fmt.Println()
	}

	if config.Verbose && len(report.Lots) > 0 {
		fmt.Printf("Lots (oldest first):\n")
		fmt.Printf("%-6s %-14s %-16s %12s %8s\n", "ID", "SKU", "Supplier", "Unit price", "Qty")
		for _, lot := range report.Lots {
			fmt.Printf("%-6d %-14s %-16s %12s %8d\n",
				lot.ID, lot.SKU, lot.Supplier, entities.FormatPLN(lot.UnitPrice), lot.Qty)
		}
		fmt.Println()
	}

	if len(report.MachineStock) > 0 {
		fmt.Printf("Machines built:\n")
		for _, e := range report.MachineStock {
			fmt.Printf("  %-10s %-24s %6d szt.\n", e.Code, e.Name, e.Qty)
		}
		fmt.Println()
	}

	if len(report.LowStock) > 0 {
		fmt.Printf("Low stock:\n")
		for _, e := range report.LowStock {
			fmt.Printf("  [%s] %-14s %-24s %6d\n", e.Level, e.SKU, e.Name, e.Qty)
		}
		fmt.Println()
	}

	if len(report.Recent) > 0 {
		fmt.Printf("Recent actions:\n")
		for _, ev := range report.Recent {
			switch ev.Type {
			case entities.HistoryDelivery:
				fmt.Printf("  %s delivery from %-16s %3d lines, %s\n",
					ev.DateISO, ev.Supplier, len(ev.Parts), entities.FormatPLN(ev.TotalValue()))
			case entities.HistoryBuild:
				fmt.Printf("  %s build %3d machine lines, %d szt.\n",
					ev.DateISO, len(ev.Machines), ev.TotalPieces())
			}
		}
		fmt.Println()
	}

	return nil
}

// generateJSONOutput creates JSON output
func generateJSONOutput(report *Report) error {
	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonData))
	return nil
}
