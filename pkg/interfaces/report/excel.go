package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Michal-learning/magazyn/pkg/interfaces/cli/output"
)

// ExportExcel writes the warehouse report to an .xlsx workbook with one
// sheet each for the summary, the lot ledger and the history log.
func ExportExcel(rep *output.Report, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	f.SetCellValue(summarySheet, "A1", "SKU")
	f.SetCellValue(summarySheet, "B1", "Name")
	f.SetCellValue(summarySheet, "C1", "Qty")
	f.SetCellValue(summarySheet, "D1", "Value")
	f.SetCellValue(summarySheet, "E1", "Level")
	for i, row := range rep.Summary {
		r := fmt.Sprint(i + 2)
		f.SetCellValue(summarySheet, "A"+r, row.SKU)
		f.SetCellValue(summarySheet, "B"+r, row.Name)
		f.SetCellValue(summarySheet, "C"+r, int64(row.Qty))
		f.SetCellValue(summarySheet, "D"+r, row.Value.InexactFloat64())
		f.SetCellValue(summarySheet, "E"+r, row.Level.String())
	}
	totalRow := fmt.Sprint(len(rep.Summary) + 3)
	f.SetCellValue(summarySheet, "A"+totalRow, "TOTAL")
	f.SetCellValue(summarySheet, "D"+totalRow, rep.TotalValue.InexactFloat64())

	const lotsSheet = "Lots"
	if _, err := f.NewSheet(lotsSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetCellValue(lotsSheet, "A1", "ID")
	f.SetCellValue(lotsSheet, "B1", "SKU")
	f.SetCellValue(lotsSheet, "C1", "Name")
	f.SetCellValue(lotsSheet, "D1", "Supplier")
	f.SetCellValue(lotsSheet, "E1", "UnitPrice")
	f.SetCellValue(lotsSheet, "F1", "Qty")
	for i, lot := range rep.Lots {
		r := fmt.Sprint(i + 2)
		f.SetCellValue(lotsSheet, "A"+r, lot.ID)
		f.SetCellValue(lotsSheet, "B"+r, lot.SKU)
		f.SetCellValue(lotsSheet, "C"+r, lot.Name)
		f.SetCellValue(lotsSheet, "D"+r, lot.Supplier)
		f.SetCellValue(lotsSheet, "E"+r, lot.UnitPrice.InexactFloat64())
		f.SetCellValue(lotsSheet, "F"+r, int64(lot.Qty))
	}

	const historySheet = "History"
	if _, err := f.NewSheet(historySheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetCellValue(historySheet, "A1", "Date")
	f.SetCellValue(historySheet, "B1", "Type")
	f.SetCellValue(historySheet, "C1", "Supplier")
	f.SetCellValue(historySheet, "D1", "Lines")
	f.SetCellValue(historySheet, "E1", "Total")
	for i, ev := range rep.Recent {
		r := fmt.Sprint(i + 2)
		f.SetCellValue(historySheet, "A"+r, ev.DateISO)
		f.SetCellValue(historySheet, "B"+r, string(ev.Type))
		f.SetCellValue(historySheet, "C"+r, ev.Supplier)
		f.SetCellValue(historySheet, "D"+r, len(ev.Parts)+len(ev.Machines))
		f.SetCellValue(historySheet, "E"+r, ev.TotalValue().InexactFloat64())
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", filename, err)
	}
	return nil
}
