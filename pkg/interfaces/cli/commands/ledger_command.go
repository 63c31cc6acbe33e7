package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Michal-learning/magazyn/pkg/application"
	"github.com/Michal-learning/magazyn/pkg/domain/entities"
	"github.com/Michal-learning/magazyn/pkg/infrastructure/config"
	"github.com/Michal-learning/magazyn/pkg/infrastructure/persistence"
	"github.com/Michal-learning/magazyn/pkg/infrastructure/repositories/csv"
	"github.com/Michal-learning/magazyn/pkg/interfaces/cli/output"
	"github.com/Michal-learning/magazyn/pkg/interfaces/report"
)

// Config holds configuration for the ledger command
type Config struct {
	DBPath     string
	Demo       bool
	SeedDir    string
	ExportFile string
	Filter     string
	Recent     int
	Format     string
	Verbose    bool
	Help       bool
}

// LedgerCommand loads the warehouse state, optionally seeds it, and prints
// the warehouse report.
type LedgerCommand struct {
	config Config
}

// NewLedgerCommand creates a new ledger command with the given configuration
func NewLedgerCommand(config Config) *LedgerCommand {
	return &LedgerCommand{
		config: config,
	}
}

// Execute runs the ledger command
func (c *LedgerCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	dbPath := c.config.DBPath
	if dbPath == "" {
		dbPath = cfg.Database.Path
	}

	store, err := persistence.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open state database %s: %w", dbPath, err)
	}

	app := application.New(store)
	restored, err := app.Load()
	if err != nil {
		return fmt.Errorf("failed to restore state: %w", err)
	}
	if !restored {
		app.SetInitialThresholds(
			entities.Quantity(cfg.Stock.WarnAt),
			entities.Quantity(cfg.Stock.DangerAt),
		)
	}

	if c.config.Demo && !restored {
		if err := app.SeedDemoData(); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	if c.config.SeedDir != "" {
		if err := c.importSeedDir(app, c.config.SeedDir); err != nil {
			return fmt.Errorf("failed to import seed directory: %w", err)
		}
	}

	rep := c.buildReport(app)

	outputConfig := output.Config{
		Format:  c.config.Format,
		Verbose: c.config.Verbose,
	}
	if err := output.Generate(rep, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.ExportFile != "" {
		target := c.config.ExportFile
		if !filepath.IsAbs(target) {
			target = filepath.Join(cfg.Export.Dir, target)
		}
		if err := report.ExportExcel(rep, target); err != nil {
			return fmt.Errorf("error exporting workbook: %w", err)
		}
		if c.config.Verbose {
			fmt.Printf("Workbook written to %s\n", target)
		}
	}

	return nil
}

// buildReport assembles the read model for the requested filter.
func (c *LedgerCommand) buildReport(app *application.App) *output.Report {
	recent := c.config.Recent
	if recent <= 0 {
		recent = 5
	}
	return &output.Report{
		Summary:      app.Inventory.ComputePartsSummary(c.config.Filter),
		TotalValue:   app.Inventory.WarehouseTotalValue(),
		Lots:         app.Inventory.Lots(c.config.Filter),
		MachineStock: app.Inventory.MachineStock(c.config.Filter),
		LowStock:     app.Inventory.LowStockTop(5),
		Recent:       app.Inventory.RecentActions(recent),
		Thresholds:   app.Inventory.Thresholds(),
	}
}

// importSeedDir loads catalog, price, machine and opening-lot CSV files from
// a directory. Each file is optional; present files load in dependency
// order so prices and BOM lines can reference freshly added parts.
func (c *LedgerCommand) importSeedDir(app *application.App, dir string) error {
	loader := csv.NewLoader()

	partsPath := filepath.Join(dir, "parts.csv")
	if fileExists(partsPath) {
		parts, err := loader.LoadParts(partsPath)
		if err != nil {
			return err
		}
		for _, p := range parts {
			if _, err := app.Catalog.UpsertPart(p.SKU, p.Name); err != nil {
				return fmt.Errorf("part %s: %w", p.SKU, err)
			}
		}
	}

	pricesPath := filepath.Join(dir, "prices.csv")
	if fileExists(pricesPath) {
		rows, err := loader.LoadPrices(pricesPath)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := app.Supplier.EnsureSupplier(row.Supplier); err != nil {
				return fmt.Errorf("supplier %s: %w", row.Supplier, err)
			}
			if err := app.Supplier.SetPrice(row.Supplier, row.SKU, row.Price); err != nil {
				return fmt.Errorf("price %s/%s: %w", row.Supplier, row.SKU, err)
			}
		}
	}

	machinesPath := filepath.Join(dir, "machines.csv")
	if fileExists(machinesPath) {
		rows, err := loader.LoadMachines(machinesPath)
		if err != nil {
			return err
		}
		if err := c.importMachines(app, rows); err != nil {
			return err
		}
	}

	lotsPath := filepath.Join(dir, "lots.csv")
	if fileExists(lotsPath) {
		rows, err := loader.LoadLots(lotsPath)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if err := c.importLot(app, row); err != nil {
				return err
			}
		}
	}

	app.Checkpoint()
	return nil
}

// importMachines groups BOM rows by machine code and saves each machine
// through the draft editor so catalog membership is enforced per line.
func (c *LedgerCommand) importMachines(app *application.App, rows []csv.MachineRow) error {
	var order []string
	grouped := make(map[string][]csv.MachineRow)
	for _, row := range rows {
		if _, seen := grouped[row.Code]; !seen {
			order = append(order, row.Code)
		}
		grouped[row.Code] = append(grouped[row.Code], row)
	}

	for _, code := range order {
		lines := grouped[code]
		if err := app.Machine.StartDraft(code, lines[0].Name); err != nil {
			return fmt.Errorf("machine %s: %w", code, err)
		}
		for _, line := range lines {
			if err := app.Machine.DraftAddBOMItem(line.SKU, line.Qty); err != nil {
				app.Machine.DiscardDraft()
				return fmt.Errorf("machine %s line %s: %w", code, line.SKU, err)
			}
		}
		if err := app.Machine.SaveDraft(); err != nil {
			return fmt.Errorf("machine %s: %w", code, err)
		}
	}
	return nil
}

// importLot appends one opening lot, merging into an existing lot with the
// same SKU, supplier and unit price.
func (c *LedgerCommand) importLot(app *application.App, row csv.LotRow) error {
	lookup := app.Catalog.Lookup(row.SKU)
	if !lookup.Known() {
		if _, err := app.Catalog.UpsertPart(row.SKU, lookup.DisplayName()); err != nil {
			return fmt.Errorf("lot %s: %w", row.SKU, err)
		}
		lookup = app.Catalog.Lookup(row.SKU)
	}

	key := entities.KeyForSKU(row.SKU)
	if target, ok := app.Lots.FindMergeTarget(key, row.Supplier, row.UnitPrice); ok {
		app.Lots.AddQty(target.ID, row.Qty)
		return nil
	}
	lot, err := entities.NewLot(app.Seq.Next(), lookup.DisplaySKU(), lookup.DisplayName(),
		row.Supplier, row.UnitPrice, row.Qty)
	if err != nil {
		return fmt.Errorf("lot %s: %w", row.SKU, err)
	}
	app.Lots.Append(*lot)
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// showHelp displays the help message
func (c *LedgerCommand) showHelp() {
	fmt.Printf(`Magazyn - Warehouse Inventory Ledger

USAGE:
    magazyn                          # Print the warehouse report
    magazyn -demo                    # Seed demo data on a fresh database
    magazyn -seed-dir <directory>    # Import catalog and stock from CSV files

OPTIONS:
    -db <file>          Path to the SQLite state database (default from config)
    -demo               Seed demo data when the database is empty
    -seed-dir <dir>     Import CSV files from a directory
    -filter <text>      Case-insensitive substring filter for the report
    -recent <n>         Number of recent actions to show (default: 5)
    -export <file>      Write the report to an .xlsx workbook
    -format <fmt>       Output format: text, json (default: text)
    -verbose            Include the full lot ledger in the output
    -help               Show this help message

SEED DIRECTORY STRUCTURE (each file optional):
    seed_name/
    ├── parts.csv       # Part catalog
    ├── prices.csv      # Supplier price listings
    ├── machines.csv    # Machine BOM lines
    └── lots.csv        # Opening stock lots

CSV FILE FORMATS:

parts.csv:
    sku,name
    BRG-6204,Łożysko 6204

prices.csv:
    supplier,sku,unit_price
    ABC-Tools,BRG-6204,12.50

machines.csv:
    code,name,sku,qty
    MX-100,Prasa,BRG-6204,2

lots.csv:
    sku,supplier,unit_price,qty
    BRG-6204,ABC-Tools,12.50,10

CONFIGURATION:
    Settings come from config.yaml in the working directory and from
    MAGAZYN_-prefixed environment variables, e.g. MAGAZYN_DATABASE_PATH.

EXAMPLES:
    # Fresh database with demo data, verbose report
    magazyn -demo -verbose

    # Import a seed directory into a named database
    magazyn -db warehouse.db -seed-dir seeds/plant_a

    # Filter the report and export it
    magazyn -filter łożysko -export report.xlsx

    # JSON output for scripting
    magazyn -format json
`)
}
