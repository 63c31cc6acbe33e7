package testing

import (
	"github.com/shopspring/decimal"

	"github.com/Michal-learning/magazyn/pkg/application"
	"github.com/Michal-learning/magazyn/pkg/domain/entities"
)

// NewTestApp builds an ephemeral app seeded with the demo fixture: seven
// catalog parts, three suppliers with price lists, and opening lots
// (including two differently priced bearing lots).
func NewTestApp() *application.App {
	app := application.New(nil)
	if err := app.SeedDemoData(); err != nil {
		panic(err)
	}
	return app
}

// NewEmptyApp builds an ephemeral app with no data.
func NewEmptyApp() *application.App {
	return application.New(nil)
}

// MustAddMachine publishes a machine with the given BOM through the draft
// editor - panics on validation error
func MustAddMachine(app *application.App, code, name string, bom map[string]entities.Quantity) {
	if err := app.Machine.StartDraft(code, name); err != nil {
		panic(err)
	}
	for sku, qty := range bom {
		if err := app.Machine.DraftAddBOMItem(sku, qty); err != nil {
			panic(err)
		}
	}
	if err := app.Machine.SaveDraft(); err != nil {
		panic(err)
	}
}

// MustDeliver commits a single-line delivery - panics on validation error
func MustDeliver(app *application.App, supplier, sku, name, qty, price string) {
	if _, err := app.Delivery.SetSupplier(supplier, true); err != nil {
		panic(err)
	}
	if _, err := app.Delivery.AddItem(sku, name, qty, price); err != nil {
		panic(err)
	}
	if _, err := app.Delivery.FinalizeDelivery(); err != nil {
		panic(err)
	}
}

// MustPrice parses a decimal literal - panics on a malformed value
func MustPrice(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
