package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apptesting "github.com/Michal-learning/magazyn/pkg/application/services/testing"
	"github.com/Michal-learning/magazyn/pkg/domain/entities"
)

func TestFinalizeDelivery_MergesMatchingLot(t *testing.T) {
	app := apptesting.NewTestApp()
	key := entities.KeyForSKU("BRG-6204")

	lotsBefore := app.Lots.BySKU(key)
	require.Len(t, lotsBefore, 2, "fixture has two bearing lots at different prices")
	firstID := lotsBefore[0].ID

	// Same supplier, same price as the first lot: folds in instead of
	// opening a third lot.
	apptesting.MustDeliver(app, "ABC-Tools", "brg-6204", "", "10", "12.50")

	lots := app.Lots.BySKU(key)
	require.Len(t, lots, 2)
	assert.Equal(t, firstID, lots[0].ID)
	assert.Equal(t, entities.Quantity(20), lots[0].Qty)
	assert.Equal(t, entities.Quantity(10), lots[1].Qty)
}

func TestFinalizeDelivery_NewPriceOpensNewLot(t *testing.T) {
	app := apptesting.NewTestApp()
	key := entities.KeyForSKU("BRG-6204")

	apptesting.MustDeliver(app, "ABC-Tools", "BRG-6204", "", "5", "13.75")

	lots := app.Lots.BySKU(key)
	require.Len(t, lots, 3)
	assert.Equal(t, entities.Quantity(5), lots[2].Qty)
	assert.True(t, lots[2].UnitPrice.Equal(apptesting.MustPrice("13.75")))
}

func TestFinalizeDelivery_RegistersUnknownPart(t *testing.T) {
	app := apptesting.NewTestApp()

	apptesting.MustDeliver(app, "ABC-Tools", "CBL-2M", "Przewód 2m", "3", "7.00")

	part, ok := app.Parts.Get(entities.KeyForSKU("CBL-2M"))
	require.True(t, ok, "unknown delivered part lands in the catalog")
	assert.Equal(t, "Przewód 2m", part.Name)

	events := app.History.Recent(1)
	require.Len(t, events, 1)
	assert.Equal(t, entities.HistoryDelivery, events[0].Type)
	assert.Equal(t, "ABC-Tools", events[0].Supplier)
	assert.True(t, events[0].TotalValue().Equal(apptesting.MustPrice("21.00")))
}

func TestSetSupplier_StagedLinesNeedConfirmation(t *testing.T) {
	app := apptesting.NewTestApp()

	_, err := app.Delivery.SetSupplier("ABC-Tools", false)
	require.NoError(t, err)
	_, err = app.Delivery.AddItem("BRG-6204", "", "5", "12.50")
	require.NoError(t, err)

	needsConfirm, err := app.Delivery.SetSupplier("Elektronix", false)
	require.NoError(t, err)
	assert.True(t, needsConfirm)
	assert.Equal(t, "ABC-Tools", app.Delivery.Staging().Supplier, "nothing changes without force")
	assert.Len(t, app.Delivery.Staging().Items, 1)

	needsConfirm, err = app.Delivery.SetSupplier("Elektronix", true)
	require.NoError(t, err)
	assert.False(t, needsConfirm)
	assert.Equal(t, "Elektronix", app.Delivery.Staging().Supplier)
	assert.Empty(t, app.Delivery.Staging().Items, "force discards staged lines")
}

func TestDelivery_AddItemValidation(t *testing.T) {
	app := apptesting.NewTestApp()

	// No supplier selected.
	_, err := app.Delivery.AddItem("BRG-6204", "", "5", "12.50")
	require.Error(t, err)

	_, err = app.Delivery.SetSupplier("ABC-Tools", false)
	require.NoError(t, err)

	for _, qty := range []string{"0", "-1", "1.5", "1e3", ""} {
		_, err := app.Delivery.AddItem("BRG-6204", "", qty, "12.50")
		assert.Error(t, err, "quantity %q must be rejected", qty)
	}

	_, err = app.Delivery.AddItem("BRG-6204", "", "5", "-2")
	require.Error(t, err, "negative price rejected")

	line, err := app.Delivery.AddItem("BRG-6204", "", "5", "")
	require.NoError(t, err)
	assert.True(t, line.Price.IsZero(), "empty price means zero")
	assert.Equal(t, "Łożysko 6204", line.Name, "known part name backfilled")
}

func TestDelivery_RemoveItemAndEmptyFinalize(t *testing.T) {
	app := apptesting.NewTestApp()
	_, err := app.Delivery.SetSupplier("ABC-Tools", false)
	require.NoError(t, err)

	line, err := app.Delivery.AddItem("BRG-6204", "", "5", "12.50")
	require.NoError(t, err)
	app.Delivery.RemoveItem(line.ID)
	assert.Empty(t, app.Delivery.Staging().Items)

	_, err = app.Delivery.FinalizeDelivery()
	require.Error(t, err, "empty staging cannot commit")
}

func TestDelivery_UnknownSupplierRejected(t *testing.T) {
	app := apptesting.NewTestApp()
	_, err := app.Delivery.SetSupplier("Nobody", false)
	require.Error(t, err)
}
