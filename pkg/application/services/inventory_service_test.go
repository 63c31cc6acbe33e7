package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apptesting "github.com/Michal-learning/magazyn/pkg/application/services/testing"
	"github.com/Michal-learning/magazyn/pkg/domain/entities"
)

func TestComputePartsSummary_AggregatesAndSorts(t *testing.T) {
	app := apptesting.NewTestApp()

	rows := app.Inventory.ComputePartsSummary("")
	require.Len(t, rows, 4, "fixture has four stocked parts")

	// Sorted by quantity ascending; the two bearing lots fold into one row.
	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, rows[i-1].Qty, rows[i].Qty)
	}

	found := false
	for _, row := range rows {
		if row.SKU == "BRG-6204" {
			assert.Equal(t, entities.Quantity(20), row.Qty, "10 + 10 across two lots")
			assert.True(t, row.Value.Equal(apptesting.MustPrice("275.00")), "10*12.50 + 10*15.00")
			found = true
		}
	}
	require.True(t, found, "bearing row present")
}

func TestComputePartsSummary_TiesBreakBySKU(t *testing.T) {
	app := apptesting.NewEmptyApp()
	_, err := app.Supplier.EnsureSupplier("ABC-Tools")
	require.NoError(t, err)
	apptesting.MustDeliver(app, "ABC-Tools", "BBB-1", "b", "5", "1.00")
	apptesting.MustDeliver(app, "ABC-Tools", "AAA-1", "a", "5", "1.00")

	rows := app.Inventory.ComputePartsSummary("")
	require.Len(t, rows, 2)
	assert.Equal(t, "AAA-1", rows[0].SKU)
	assert.Equal(t, "BBB-1", rows[1].SKU)
}

func TestWarehouseTotalValue(t *testing.T) {
	app := apptesting.NewTestApp()

	// 10*12.50 + 10*15.00 + 400*0.35 + 10*14.99 + 10*19.90
	want := apptesting.MustPrice("763.90")
	assert.True(t, app.Inventory.WarehouseTotalValue().Equal(want),
		"got %s", app.Inventory.WarehouseTotalValue())
}

func TestLots_FilterBySubstring(t *testing.T) {
	app := apptesting.NewTestApp()

	assert.Len(t, app.Inventory.Lots(""), 5)
	assert.Len(t, app.Inventory.Lots("brg"), 2, "SKU match, case-insensitive")
	assert.Len(t, app.Inventory.Lots("elektronix"), 1, "supplier match")
	assert.Len(t, app.Inventory.Lots("łożysko"), 2, "name match")
	assert.Empty(t, app.Inventory.Lots("zzz"))
}

func TestMachineStock_Filter(t *testing.T) {
	app := apptesting.NewTestApp()
	apptesting.MustAddMachine(app, "MX-1", "Prasa", map[string]entities.Quantity{"BRG-6204": 1})
	_, err := app.Build.AddItem("MX-1", 1)
	require.NoError(t, err)
	_, err = app.Build.FinalizeFIFO()
	require.NoError(t, err)

	assert.Len(t, app.Inventory.MachineStock("prasa"), 1)
	assert.Empty(t, app.Inventory.MachineStock("tokarka"))
}

func TestThresholds_ClampBothDirections(t *testing.T) {
	app := apptesting.NewEmptyApp()

	// warn=100, danger=50 to start. Pushing danger above warn clamps down.
	got := app.Inventory.SetDangerThreshold(150)
	assert.Equal(t, entities.Quantity(100), got.Danger)

	// Reset, then pull warn below danger: clamps up to danger.
	app.Inventory.RestoreThresholds(entities.DefaultThresholds())
	got = app.Inventory.SetWarnThreshold(20)
	assert.Equal(t, entities.Quantity(50), got.Warn)

	got = app.Inventory.SetWarnThreshold(-5)
	assert.Equal(t, entities.Quantity(50), got.Warn, "negative clamps to zero then up to danger")
}

func TestClassify_InclusiveBoundaries(t *testing.T) {
	app := apptesting.NewEmptyApp()
	app.Inventory.RestoreThresholds(entities.Thresholds{Warn: 100, Danger: 50})

	assert.Equal(t, entities.StockDanger, app.Inventory.Classify(50))
	assert.Equal(t, entities.StockWarn, app.Inventory.Classify(51))
	assert.Equal(t, entities.StockWarn, app.Inventory.Classify(100))
	assert.Equal(t, entities.StockNormal, app.Inventory.Classify(101))
}

func TestLowStockTop_ReturnsScarcestFirst(t *testing.T) {
	app := apptesting.NewTestApp()
	app.Inventory.RestoreThresholds(entities.Thresholds{Warn: 15, Danger: 5})

	low := app.Inventory.LowStockTop(5)
	// Four stocked parts: 20, 10, 10, 400 -> the two tens are at or below warn.
	require.Len(t, low, 2)
	for _, e := range low {
		assert.LessOrEqual(t, e.Qty, entities.Quantity(15))
		assert.NotEqual(t, entities.StockNormal, e.Level)
	}
}

func TestRecentActions(t *testing.T) {
	app := apptesting.NewTestApp()
	apptesting.MustDeliver(app, "ABC-Tools", "BRG-6204", "", "1", "12.50")
	apptesting.MustDeliver(app, "ABC-Tools", "BRG-6204", "", "1", "12.50")

	recent := app.Inventory.RecentActions(1)
	require.Len(t, recent, 1)
	assert.Equal(t, entities.HistoryDelivery, recent[0].Type)
}
