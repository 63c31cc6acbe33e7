package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apptesting "github.com/Michal-learning/magazyn/pkg/application/services/testing"
	"github.com/Michal-learning/magazyn/pkg/domain/entities"
)

func TestSaveDraft_EmptyBOMBlocked(t *testing.T) {
	app := apptesting.NewTestApp()

	require.NoError(t, app.Machine.StartDraft("MX-1", "Prasa"))
	err := app.Machine.SaveDraft()
	require.Error(t, err)

	_, published := app.Machines.Get("MX-1")
	assert.False(t, published, "empty-BOM draft never reaches the catalog")

	// The draft stays open; adding a line unblocks the save.
	require.NoError(t, app.Machine.DraftAddBOMItem("BRG-6204", 2))
	require.NoError(t, app.Machine.SaveDraft())
	_, published = app.Machines.Get("MX-1")
	assert.True(t, published)
}

func TestDraft_EditsInvisibleUntilSave(t *testing.T) {
	app := apptesting.NewTestApp()
	apptesting.MustAddMachine(app, "MX-1", "Prasa", map[string]entities.Quantity{"BRG-6204": 2})

	require.NoError(t, app.Machine.EditDraft("MX-1"))
	require.NoError(t, app.Machine.DraftAddBOMItem("SCR-M6-30", 8))

	live, _ := app.Machines.Get("MX-1")
	assert.Len(t, live.BOM, 1, "catalog unchanged while the draft is open")

	require.NoError(t, app.Machine.SaveDraft())
	live, _ = app.Machines.Get("MX-1")
	assert.Len(t, live.BOM, 2)
}

func TestDraft_DuplicateSKUIncrements(t *testing.T) {
	app := apptesting.NewTestApp()

	require.NoError(t, app.Machine.StartDraft("MX-1", "Prasa"))
	require.NoError(t, app.Machine.DraftAddBOMItem("BRG-6204", 2))
	require.NoError(t, app.Machine.DraftAddBOMItem("brg-6204", 3))

	draft := app.Machine.Draft()
	require.Len(t, draft.BOM, 1, "same key never produces a second line")
	assert.Equal(t, entities.Quantity(5), draft.BOM[0].Qty)

	require.NoError(t, app.Machine.DraftSetBOMQty("BRG-6204", 4))
	assert.Equal(t, entities.Quantity(4), app.Machine.Draft().BOM[0].Qty)
}

func TestDraft_UnknownPartRejected(t *testing.T) {
	app := apptesting.NewTestApp()
	require.NoError(t, app.Machine.StartDraft("MX-1", "Prasa"))

	err := app.Machine.DraftAddBOMItem("GHOST-1", 1)
	require.Error(t, err)
	assert.Empty(t, app.Machine.Draft().BOM)
}

func TestDraft_RemoveByIndexAndDiscard(t *testing.T) {
	app := apptesting.NewTestApp()
	require.NoError(t, app.Machine.StartDraft("MX-1", "Prasa"))
	require.NoError(t, app.Machine.DraftAddBOMItem("BRG-6204", 2))
	require.NoError(t, app.Machine.DraftAddBOMItem("SCR-M6-30", 8))

	require.NoError(t, app.Machine.DraftRemoveBOMItem(0))
	require.Len(t, app.Machine.Draft().BOM, 1)
	assert.Equal(t, "SCR-M6-30", app.Machine.Draft().BOM[0].SKU)

	require.Error(t, app.Machine.DraftRemoveBOMItem(5))

	app.Machine.DiscardDraft()
	assert.Nil(t, app.Machine.Draft())
	require.Error(t, app.Machine.SaveDraft(), "no draft open")
}

func TestStartDraft_CodeCollisionCaseInsensitive(t *testing.T) {
	app := apptesting.NewTestApp()
	apptesting.MustAddMachine(app, "MX-1", "Prasa", map[string]entities.Quantity{"BRG-6204": 2})

	err := app.Machine.StartDraft("mx-1", "Kopia")
	require.Error(t, err)
}

func TestDeleteMachine_KeepsStockLabels(t *testing.T) {
	app := apptesting.NewTestApp()
	apptesting.MustAddMachine(app, "MX-1", "Prasa", map[string]entities.Quantity{"BRG-6204": 1})
	_, err := app.Build.AddItem("MX-1", 2)
	require.NoError(t, err)
	_, err = app.Build.FinalizeFIFO()
	require.NoError(t, err)

	require.NoError(t, app.Machine.DeleteMachine("MX-1"))

	entry, ok := app.MachineStock.Get("MX-1")
	require.True(t, ok, "historical machine stock survives deletion")
	assert.Equal(t, entities.Quantity(2), entry.Qty)
	assert.Equal(t, "Prasa", entry.Name)
}
