package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Michal-learning/magazyn/pkg/application/dto"
	apptesting "github.com/Michal-learning/magazyn/pkg/application/services/testing"
	"github.com/Michal-learning/magazyn/pkg/domain/entities"
)

func TestUpsertPart_KeyIsCaseInsensitive(t *testing.T) {
	app := apptesting.NewEmptyApp()

	_, err := app.Catalog.UpsertPart("  BRG-6204 ", "Łożysko 6204")
	require.NoError(t, err)
	_, err = app.Catalog.UpsertPart("brg-6204", "Łożysko 6204 v2")
	require.NoError(t, err)

	assert.Equal(t, 1, app.Parts.Len(), "same key upserts, never duplicates")
	lookup := app.Catalog.Lookup("BRG-6204")
	require.True(t, lookup.Known())
	assert.Equal(t, "Łożysko 6204 v2", lookup.DisplayName())
}

func TestUpsertPart_RejectsBlankFields(t *testing.T) {
	app := apptesting.NewEmptyApp()

	_, err := app.Catalog.UpsertPart("", "name")
	require.Error(t, err)
	_, err = app.Catalog.UpsertPart("SKU-1", "   ")
	require.Error(t, err)
	assert.Equal(t, 0, app.Parts.Len())
}

func TestLookup_MissFallsBackToUppercase(t *testing.T) {
	app := apptesting.NewEmptyApp()

	lookup := app.Catalog.Lookup("  unknown-sku ")
	assert.False(t, lookup.Known())
	assert.Equal(t, "UNKNOWN-SKU", lookup.DisplaySKU())
	assert.Equal(t, "UNKNOWN-SKU", lookup.DisplayName())
}

func TestDeletePart_GuardedByReferences(t *testing.T) {
	app := apptesting.NewTestApp()
	apptesting.MustAddMachine(app, "MX-1", "Prasa", map[string]entities.Quantity{"BRG-6204": 2})

	err := app.Catalog.DeletePart("BRG-6204")
	var refErr *entities.ReferentialIntegrityError
	require.ErrorAs(t, err, &refErr)
	assert.Contains(t, refErr.References, "supplier ABC-Tools")
	assert.Contains(t, refErr.References, "machine MX-1")

	_, stillThere := app.Parts.Get(entities.KeyForSKU("BRG-6204"))
	assert.True(t, stillThere)

	// Clear both references; deletion goes through.
	require.NoError(t, app.Supplier.RemovePrice("ABC-Tools", "BRG-6204"))
	require.NoError(t, app.Machine.DeleteMachine("MX-1"))
	require.NoError(t, app.Catalog.DeletePart("BRG-6204"))

	_, gone := app.Parts.Get(entities.KeyForSKU("BRG-6204"))
	assert.False(t, gone)
}

func TestEditPart_ReconcilesSupplierAssignments(t *testing.T) {
	app := apptesting.NewTestApp()
	key := entities.KeyForSKU("BRG-6204")

	// Move the bearing from ABC-Tools to Elektronix with a new price.
	err := app.Catalog.EditPart("BRG-6204", "Łożysko kulkowe 6204", []dto.SupplierAssignment{
		{Supplier: "Elektronix", Price: apptesting.MustPrice("13.00")},
	})
	require.NoError(t, err)

	lookup := app.Catalog.Lookup("BRG-6204")
	require.True(t, lookup.Known())
	assert.Equal(t, "Łożysko kulkowe 6204", lookup.DisplayName())

	abc, _ := app.Suppliers.Get("ABC-Tools")
	assert.False(t, abc.HasPrice(key), "absent assignment purges the listing")

	ele, _ := app.Suppliers.Get("Elektronix")
	price, ok := ele.PriceFor(key)
	require.True(t, ok)
	assert.True(t, price.Equal(apptesting.MustPrice("13.00")))
}

func TestEditPart_UnknownSupplierLeavesStateUntouched(t *testing.T) {
	app := apptesting.NewTestApp()
	key := entities.KeyForSKU("BRG-6204")

	err := app.Catalog.EditPart("BRG-6204", "Nowa nazwa", []dto.SupplierAssignment{
		{Supplier: "Nobody", Price: apptesting.MustPrice("1.00")},
	})
	require.Error(t, err)

	lookup := app.Catalog.Lookup("BRG-6204")
	assert.Equal(t, "Łożysko 6204", lookup.DisplayName(), "rename must not apply")
	abc, _ := app.Suppliers.Get("ABC-Tools")
	assert.True(t, abc.HasPrice(key))
}
