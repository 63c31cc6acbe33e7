package memory

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Michal-learning/magazyn/pkg/domain/entities"
)

func lot(id int64, sku, supplier string, price string, qty entities.Quantity) entities.Lot {
	p, _ := decimal.NewFromString(price)
	return entities.Lot{ID: id, SKU: sku, Name: sku + " part", Supplier: supplier, UnitPrice: p, Qty: qty}
}

func TestLotRepository_BySKU_FIFOOrder(t *testing.T) {
	repo := NewLotRepository()
	repo.Append(lot(1, "BRG-6204", "ABC-Tools", "4.00", 5))
	repo.Append(lot(2, "SCR-M6-30", "ABC-Tools", "0.20", 100))
	repo.Append(lot(3, "BRG-6204", "Elektronix", "4.50", 5))
	repo.Append(lot(4, "BRG-6204", "ABC-Tools", "4.00", 0))

	lots := repo.BySKU(entities.KeyForSKU("brg-6204"))
	if len(lots) != 2 {
		t.Fatalf("Expected 2 non-empty lots, got %d", len(lots))
	}
	if lots[0].ID != 1 || lots[1].ID != 3 {
		t.Errorf("Expected lot IDs [1 3], got [%d %d]", lots[0].ID, lots[1].ID)
	}
}

func TestLotRepository_FindMergeTarget(t *testing.T) {
	repo := NewLotRepository()
	repo.Append(lot(1, "BRG-6204", "ABC-Tools", "4.00", 10))

	// Same key, supplier differing only in case, same price: merges.
	target, ok := repo.FindMergeTarget(entities.KeyForSKU("  brg-6204 "), "abc-tools", decimal.RequireFromString("4.00"))
	if !ok {
		t.Fatal("Expected a merge target, got none")
	}
	if target.ID != 1 {
		t.Errorf("Expected merge target 1, got %d", target.ID)
	}

	// Different price: no merge.
	if _, ok := repo.FindMergeTarget(entities.KeyForSKU("BRG-6204"), "ABC-Tools", decimal.RequireFromString("4.01")); ok {
		t.Error("Expected no merge target for a different unit price")
	}

	// Different supplier: no merge.
	if _, ok := repo.FindMergeTarget(entities.KeyForSKU("BRG-6204"), "Elektronix", decimal.RequireFromString("4.00")); ok {
		t.Error("Expected no merge target for a different supplier")
	}
}

func TestLotRepository_Consume_PrunesEmptied(t *testing.T) {
	repo := NewLotRepository()
	repo.Append(lot(1, "BRG-6204", "ABC-Tools", "4.00", 5))
	repo.Append(lot(2, "BRG-6204", "ABC-Tools", "4.50", 5))
	repo.Append(lot(3, "BRG-6204", "ABC-Tools", "5.00", 5))

	repo.Consume(map[int64]entities.Quantity{1: 5, 2: 2})

	key := entities.KeyForSKU("BRG-6204")
	if got := repo.TotalQty(key); got != 8 {
		t.Errorf("Expected total quantity 8 after consumption, got %d", got)
	}

	lots := repo.BySKU(key)
	if len(lots) != 2 {
		t.Fatalf("Expected emptied lot to be pruned, got %d lots", len(lots))
	}
	if lots[0].ID != 2 || lots[0].Qty != 3 {
		t.Errorf("Expected lot 2 with qty 3 first, got lot %d qty %d", lots[0].ID, lots[0].Qty)
	}
	if lots[1].ID != 3 || lots[1].Qty != 5 {
		t.Errorf("Expected lot 3 with qty 5 second, got lot %d qty %d", lots[1].ID, lots[1].Qty)
	}

	if _, ok := repo.Get(1); ok {
		t.Error("Expected lot 1 to be gone from the ledger")
	}
}

func TestLotRepository_Restore_SortsByID(t *testing.T) {
	repo := NewLotRepository()
	repo.Restore([]entities.Lot{
		lot(7, "BRG-6204", "ABC-Tools", "4.00", 1),
		lot(2, "BRG-6204", "ABC-Tools", "4.50", 1),
	})

	lots := repo.All()
	if len(lots) != 2 || lots[0].ID != 2 || lots[1].ID != 7 {
		t.Errorf("Expected restored lots sorted by ID, got %+v", lots)
	}
}
