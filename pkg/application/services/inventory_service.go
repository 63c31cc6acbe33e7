package services

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Michal-learning/magazyn/pkg/application/dto"
	"github.com/Michal-learning/magazyn/pkg/domain/entities"
	"github.com/Michal-learning/magazyn/pkg/domain/repositories"
)

// InventoryService provides the read side of the ledger: aggregated
// summaries, filtered views, stock-level classification and the low-stock
// thresholds themselves.
type InventoryService struct {
	lots         repositories.LotRepository
	machineStock repositories.MachineStockRepository
	history      repositories.HistoryRepository
	checkpoint   Checkpointer

	thresholds entities.Thresholds
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	lots repositories.LotRepository,
	machineStock repositories.MachineStockRepository,
	history repositories.HistoryRepository,
	checkpoint Checkpointer,
) *InventoryService {
	return &InventoryService{
		lots:         lots,
		machineStock: machineStock,
		history:      history,
		checkpoint:   checkpoint,
		thresholds:   entities.DefaultThresholds(),
	}
}

// ComputePartsSummary folds the lot ledger into one row per part: summed
// quantity, summed value, the most recently seen display name, and the
// stock level. Rows sort by quantity ascending, ties by SKU, so the
// scarcest parts surface first.
func (s *InventoryService) ComputePartsSummary(filter string) []dto.PartsSummaryRow {
	type acc struct {
		sku   string
		name  string
		qty   entities.Quantity
		value decimal.Decimal
	}
	byKey := make(map[entities.SKUKey]*acc)
	for _, lot := range s.lots.All() {
		if lot.Qty <= 0 {
			continue
		}
		a, ok := byKey[lot.Key()]
		if !ok {
			a = &acc{value: decimal.Zero}
			byKey[lot.Key()] = a
		}
		a.sku = lot.SKU
		a.name = lot.Name
		a.qty += lot.Qty
		a.value = a.value.Add(lot.Value())
	}

	rows := make([]dto.PartsSummaryRow, 0, len(byKey))
	for _, a := range byKey {
		if !matchesFilter(filter, a.sku, a.name) {
			continue
		}
		rows = append(rows, dto.PartsSummaryRow{
			SKU:   a.sku,
			Name:  a.name,
			Qty:   a.qty,
			Value: a.value,
			Level: s.thresholds.Classify(a.qty),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Qty != rows[j].Qty {
			return rows[i].Qty < rows[j].Qty
		}
		return rows[i].SKU < rows[j].SKU
	})
	return rows
}

// TotalQtyBySKU returns the on-hand quantity of one part across all lots.
func (s *InventoryService) TotalQtyBySKU(sku string) entities.Quantity {
	return s.lots.TotalQty(entities.KeyForSKU(sku))
}

// WarehouseTotalValue sums qty*price over the whole ledger.
func (s *InventoryService) WarehouseTotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, lot := range s.lots.All() {
		if lot.Qty > 0 {
			total = total.Add(lot.Value())
		}
	}
	return total
}

// Lots returns the ledger filtered by a SKU/name/supplier substring,
// oldest first.
func (s *InventoryService) Lots(filter string) []entities.Lot {
	var out []entities.Lot
	for _, lot := range s.lots.All() {
		if lot.Qty <= 0 {
			continue
		}
		if !matchesFilter(filter, lot.SKU, lot.Name, lot.Supplier) {
			continue
		}
		out = append(out, lot)
	}
	return out
}

// MachineStock returns finished-machine counts filtered by a code/name
// substring.
func (s *InventoryService) MachineStock(filter string) []entities.MachineStockEntry {
	var out []entities.MachineStockEntry
	for _, e := range s.machineStock.All() {
		if !matchesFilter(filter, e.Code, e.Name) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Classify maps a total quantity to its stock level under the current
// thresholds.
func (s *InventoryService) Classify(q entities.Quantity) entities.StockLevel {
	return s.thresholds.Classify(q)
}

// Thresholds returns the current low-stock boundaries.
func (s *InventoryService) Thresholds() entities.Thresholds {
	return s.thresholds
}

// SetWarnThreshold updates the warn boundary; out-of-range values clamp
// rather than error.
func (s *InventoryService) SetWarnThreshold(v entities.Quantity) entities.Thresholds {
	s.thresholds.SetWarn(v)
	s.checkpoint.Checkpoint()
	return s.thresholds
}

// SetDangerThreshold updates the danger boundary; out-of-range values clamp
// rather than error.
func (s *InventoryService) SetDangerThreshold(v entities.Quantity) entities.Thresholds {
	s.thresholds.SetDanger(v)
	s.checkpoint.Checkpoint()
	return s.thresholds
}

// LowStockTop returns the n scarcest parts at or below the warn boundary.
func (s *InventoryService) LowStockTop(n int) []dto.LowStockEntry {
	var out []dto.LowStockEntry
	for _, row := range s.ComputePartsSummary("") {
		if row.Level == entities.StockNormal {
			continue
		}
		out = append(out, dto.LowStockEntry{
			SKU:   row.SKU,
			Name:  row.Name,
			Qty:   row.Qty,
			Level: row.Level,
		})
		if len(out) == n {
			break
		}
	}
	return out
}

// RecentActions returns the n most recent history events, newest first.
func (s *InventoryService) RecentActions(n int) []entities.HistoryEvent {
	return s.history.Recent(n)
}

// ThresholdsSnapshot exposes the thresholds for persistence.
func (s *InventoryService) ThresholdsSnapshot() entities.Thresholds {
	return s.thresholds
}

// RestoreThresholds replaces the thresholds from a snapshot.
func (s *InventoryService) RestoreThresholds(t entities.Thresholds) {
	s.thresholds = t
}

// matchesFilter reports whether any of the fields contains the filter as a
// case-insensitive substring. An empty filter matches everything.
func matchesFilter(filter string, fields ...string) bool {
	f := strings.ToLower(strings.TrimSpace(filter))
	if f == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), f) {
			return true
		}
	}
	return false
}
