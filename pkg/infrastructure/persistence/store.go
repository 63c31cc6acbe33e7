package persistence

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Michal-learning/magazyn/pkg/domain/entities"
	"github.com/Michal-learning/magazyn/pkg/domain/repositories"
)

// Store persists the full ledger state to a SQLite database. Every committing
// mutation writes a complete snapshot in one transaction, replacing the
// previous one; loading reads it all back at startup.
type Store struct {
	db *gorm.DB
}

// Verify interface compliance
var _ repositories.StateStore = (*Store)(nil)

// Open opens (or creates) the database at path and migrates the schema.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening state database %s: %w", path, err)
	}
	if err := db.AutoMigrate(
		&partRecord{},
		&supplierRecord{},
		&machineRecord{},
		&lotRecord{},
		&machineStockRecord{},
		&historyRecord{},
		&metaRecord{},
	); err != nil {
		return nil, fmt.Errorf("migrating state schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Load reads the last saved snapshot. A database that has never been saved
// to returns (nil, nil).
func (s *Store) Load() (*repositories.StateSnapshot, error) {
	var meta metaRecord
	if err := s.db.First(&meta, "id = ?", 1).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("loading state: %w", err)
	}

	snap := &repositories.StateSnapshot{
		Delivery: meta.Delivery,
		Build:    meta.Build,
		Thresholds: entities.Thresholds{
			Warn:   entities.Quantity(meta.WarnAt),
			Danger: entities.Quantity(meta.DangerAt),
		},
		LastID: meta.LastID,
	}

	var parts []partRecord
	if err := s.db.Find(&parts).Error; err != nil {
		return nil, fmt.Errorf("loading parts: %w", err)
	}
	for _, p := range parts {
		snap.Parts = append(snap.Parts, entities.Part{SKU: p.SKU, Name: p.Name})
	}

	var suppliers []supplierRecord
	if err := s.db.Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("loading suppliers: %w", err)
	}
	for _, sr := range suppliers {
		snap.Suppliers = append(snap.Suppliers, entities.Supplier{Name: sr.Name, Prices: sr.Prices})
	}

	var machines []machineRecord
	if err := s.db.Find(&machines).Error; err != nil {
		return nil, fmt.Errorf("loading machines: %w", err)
	}
	for _, m := range machines {
		snap.Machines = append(snap.Machines, entities.Machine{Code: m.Code, Name: m.Name, BOM: m.BOM})
	}

	var lots []lotRecord
	if err := s.db.Order("id asc").Find(&lots).Error; err != nil {
		return nil, fmt.Errorf("loading lots: %w", err)
	}
	for _, l := range lots {
		snap.Lots = append(snap.Lots, entities.Lot{
			ID:        l.ID,
			SKU:       l.SKU,
			Name:      l.Name,
			Supplier:  l.Supplier,
			UnitPrice: l.UnitPrice,
			Qty:       entities.Quantity(l.Qty),
		})
	}

	var stock []machineStockRecord
	if err := s.db.Find(&stock).Error; err != nil {
		return nil, fmt.Errorf("loading machine stock: %w", err)
	}
	for _, e := range stock {
		snap.MachineStock = append(snap.MachineStock, entities.MachineStockEntry{
			Code: e.Code,
			Name: e.Name,
			Qty:  entities.Quantity(e.Qty),
		})
	}

	var history []historyRecord
	if err := s.db.Order("id asc").Find(&history).Error; err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	for _, h := range history {
		snap.History = append(snap.History, entities.HistoryEvent{
			ID:        h.ID,
			Type:      entities.HistoryEventType(h.Type),
			Timestamp: h.Timestamp,
			DateISO:   h.DateISO,
			Supplier:  h.Supplier,
			Parts:     h.Parts,
			Machines:  h.Machines,
		})
	}

	return snap, nil
}

// Save writes a complete snapshot, replacing whatever was stored before.
// The whole write happens in one transaction so a failed save leaves the
// previous snapshot intact.
func (s *Store) Save(snap *repositories.StateSnapshot) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&partRecord{}, &supplierRecord{}, &machineRecord{},
			&lotRecord{}, &machineStockRecord{}, &historyRecord{}, &metaRecord{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("clearing previous snapshot: %w", err)
			}
		}

		for _, p := range snap.Parts {
			if err := tx.Create(&partRecord{SKU: p.SKU, Name: p.Name}).Error; err != nil {
				return fmt.Errorf("saving part %s: %w", p.SKU, err)
			}
		}
		for _, sup := range snap.Suppliers {
			if err := tx.Create(&supplierRecord{Name: sup.Name, Prices: sup.Prices}).Error; err != nil {
				return fmt.Errorf("saving supplier %s: %w", sup.Name, err)
			}
		}
		for _, m := range snap.Machines {
			if err := tx.Create(&machineRecord{Code: m.Code, Name: m.Name, BOM: m.BOM}).Error; err != nil {
				return fmt.Errorf("saving machine %s: %w", m.Code, err)
			}
		}
		for _, l := range snap.Lots {
			rec := lotRecord{
				ID:        l.ID,
				SKU:       l.SKU,
				Name:      l.Name,
				Supplier:  l.Supplier,
				UnitPrice: l.UnitPrice,
				Qty:       int64(l.Qty),
			}
			if err := tx.Create(&rec).Error; err != nil {
				return fmt.Errorf("saving lot %d: %w", l.ID, err)
			}
		}
		for _, e := range snap.MachineStock {
			rec := machineStockRecord{Code: e.Code, Name: e.Name, Qty: int64(e.Qty)}
			if err := tx.Create(&rec).Error; err != nil {
				return fmt.Errorf("saving machine stock %s: %w", e.Code, err)
			}
		}
		for _, h := range snap.History {
			rec := historyRecord{
				ID:        h.ID,
				Type:      string(h.Type),
				Timestamp: h.Timestamp,
				DateISO:   h.DateISO,
				Supplier:  h.Supplier,
				Parts:     h.Parts,
				Machines:  h.Machines,
			}
			if err := tx.Create(&rec).Error; err != nil {
				return fmt.Errorf("saving history event %d: %w", h.ID, err)
			}
		}

		meta := metaRecord{
			ID:       1,
			LastID:   snap.LastID,
			WarnAt:   int64(snap.Thresholds.Warn),
			DangerAt: int64(snap.Thresholds.Danger),
			Delivery: snap.Delivery,
			Build:    snap.Build,
		}
		if err := tx.Create(&meta).Error; err != nil {
			return fmt.Errorf("saving meta: %w", err)
		}
		return nil
	})
}
