package persistence

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Michal-learning/magazyn/pkg/domain/entities"
)

// Database rows mirror the domain entities one to one. Nested collections
// are stored as JSON columns; decimals are stored through their SQL
// valuer so prices survive round trips exactly.

type partRecord struct {
	SKU  string `gorm:"primaryKey"`
	Name string
}

func (partRecord) TableName() string { return "parts" }

type supplierRecord struct {
	Name   string                              `gorm:"primaryKey"`
	Prices map[entities.SKUKey]decimal.Decimal `gorm:"serializer:json"`
}

func (supplierRecord) TableName() string { return "suppliers" }

type machineRecord struct {
	Code string `gorm:"primaryKey"`
	Name string
	BOM  []entities.BOMLine `gorm:"serializer:json"`
}

func (machineRecord) TableName() string { return "machines" }

type lotRecord struct {
	ID        int64 `gorm:"primaryKey;autoIncrement:false"`
	SKU       string
	Name      string
	Supplier  string
	UnitPrice decimal.Decimal `gorm:"type:text"`
	Qty       int64
}

func (lotRecord) TableName() string { return "lots" }

type machineStockRecord struct {
	Code string `gorm:"primaryKey"`
	Name string
	Qty  int64
}

func (machineStockRecord) TableName() string { return "machine_stock" }

type historyRecord struct {
	ID        int64 `gorm:"primaryKey;autoIncrement:false"`
	Type      string
	Timestamp time.Time
	DateISO   string
	Supplier  string
	Parts     []entities.HistoryPartItem    `gorm:"serializer:json"`
	Machines  []entities.HistoryMachineItem `gorm:"serializer:json"`
}

func (historyRecord) TableName() string { return "history" }

// metaRecord is a single-row table carrying everything that is not a
// collection: staging buffers, thresholds and the ID allocator floor.
type metaRecord struct {
	ID       int64 `gorm:"primaryKey"`
	LastID   int64
	WarnAt   int64
	DangerAt int64
	Delivery entities.DeliveryStaging `gorm:"serializer:json"`
	Build    entities.BuildStaging    `gorm:"serializer:json"`
}

func (metaRecord) TableName() string { return "meta" }
