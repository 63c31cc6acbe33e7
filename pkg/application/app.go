package application

import (
	zlog "github.com/rs/zerolog/log"

	"github.com/Michal-learning/magazyn/pkg/application/services"
	"github.com/Michal-learning/magazyn/pkg/domain/entities"
	"github.com/Michal-learning/magazyn/pkg/domain/repositories"
	domainservices "github.com/Michal-learning/magazyn/pkg/domain/services"
	"github.com/Michal-learning/magazyn/pkg/infrastructure/repositories/memory"
)

// App wires the repositories and services of one ledger instance together.
// All state lives in memory; when a state store is attached, every
// committing mutation mirrors a full snapshot into it.
type App struct {
	Parts        repositories.PartRepository
	Suppliers    repositories.SupplierRepository
	Machines     repositories.MachineRepository
	Lots         repositories.LotRepository
	MachineStock repositories.MachineStockRepository
	History      repositories.HistoryRepository
	Seq          *domainservices.Sequence

	Catalog   *services.CatalogService
	Supplier  *services.SupplierService
	Machine   *services.MachineService
	Delivery  *services.DeliveryService
	Build     *services.BuildService
	Inventory *services.InventoryService

	store repositories.StateStore
}

// New creates an app backed by in-memory repositories. store may be nil for
// a purely ephemeral instance.
func New(store repositories.StateStore) *App {
	app := &App{
		Parts:        memory.NewPartRepository(),
		Suppliers:    memory.NewSupplierRepository(),
		Machines:     memory.NewMachineRepository(),
		Lots:         memory.NewLotRepository(),
		MachineStock: memory.NewMachineStockRepository(),
		History:      memory.NewHistoryRepository(),
		Seq:          domainservices.NewSequence(),
		store:        store,
	}

	app.Catalog = services.NewCatalogService(app.Parts, app.Suppliers, app.Machines, app)
	app.Supplier = services.NewSupplierService(app.Suppliers, app.Parts, app)
	app.Machine = services.NewMachineService(app.Machines, app.Parts, app)
	app.Delivery = services.NewDeliveryService(app.Parts, app.Suppliers, app.Lots, app.History, app.Seq, app)
	app.Build = services.NewBuildService(app.Machines, app.Lots, app.MachineStock, app.History, app.Seq, app)
	app.Inventory = services.NewInventoryService(app.Lots, app.MachineStock, app.History, app)

	return app
}

// Verify interface compliance
var _ services.Checkpointer = (*App)(nil)

// Load restores the last saved snapshot from the attached store, if both
// exist. It reports whether state was restored.
func (a *App) Load() (bool, error) {
	if a.store == nil {
		return false, nil
	}
	snap, err := a.store.Load()
	if err != nil {
		return false, err
	}
	if snap == nil {
		return false, nil
	}

	a.Parts.Restore(snap.Parts)
	a.Suppliers.Restore(snap.Suppliers)
	a.Machines.Restore(snap.Machines)
	a.Lots.Restore(snap.Lots)
	a.MachineStock.Restore(snap.MachineStock)
	a.History.Restore(snap.History)
	a.Delivery.RestoreStaging(snap.Delivery)
	a.Build.RestoreStaging(snap.Build)
	a.Inventory.RestoreThresholds(snap.Thresholds)
	a.Seq.EnsureFloor(snap.LastID)

	zlog.Info().
		Int("parts", a.Parts.Len()).
		Int("lots", len(snap.Lots)).
		Int("history", len(snap.History)).
		Msg("state restored")
	return true, nil
}

// Checkpoint mirrors the current state into the attached store. Failures
// are logged and swallowed: the in-memory commit already happened, and the
// next checkpoint will retry the full snapshot anyway.
func (a *App) Checkpoint() {
	if a.store == nil {
		return
	}
	if err := a.store.Save(a.snapshot()); err != nil {
		zlog.Error().Err(err).Msg("state checkpoint failed")
	}
}

func (a *App) snapshot() *repositories.StateSnapshot {
	return &repositories.StateSnapshot{
		Parts:        a.Parts.Snapshot(),
		Suppliers:    a.Suppliers.Snapshot(),
		Machines:     a.Machines.Snapshot(),
		Lots:         a.Lots.Snapshot(),
		MachineStock: a.MachineStock.Snapshot(),
		History:      a.History.Snapshot(),
		Delivery:     a.Delivery.StagingSnapshot(),
		Build:        a.Build.StagingSnapshot(),
		Thresholds:   a.Inventory.ThresholdsSnapshot(),
		LastID:       a.Seq.Last(),
	}
}

// SetInitialThresholds applies configured boundaries to a fresh instance.
// Persisted thresholds always win over configuration.
func (a *App) SetInitialThresholds(warn, danger entities.Quantity) {
	t := entities.Thresholds{Warn: warn, Danger: danger}
	if t.Danger > t.Warn {
		t.Danger = t.Warn
	}
	a.Inventory.RestoreThresholds(t)
}
