package services

import (
	"sort"
	"sync/atomic"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/Michal-learning/magazyn/pkg/application/dto"
	"github.com/Michal-learning/magazyn/pkg/domain/entities"
	"github.com/Michal-learning/magazyn/pkg/domain/repositories"
	domainservices "github.com/Michal-learning/magazyn/pkg/domain/services"
)

// BuildService stages machine build requests and commits them by consuming
// part stock from the lot ledger, either oldest lots first or along an
// operator-chosen allocation. Requirements, availability and the full
// consumption plan are settled before anything mutates; a failed commit
// leaves every lot untouched.
type BuildService struct {
	machines     repositories.MachineRepository
	lots         repositories.LotRepository
	machineStock repositories.MachineStockRepository
	history      repositories.HistoryRepository
	seq          *domainservices.Sequence
	checkpoint   Checkpointer

	staging    entities.BuildStaging
	finalizing atomic.Bool
}

// NewBuildService creates a new build service
func NewBuildService(
	machines repositories.MachineRepository,
	lots repositories.LotRepository,
	machineStock repositories.MachineStockRepository,
	history repositories.HistoryRepository,
	seq *domainservices.Sequence,
	checkpoint Checkpointer,
) *BuildService {
	return &BuildService{
		machines:     machines,
		lots:         lots,
		machineStock: machineStock,
		history:      history,
		seq:          seq,
		checkpoint:   checkpoint,
	}
}

// SetDate sets the build date (ISO yyyy-mm-dd) recorded on commit.
func (s *BuildService) SetDate(iso string) {
	s.staging.DateISO = iso
}

// AddItem stages a build request for an existing machine.
func (s *BuildService) AddItem(machineCode string, qty entities.Quantity) (*entities.BuildLine, error) {
	if _, ok := s.machines.Get(machineCode); !ok {
		return nil, entities.Validationf("unknown machine %q", machineCode)
	}
	if qty < 1 {
		return nil, entities.Validationf("build quantity must be at least 1, got %d", qty)
	}
	line := entities.BuildLine{ID: s.seq.Next(), MachineCode: machineCode, Qty: qty}
	s.staging.Items = append(s.staging.Items, line)
	return &line, nil
}

// RemoveItem drops a staged line by ID.
func (s *BuildService) RemoveItem(id int64) {
	s.staging.Remove(id)
}

// Staging returns the current staging buffer.
func (s *BuildService) Staging() entities.BuildStaging {
	return s.staging
}

// CalculateRequirements folds every staged line's BOM into one total
// requirement per part: sum of bomQty * buildQty. The fold is commutative,
// so staging order never changes the result.
func (s *BuildService) CalculateRequirements() (map[entities.SKUKey]entities.Quantity, error) {
	req := make(map[entities.SKUKey]entities.Quantity)
	for _, line := range s.staging.Items {
		m, ok := s.machines.Get(line.MachineCode)
		if !ok {
			return nil, entities.Validationf("staged machine %q no longer exists", line.MachineCode)
		}
		for _, b := range m.BOM {
			req[b.Key()] += b.Qty * line.Qty
		}
	}
	return req, nil
}

// CheckAvailability compares requirements against total on-hand quantities
// and reports every shortage, not just the first.
func (s *BuildService) CheckAvailability(req map[entities.SKUKey]entities.Quantity) []entities.ShortageLine {
	var shortages []entities.ShortageLine
	for key, needed := range req {
		has := s.lots.TotalQty(key)
		if has < needed {
			shortages = append(shortages, entities.ShortageLine{
				SKU:    s.displaySKU(key),
				Key:    key,
				Needed: needed,
				Has:    has,
			})
		}
	}
	sort.Slice(shortages, func(i, j int) bool { return shortages[i].SKU < shortages[j].SKU })
	return shortages
}

// FinalizeFIFO commits the staged builds consuming stock oldest lot first.
// The full per-lot plan is computed and balanced before any decrement.
func (s *BuildService) FinalizeFIFO() (*dto.BuildReceipt, error) {
	if !s.finalizing.CompareAndSwap(false, true) {
		return nil, entities.Validationf("a build commit is already in progress")
	}
	defer s.finalizing.Store(false)

	req, err := s.prepare()
	if err != nil {
		return nil, err
	}

	plan := make(map[int64]entities.Quantity)
	for key, needed := range req {
		remaining := needed
		for _, lot := range s.lots.BySKU(key) {
			if remaining == 0 {
				break
			}
			take := lot.Qty
			if take > remaining {
				take = remaining
			}
			plan[lot.ID] = take
			remaining -= take
		}
		if remaining > 0 {
			// Availability was verified, so the plan must balance.
			return nil, entities.Validationf("internal: plan short on %s by %d", s.displaySKU(key), remaining)
		}
	}

	return s.commit(plan, "fifo")
}

// FinalizeManual commits the staged builds along an operator-chosen
// allocation. Each per-lot entry is clamped to the lot's quantity, then
// every required part's allocated sum must equal the requirement exactly;
// both under- and over-allocation reject the whole commit.
func (s *BuildService) FinalizeManual(alloc dto.ManualAllocation) (*dto.BuildReceipt, error) {
	if !s.finalizing.CompareAndSwap(false, true) {
		return nil, entities.Validationf("a build commit is already in progress")
	}
	defer s.finalizing.Store(false)

	req, err := s.prepare()
	if err != nil {
		return nil, err
	}

	plan := make(map[int64]entities.Quantity)
	chosen := make(map[entities.SKUKey]entities.Quantity)
	for key, lotAlloc := range alloc {
		for id, qty := range lotAlloc {
			if qty <= 0 {
				continue
			}
			lot, ok := s.lots.Get(id)
			if !ok || lot.Key() != key {
				continue
			}
			if qty > lot.Qty {
				qty = lot.Qty
			}
			plan[id] = qty
			chosen[key] += qty
		}
	}

	var mismatches []entities.AllocationMismatch
	for key, needed := range req {
		if chosen[key] != needed {
			mismatches = append(mismatches, entities.AllocationMismatch{
				SKU:      s.displaySKU(key),
				Key:      key,
				Chosen:   chosen[key],
				Required: needed,
			})
		}
	}
	sort.Slice(mismatches, func(i, j int) bool { return mismatches[i].SKU < mismatches[j].SKU })
	if len(mismatches) > 0 {
		return nil, &entities.AllocationMismatchError{Mismatches: mismatches}
	}

	return s.commit(plan, "manual")
}

// prepare validates staging and availability for a commit attempt.
func (s *BuildService) prepare() (map[entities.SKUKey]entities.Quantity, error) {
	if len(s.staging.Items) == 0 {
		return nil, entities.Validationf("no build lines staged")
	}
	req, err := s.CalculateRequirements()
	if err != nil {
		return nil, err
	}
	if shortages := s.CheckAvailability(req); len(shortages) > 0 {
		return nil, &entities.ShortageError{Lines: shortages}
	}
	return req, nil
}

// commit applies a balanced consumption plan and the build's side effects:
// lot decrements with pruning, machine stock increments, history event,
// staging clear, checkpoint.
func (s *BuildService) commit(plan map[int64]entities.Quantity, mode string) (*dto.BuildReceipt, error) {
	date := s.staging.DateISO
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	machineItems := make([]entities.HistoryMachineItem, 0, len(s.staging.Items))
	for _, line := range s.staging.Items {
		m, _ := s.machines.Get(line.MachineCode)
		machineItems = append(machineItems, entities.HistoryMachineItem{
			Code: m.Code,
			Name: m.Name,
			Qty:  line.Qty,
		})
	}

	s.lots.Consume(plan)
	for _, item := range machineItems {
		s.machineStock.Increment(item.Code, item.Name, item.Qty)
	}

	event := entities.HistoryEvent{
		ID:        s.seq.Next(),
		Type:      entities.HistoryBuild,
		Timestamp: time.Now(),
		DateISO:   date,
		Machines:  machineItems,
	}
	s.history.Append(event)

	receipt := &dto.BuildReceipt{
		EventID:     event.ID,
		DateISO:     date,
		Machines:    machineItems,
		TotalPieces: event.TotalPieces(),
	}

	zlog.Info().
		Str("mode", mode).
		Int("machines", len(machineItems)).
		Int64("pieces", int64(receipt.TotalPieces)).
		Msg("build committed")

	s.staging.Clear()
	s.checkpoint.Checkpoint()
	return receipt, nil
}

// displaySKU recovers a display label for a part key from its live lots.
func (s *BuildService) displaySKU(key entities.SKUKey) string {
	if lots := s.lots.BySKU(key); len(lots) > 0 {
		return lots[0].SKU
	}
	return string(key)
}

// StagingSnapshot exposes the staging buffer for persistence.
func (s *BuildService) StagingSnapshot() entities.BuildStaging {
	return s.staging
}

// RestoreStaging replaces the staging buffer from a snapshot.
func (s *BuildService) RestoreStaging(staging entities.BuildStaging) {
	s.staging = staging
}
