package services

import (
	"sync/atomic"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/Michal-learning/magazyn/pkg/application/dto"
	"github.com/Michal-learning/magazyn/pkg/domain/entities"
	"github.com/Michal-learning/magazyn/pkg/domain/repositories"
	domainservices "github.com/Michal-learning/magazyn/pkg/domain/services"
)

// DeliveryService stages incoming delivery lines against one supplier and
// commits them into the lot ledger. Nothing touches stock until
// FinalizeDelivery; a failed finalize leaves staging and ledger untouched.
type DeliveryService struct {
	parts      repositories.PartRepository
	suppliers  repositories.SupplierRepository
	lots       repositories.LotRepository
	history    repositories.HistoryRepository
	seq        *domainservices.Sequence
	checkpoint Checkpointer

	staging    entities.DeliveryStaging
	finalizing atomic.Bool
}

// NewDeliveryService creates a new delivery service
func NewDeliveryService(
	parts repositories.PartRepository,
	suppliers repositories.SupplierRepository,
	lots repositories.LotRepository,
	history repositories.HistoryRepository,
	seq *domainservices.Sequence,
	checkpoint Checkpointer,
) *DeliveryService {
	return &DeliveryService{
		parts:      parts,
		suppliers:  suppliers,
		lots:       lots,
		history:    history,
		seq:        seq,
		checkpoint: checkpoint,
	}
}

// SetSupplier selects the supplier the staged delivery belongs to. Changing
// the supplier while lines are staged discards them, but only with force
// set; otherwise nothing changes and needsConfirm is returned true so the
// caller can ask the operator first.
func (s *DeliveryService) SetSupplier(name string, force bool) (needsConfirm bool, err error) {
	if name == s.staging.Supplier {
		return false, nil
	}
	if name != "" {
		if _, ok := s.suppliers.Get(name); !ok {
			return false, entities.Validationf("unknown supplier %q", name)
		}
	}
	if len(s.staging.Items) > 0 && !force {
		return true, nil
	}
	if len(s.staging.Items) > 0 {
		zlog.Warn().
			Str("from", s.staging.Supplier).
			Str("to", name).
			Int("dropped_lines", len(s.staging.Items)).
			Msg("supplier changed, staged delivery lines discarded")
	}
	s.staging.Supplier = name
	s.staging.Clear()
	return false, nil
}

// SetDate sets the delivery date (ISO yyyy-mm-dd) recorded on commit.
func (s *DeliveryService) SetDate(iso string) {
	s.staging.DateISO = iso
}

// AddItem validates and stages one delivery line. Quantity and price arrive
// as raw form strings; an empty price means zero. An empty name falls back
// to the catalog name for known parts, or the uppercased SKU.
func (s *DeliveryService) AddItem(skuRaw, nameRaw, qtyRaw, priceRaw string) (*entities.DeliveryLine, error) {
	if s.staging.Supplier == "" {
		return nil, entities.Validationf("select a supplier before staging lines")
	}
	sku := entities.NormalizeSKU(skuRaw)
	if sku == "" {
		return nil, &entities.ValidationError{Field: "sku", Reason: "value is required"}
	}
	qty, err := domainservices.ParsePositiveInt(qtyRaw)
	if err != nil {
		return nil, err
	}
	price, err := domainservices.ParseNonNegativeDecimal(priceRaw)
	if err != nil {
		return nil, err
	}

	name := entities.NormalizeSKU(nameRaw)
	if name == "" {
		if p, ok := s.parts.Get(entities.KeyForSKU(sku)); ok {
			name = p.Name
		} else {
			name = entities.LookupMiss(sku).DisplayName()
		}
	}

	line := entities.DeliveryLine{
		ID:    s.seq.Next(),
		SKU:   sku,
		Name:  name,
		Qty:   qty,
		Price: price,
	}
	s.staging.Items = append(s.staging.Items, line)
	return &line, nil
}

// RemoveItem drops a staged line by ID.
func (s *DeliveryService) RemoveItem(id int64) {
	s.staging.Remove(id)
}

// Staging returns the current staging buffer.
func (s *DeliveryService) Staging() entities.DeliveryStaging {
	return s.staging
}

// FinalizeDelivery commits the staged lines: unknown parts are registered in
// the catalog, each line lands in the lot ledger (folded into an existing
// lot on a supplier+price match, otherwise as a new lot), a history event is
// appended and staging is cleared. The commit is not reentrant.
func (s *DeliveryService) FinalizeDelivery() (*dto.DeliveryReceipt, error) {
	if !s.finalizing.CompareAndSwap(false, true) {
		return nil, entities.Validationf("a delivery commit is already in progress")
	}
	defer s.finalizing.Store(false)

	if s.staging.Supplier == "" {
		return nil, entities.Validationf("select a supplier before committing")
	}
	if len(s.staging.Items) == 0 {
		return nil, entities.Validationf("no delivery lines staged")
	}

	date := s.staging.DateISO
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	historyParts := make([]entities.HistoryPartItem, 0, len(s.staging.Items))
	for _, line := range s.staging.Items {
		if line.Qty <= 0 {
			continue
		}
		key := line.Key()
		if _, ok := s.parts.Get(key); !ok {
			part, err := entities.NewPart(line.SKU, line.Name)
			if err != nil {
				continue
			}
			s.parts.Put(*part)
		}
		s.addLot(line)
		historyParts = append(historyParts, entities.HistoryPartItem{
			SKU:   line.SKU,
			Name:  line.Name,
			Qty:   line.Qty,
			Price: line.Price,
		})
	}

	event := entities.HistoryEvent{
		ID:        s.seq.Next(),
		Type:      entities.HistoryDelivery,
		Timestamp: time.Now(),
		DateISO:   date,
		Supplier:  s.staging.Supplier,
		Parts:     historyParts,
	}
	s.history.Append(event)

	receipt := &dto.DeliveryReceipt{
		EventID:    event.ID,
		Supplier:   s.staging.Supplier,
		DateISO:    date,
		Lines:      len(historyParts),
		TotalValue: event.TotalValue(),
	}

	zlog.Info().
		Str("supplier", receipt.Supplier).
		Int("lines", receipt.Lines).
		Str("total", receipt.TotalValue.StringFixed(2)).
		Msg("delivery committed")

	s.staging.Clear()
	s.checkpoint.Checkpoint()
	return receipt, nil
}

// addLot folds a line into a mergeable lot (same part, same supplier
// case-insensitively, exactly the same unit price) or opens a new one.
func (s *DeliveryService) addLot(line entities.DeliveryLine) {
	if target, ok := s.lots.FindMergeTarget(line.Key(), s.staging.Supplier, line.Price); ok {
		s.lots.AddQty(target.ID, line.Qty)
		return
	}
	lot, err := entities.NewLot(s.seq.Next(), line.SKU, line.Name, s.staging.Supplier, line.Price, line.Qty)
	if err != nil {
		zlog.Warn().Str("sku", line.SKU).Err(err).Msg("malformed delivery line dropped")
		return
	}
	s.lots.Append(*lot)
}

// StagingSnapshot exposes the staging buffer for persistence.
func (s *DeliveryService) StagingSnapshot() entities.DeliveryStaging {
	return s.staging
}

// RestoreStaging replaces the staging buffer from a snapshot.
func (s *DeliveryService) RestoreStaging(staging entities.DeliveryStaging) {
	s.staging = staging
}
