package services

import (
	zlog "github.com/rs/zerolog/log"

	"github.com/Michal-learning/magazyn/pkg/domain/entities"
	"github.com/Michal-learning/magazyn/pkg/domain/repositories"
)

// MachineService manages the machine catalog through a two-phase editor:
// all BOM edits happen on a detached draft, and only SaveDraft publishes the
// result. A draft with an empty BOM cannot be saved, so the catalog never
// holds a machine without requirements.
type MachineService struct {
	machines   repositories.MachineRepository
	parts      repositories.PartRepository
	checkpoint Checkpointer

	draft      *entities.Machine
	draftIsNew bool
}

// NewMachineService creates a new machine service
func NewMachineService(
	machines repositories.MachineRepository,
	parts repositories.PartRepository,
	checkpoint Checkpointer,
) *MachineService {
	return &MachineService{machines: machines, parts: parts, checkpoint: checkpoint}
}

// StartDraft opens a draft for a new machine. The code must not collide with
// an existing machine, compared case-insensitively.
func (s *MachineService) StartDraft(code, name string) error {
	m, err := entities.NewMachine(code, name)
	if err != nil {
		return err
	}
	if s.machines.ExistsFold(m.Code) {
		return entities.Validationf("machine code %q is already taken", m.Code)
	}
	s.draft = m
	s.draftIsNew = true
	return nil
}

// EditDraft opens a draft for an existing machine. Edits stay invisible
// until SaveDraft.
func (s *MachineService) EditDraft(code string) error {
	m, ok := s.machines.Get(code)
	if !ok {
		return entities.Validationf("unknown machine %q", code)
	}
	s.draft = m.Clone()
	s.draftIsNew = false
	return nil
}

// Draft returns the machine currently being edited, or nil.
func (s *MachineService) Draft() *entities.Machine {
	return s.draft
}

// DraftAddBOMItem adds a requirement to the draft BOM. The part must exist
// in the catalog; re-adding a SKU already on the BOM increments its quantity.
func (s *MachineService) DraftAddBOMItem(sku string, qty entities.Quantity) error {
	if s.draft == nil {
		return entities.Validationf("no machine draft open")
	}
	if _, ok := s.parts.Get(entities.KeyForSKU(sku)); !ok {
		return entities.Validationf("cannot add unknown part %q to BOM", sku)
	}
	s.draft.AddBOMQty(sku, qty)
	return nil
}

// DraftSetBOMQty replaces the required quantity for a SKU on the draft BOM.
func (s *MachineService) DraftSetBOMQty(sku string, qty entities.Quantity) error {
	if s.draft == nil {
		return entities.Validationf("no machine draft open")
	}
	if _, ok := s.parts.Get(entities.KeyForSKU(sku)); !ok {
		return entities.Validationf("cannot add unknown part %q to BOM", sku)
	}
	s.draft.SetBOMQty(sku, qty)
	return nil
}

// DraftRemoveBOMItem removes a BOM line by position. The draft may become
// empty; only saving is blocked then.
func (s *MachineService) DraftRemoveBOMItem(idx int) error {
	if s.draft == nil {
		return entities.Validationf("no machine draft open")
	}
	if !s.draft.RemoveBOMAt(idx) {
		return entities.Validationf("no BOM line at position %d", idx)
	}
	return nil
}

// SaveDraft publishes the draft to the catalog and closes it. A draft whose
// BOM is empty is rejected and stays open for further editing.
func (s *MachineService) SaveDraft() error {
	if s.draft == nil {
		return entities.Validationf("no machine draft open")
	}
	if !s.draft.HasBOM() {
		return entities.Validationf("machine %q needs at least one BOM line", s.draft.Code)
	}
	s.machines.Put(s.draft)
	zlog.Info().
		Str("machine", s.draft.Code).
		Int("bom_lines", len(s.draft.BOM)).
		Bool("new", s.draftIsNew).
		Msg("machine saved")
	s.draft = nil
	s.checkpoint.Checkpoint()
	return nil
}

// DiscardDraft closes the draft without publishing.
func (s *MachineService) DiscardDraft() {
	s.draft = nil
}

// DeleteMachine removes a machine from the catalog. Historical machine
// stock and history entries keep their copied code and name.
func (s *MachineService) DeleteMachine(code string) error {
	if _, ok := s.machines.Get(code); !ok {
		return entities.Validationf("unknown machine %q", code)
	}
	s.machines.Delete(code)
	zlog.Info().Str("machine", code).Msg("machine deleted")
	s.checkpoint.Checkpoint()
	return nil
}

// All returns the machine catalog sorted by code.
func (s *MachineService) All() []*entities.Machine {
	return s.machines.All()
}

// Get returns a machine by exact code.
func (s *MachineService) Get(code string) (*entities.Machine, bool) {
	return s.machines.Get(code)
}
