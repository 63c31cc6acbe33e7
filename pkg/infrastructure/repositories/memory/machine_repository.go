package memory

import (
	"sort"
	"strings"

	"github.com/Michal-learning/magazyn/pkg/domain/entities"
	"github.com/Michal-learning/magazyn/pkg/domain/repositories"
)

// MachineRepository provides in-memory machine catalog storage keyed by the
// machine's exact code.
type MachineRepository struct {
	machines map[string]*entities.Machine
}

// NewMachineRepository creates a new in-memory machine repository
func NewMachineRepository() *MachineRepository {
	return &MachineRepository{machines: make(map[string]*entities.Machine)}
}

// Verify interface compliance
var _ repositories.MachineRepository = (*MachineRepository)(nil)

// Get returns the machine stored under the code.
func (r *MachineRepository) Get(code string) (*entities.Machine, bool) {
	m, ok := r.machines[code]
	return m, ok
}

// ExistsFold reports whether any machine is stored under the code,
// compared case-insensitively.
func (r *MachineRepository) ExistsFold(code string) bool {
	for c := range r.machines {
		if strings.EqualFold(c, code) {
			return true
		}
	}
	return false
}

// Put stores a machine, replacing any entry with the same code.
func (r *MachineRepository) Put(machine *entities.Machine) {
	r.machines[machine.Code] = machine
}

// Delete removes the machine stored under the code.
func (r *MachineRepository) Delete(code string) {
	delete(r.machines, code)
}

// All returns all machines sorted by code.
func (r *MachineRepository) All() []*entities.Machine {
	out := make([]*entities.Machine, 0, len(r.machines))
	for _, m := range r.machines {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// RequiringPart returns the codes of machines whose BOM references the given
// part key, sorted alphabetically.
func (r *MachineRepository) RequiringPart(key entities.SKUKey) []string {
	var codes []string
	for code, m := range r.machines {
		if m.Requires(key) {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// Snapshot returns deep value copies of all machines for persistence.
func (r *MachineRepository) Snapshot() []entities.Machine {
	all := r.All()
	out := make([]entities.Machine, 0, len(all))
	for _, m := range all {
		out = append(out, *m.Clone())
	}
	return out
}

// Restore replaces the stored machines with the given set.
func (r *MachineRepository) Restore(machines []entities.Machine) {
	r.machines = make(map[string]*entities.Machine, len(machines))
	for i := range machines {
		m := machines[i]
		if m.BOM == nil {
			m.BOM = []entities.BOMLine{}
		}
		r.machines[m.Code] = &m
	}
}
