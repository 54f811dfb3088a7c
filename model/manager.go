package model

import (
	sorted "github.com/tobshub/go-sortedmap"

	"github.com/tobsdb/tobsorm/internal/types"
	"github.com/tobsdb/tobsorm/pkg"
)

// Manager is the append-only, in-memory store of one model's saved
// instances. It is not safe for concurrent use.
type Manager struct {
	model   *Model
	records []*Instance

	// id -> first instance saved with that id
	index *sorted.SortedMap[int, *Instance]
}

func managerComparisonFunc(a, b *Instance) bool {
	return a.id < b.id
}

func newManager(m *Model) *Manager {
	return &Manager{
		model:   m,
		records: []*Instance{},
		index:   sorted.New[int, *Instance](0, managerComparisonFunc),
	}
}

func (m *Manager) Model() *Model { return m.model }

// All returns the stored records in save order. The slice is the store
// itself and must not be modified.
func (m *Manager) All() []*Instance { return m.records }

func (m *Manager) Count() int { return len(m.records) }

// Save appends inst to the store. An instance without an id is assigned
// Count()+1 first; an instance that already has one keeps it, so saving it
// again appends it a second time.
func (m *Manager) Save(inst *Instance) (*Instance, error) {
	if inst == nil || inst.model == nil {
		return nil, &TypeMismatchError{Expected: m.model.name, Actual: types.TypeName(nil)}
	}
	if inst.model != m.model {
		return nil, &TypeMismatchError{Expected: m.model.name, Actual: inst.model.name}
	}

	if _, ok := inst.ID(); !ok {
		inst.id = m.Count() + 1
	}
	m.records = append(m.records, inst)
	m.index.Insert(inst.id, inst)

	pkg.DebugLog("saved", inst.String())
	return inst, nil
}

// Get looks a saved instance up by id.
func (m *Manager) Get(id int) (*Instance, bool) {
	return m.index.Get(id)
}

// Filter returns, in save order, the records whose named attributes all
// equal the criteria. Empty criteria return every record. The key "id"
// matches the instance id; keys naming no field match nothing.
func (m *Manager) Filter(criteria Values) []*Instance {
	return pkg.Filter(m.records, func(inst *Instance) bool {
		return matchAll(inst, criteria)
	})
}

// First returns the earliest saved record matching criteria.
func (m *Manager) First(criteria Values) (*Instance, bool) {
	return pkg.Find(m.records, func(inst *Instance) bool {
		return matchAll(inst, criteria)
	})
}

func matchAll(inst *Instance, criteria Values) bool {
	for key, want := range criteria {
		if !inst.matches(key, want) {
			return false
		}
	}
	return true
}
