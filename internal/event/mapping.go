package event

import (
	"slices"
	"sort"

	"github.com/google/uuid"
)

// Mapping associates hook names with handler lists. It is the unit that gets
// linked into events: a topic owns exactly one Mapping and every event of a
// linked event type holds a reference to it.
//
// Linkage is by identity. Two mappings with the same contents are distinct,
// and the same mapping may be linked to one event several times.
type Mapping struct {
	id    uuid.UUID
	hooks map[string]*Handlers
}

// NewMapping creates an empty mapping with a fresh identity.
func NewMapping() *Mapping {
	return &Mapping{
		id:    uuid.New(),
		hooks: make(map[string]*Handlers),
	}
}

// ID returns the identity token of the mapping.
func (m *Mapping) ID() uuid.UUID {
	return m.id
}

// Same returns true if other is the same mapping.
func (m *Mapping) Same(other *Mapping) bool {
	return other != nil && m.id == other.id
}

// Handlers returns the handler list for hook, creating it if needed.
func (m *Mapping) Handlers(hook string) *Handlers {
	h, ok := m.hooks[hook]
	if !ok {
		h = &Handlers{}
		m.hooks[hook] = h
	}
	return h
}

// Lookup returns the handler list for hook without creating it.
func (m *Mapping) Lookup(hook string) (*Handlers, bool) {
	h, ok := m.hooks[hook]
	return h, ok
}

// Hooks returns the hooks that have a handler list, sorted.
func (m *Mapping) Hooks() []string {
	hooks := make([]string, 0, len(m.hooks))
	for hook := range m.hooks {
		hooks = append(hooks, hook)
	}
	sort.Strings(hooks)
	return hooks
}

// indexOf returns the position of the first identity match of m in list.
func indexOf(list []*Mapping, m *Mapping) int {
	return slices.IndexFunc(list, m.Same)
}

// RemoveMapping removes the first identity match of m from list.
// It returns the new list and whether a mapping was removed.
func RemoveMapping(list []*Mapping, m *Mapping) ([]*Mapping, bool) {
	if m == nil {
		return list, false
	}
	i := indexOf(list, m)
	if i < 0 {
		return list, false
	}
	return slices.Delete(list, i, i+1), true
}
