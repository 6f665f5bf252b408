package layer

import (
	"fmt"
	"sort"
)

// Manager manages configuration layers and provides merged access.
type Manager struct {
	layers []*Layer       // sorted by priority (ascending)
	merged map[string]any // cached merged result
	dirty  bool
}

// NewManager creates a new layer manager.
func NewManager() *Manager {
	return &Manager{dirty: true}
}

// AddLayer adds a layer to the manager, replacing a layer with the same
// name. Layers are kept sorted by priority; equal priorities keep their
// insertion order.
func (m *Manager) AddLayer(l *Layer) {
	if i := m.index(l.Name); i >= 0 {
		m.layers = append(m.layers[:i], m.layers[i+1:]...)
	}
	m.layers = append(m.layers, l)
	sort.SliceStable(m.layers, func(i, j int) bool {
		return m.layers[i].Priority < m.layers[j].Priority
	})
	m.dirty = true
}

// RemoveLayer removes a layer by name.
// Returns true if the layer was found and removed.
func (m *Manager) RemoveLayer(name string) bool {
	i := m.index(name)
	if i < 0 {
		return false
	}
	m.layers = append(m.layers[:i], m.layers[i+1:]...)
	m.dirty = true
	return true
}

// Layer returns a layer by name, or nil.
func (m *Manager) Layer(name string) *Layer {
	if i := m.index(name); i >= 0 {
		return m.layers[i]
	}
	return nil
}

// Layers returns all layers sorted by priority.
func (m *Manager) Layers() []*Layer {
	result := make([]*Layer, len(m.layers))
	copy(result, m.layers)
	return result
}

// Merge combines all layers into a single configuration map.
// The result is a copy and may be modified by the caller.
func (m *Manager) Merge() map[string]any {
	if m.dirty || m.merged == nil {
		result := make(map[string]any)
		for _, l := range m.layers {
			result = DeepMerge(result, l.Data)
		}
		m.merged = result
		m.dirty = false
	}
	return cloneMap(m.merged)
}

// Get returns the effective value for a dot-separated path and the name of
// the layer it came from.
func (m *Manager) Get(path string) (any, string, bool) {
	for i := len(m.layers) - 1; i >= 0; i-- {
		if v, ok := GetByPath(m.layers[i].Data, path); ok {
			return v, m.layers[i].Name, true
		}
	}
	return nil, "", false
}

// Set sets a value in the named layer.
func (m *Manager) Set(layerName, path string, value any) error {
	l := m.Layer(layerName)
	if l == nil {
		return fmt.Errorf("layer not found: %s", layerName)
	}
	SetByPath(l.Data, path, value)
	m.dirty = true
	return nil
}

func (m *Manager) index(name string) int {
	for i, l := range m.layers {
		if l.Name == name {
			return i
		}
	}
	return -1
}
