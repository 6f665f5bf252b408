package action

import (
	"fmt"
	"sort"

	"github.com/dshills/simevents/internal/event"
)

// Params holds the configuration parameters of one handler.
type Params map[string]any

// Factory builds a handler from its parameters.
type Factory func(params Params) (event.Handler, error)

// Registry manages the available actions.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory to the registry.
// If a factory with the same name exists, it is overwritten.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Has returns true if name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered action names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build looks up the factory for name and builds a handler.
func (r *Registry) Build(name string, params Params) (event.Handler, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	h, err := f(params)
	if err != nil {
		return nil, fmt.Errorf("action %s: %w", name, err)
	}
	return h, nil
}

// String returns the parameter key as a string, or def when it is absent.
func (p Params) String(key, def string) (string, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidParam, key, v)
	}
	return s, nil
}

// Required returns the parameter key as a non-empty string.
func (p Params) Required(key string) (string, error) {
	s, err := p.String(key, "")
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidParam, key)
	}
	return s, nil
}
