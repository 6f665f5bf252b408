package registry

import (
	"slices"

	"github.com/dshills/simevents/internal/event"
	"github.com/dshills/simevents/internal/event/path"
)

// Topic is an ordered list of event type paths sharing one handler mapping.
//
// Paths are resolved relative to the namespace holding the topic. The same
// path may appear several times; each occurrence links the mapping once.
type Topic struct {
	name    string
	ns      *NameSpace
	paths   []string
	mapping *event.Mapping
}

func newTopic(ns *NameSpace, name string) *Topic {
	return &Topic{
		name:    name,
		ns:      ns,
		mapping: event.NewMapping(),
	}
}

// Name returns the topic name.
func (t *Topic) Name() string {
	return t.name
}

// Namespace returns the namespace holding the topic.
func (t *Topic) Namespace() *NameSpace {
	return t.ns
}

// Path returns the absolute path of the topic.
func (t *Topic) Path() string {
	return path.Child(t.ns.Path(), t.name)
}

// String implements fmt.Stringer.
func (t *Topic) String() string {
	return t.Path()
}

// Mapping returns the handler mapping linked into events.
func (t *Topic) Mapping() *event.Mapping {
	return t.mapping
}

// Len returns the number of event type paths.
func (t *Topic) Len() int {
	return len(t.paths)
}

// At returns the event type path at index i.
func (t *Topic) At(i int) (string, error) {
	if err := checkIndex(i, len(t.paths)); err != nil {
		return "", err
	}
	return t.paths[i], nil
}

// Paths returns a copy of the event type paths.
func (t *Topic) Paths() []string {
	return slices.Clone(t.paths)
}

// Append links the event types at paths. Every path is resolved before the
// topic changes, so an invalid path leaves the topic as it was.
func (t *Topic) Append(paths ...string) error {
	types := make([]*EventType, 0, len(paths))
	for _, p := range paths {
		et, err := t.ns.EventType(p)
		if err != nil {
			return err
		}
		types = append(types, et)
	}
	for i, et := range types {
		t.paths = append(t.paths, paths[i])
		et.AddTopic(t.mapping)
	}
	return nil
}

// Insert links the event type at p and stores p before index i.
func (t *Topic) Insert(i int, p string) error {
	if err := checkInsert(i, len(t.paths)); err != nil {
		return err
	}
	et, err := t.ns.EventType(p)
	if err != nil {
		return err
	}
	t.paths = slices.Insert(t.paths, i, p)
	et.AddTopic(t.mapping)
	return nil
}

// Set replaces the path at index i with p, unlinking the old event type and
// linking the new one.
func (t *Topic) Set(i int, p string) error {
	if err := checkIndex(i, len(t.paths)); err != nil {
		return err
	}
	et, err := t.ns.EventType(p)
	if err != nil {
		return err
	}
	if err := t.unlink(t.paths[i]); err != nil {
		return err
	}
	t.paths[i] = p
	et.AddTopic(t.mapping)
	return nil
}

// Delete unlinks the event type at index i and removes its path.
func (t *Topic) Delete(i int) error {
	if err := checkIndex(i, len(t.paths)); err != nil {
		return err
	}
	if err := t.unlink(t.paths[i]); err != nil {
		return err
	}
	t.paths = slices.Delete(t.paths, i, i+1)
	return nil
}

// Remove deletes the first occurrence of p.
func (t *Topic) Remove(p string) error {
	i := slices.Index(t.paths, p)
	if i < 0 {
		return &PathError{Op: "remove", Path: p, Err: ErrNotFound}
	}
	return t.Delete(i)
}

// DeleteRange is not supported. Paths must be deleted one by one.
func (t *Topic) DeleteRange(i, j int) error {
	return ErrUnsupported
}

// SetRange is not supported. Paths must be replaced one by one.
func (t *Topic) SetRange(i, j int, paths ...string) error {
	return ErrUnsupported
}

func (t *Topic) unlink(p string) error {
	et, err := t.ns.EventType(p)
	if err != nil {
		return err
	}
	et.RemoveTopic(t.mapping)
	return nil
}

// Handlers returns the handler list for hook, creating it if needed.
func (t *Topic) Handlers(hook string) *event.Handlers {
	return t.mapping.Handlers(hook)
}

// LookupHandlers returns the handler list for hook without creating it.
func (t *Topic) LookupHandlers(hook string) (*event.Handlers, bool) {
	return t.mapping.Lookup(hook)
}

// Before returns the before handlers.
func (t *Topic) Before() *event.Handlers { return t.Handlers(event.HookBefore) }

// CallbacksHandlers returns the callbacks handlers.
func (t *Topic) CallbacksHandlers() *event.Handlers { return t.Handlers(event.HookCallbacks) }

// After returns the after handlers.
func (t *Topic) After() *event.Handlers { return t.Handlers(event.HookAfter) }

// Enable returns the enable handlers.
func (t *Topic) Enable() *event.Handlers { return t.Handlers(event.HookEnable) }

// Disable returns the disable handlers.
func (t *Topic) Disable() *event.Handlers { return t.Handlers(event.HookDisable) }
