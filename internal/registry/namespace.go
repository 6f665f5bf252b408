package registry

import (
	"log/slog"
	"slices"

	"github.com/dshills/simevents/internal/cascade"
	"github.com/dshills/simevents/internal/event"
	"github.com/dshills/simevents/internal/event/path"
)

// Cascade node types shared by namespaces and event types.
type (
	DispatcherNode = cascade.Node[event.Dispatcher, *event.Event]
	EnabledNode    = cascade.Node[bool, *event.Event]
)

// NameSpace is a node of the registry tree.
type NameSpace struct {
	name   string
	parent *NameSpace
	root   *NameSpace
	logger *slog.Logger

	children   map[string]*NameSpace
	eventTypes map[string]*EventType
	topics     map[string]*Topic

	dispatcher *DispatcherNode
	enabled    *EnabledNode
}

// NewRoot creates the root namespace of a new registry.
func NewRoot(opts ...Option) *NameSpace {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	root := &NameSpace{
		logger:     o.logger,
		dispatcher: cascade.NewRoot("dispatcher", o.dispatcher, applyDispatcher),
		enabled:    cascade.NewRoot("enabled", o.enabled, applyEnabled),
	}
	root.root = root
	root.init()
	return root
}

func newNameSpace(parent *NameSpace, name string) *NameSpace {
	ns := &NameSpace{
		name:       name,
		parent:     parent,
		root:       parent.root,
		logger:     parent.logger,
		dispatcher: parent.dispatcher.NewChild(),
		enabled:    parent.enabled.NewChild(),
	}
	ns.init()
	return ns
}

func (ns *NameSpace) init() {
	ns.children = make(map[string]*NameSpace)
	ns.eventTypes = make(map[string]*EventType)
	ns.topics = make(map[string]*Topic)
}

func applyDispatcher(e *event.Event, d event.Dispatcher) error {
	e.SetDispatcher(d)
	return nil
}

func applyEnabled(e *event.Event, enabled bool) error {
	return e.SetEnabled(enabled)
}

// Name returns the last path segment, or "" for the root.
func (ns *NameSpace) Name() string {
	return ns.name
}

// Path returns the absolute path, or "" for the root.
//
// Example: root.NS("a::b").Path() -> "::a::b"
func (ns *NameSpace) Path() string {
	if ns.parent == nil {
		return ""
	}
	return path.Child(ns.parent.Path(), ns.name)
}

// String returns the absolute path, "::" for the root.
func (ns *NameSpace) String() string {
	if ns.parent == nil {
		return path.Separator
	}
	return ns.Path()
}

// Parent returns the parent namespace, or nil for the root.
func (ns *NameSpace) Parent() *NameSpace {
	return ns.parent
}

// Root returns the root namespace of the registry.
func (ns *NameSpace) Root() *NameSpace {
	return ns.root
}

// IsRoot returns true if ns is the root namespace.
func (ns *NameSpace) IsRoot() bool {
	return ns.parent == nil
}

// Dispatcher returns the dispatcher cascade node of ns.
func (ns *NameSpace) Dispatcher() *DispatcherNode {
	return ns.dispatcher
}

// Enabled returns the enabled cascade node of ns.
func (ns *NameSpace) Enabled() *EnabledNode {
	return ns.enabled
}

// NS returns the namespace at p, creating missing namespaces on the way.
func (ns *NameSpace) NS(p string) (*NameSpace, error) {
	start := ns
	if path.IsAbsolute(p) {
		start = ns.root
	}
	segments := path.Segments(p)
	if len(segments) == 0 {
		return nil, &PathError{Op: "ns", Path: p, Err: path.ErrEmptyPath}
	}

	cur := start
	for _, name := range segments {
		child, ok := cur.children[name]
		if !ok {
			child = newNameSpace(cur, name)
			cur.children[name] = child
			ns.logger.Debug("namespace created", "path", child.Path())
		}
		cur = child
	}
	return cur, nil
}

// splitLeaf resolves the namespace part of p and returns it with the leaf.
func (ns *NameSpace) splitLeaf(op, p string) (*NameSpace, string, error) {
	dir, leaf, hasDir := path.SplitLeaf(p)
	if leaf == "" {
		return nil, "", &PathError{Op: op, Path: p, Err: path.ErrEmptyPath}
	}
	if !hasDir {
		return ns, leaf, nil
	}
	if dir == "" {
		return ns.root, leaf, nil
	}
	parent, err := ns.NS(dir)
	if err != nil {
		return nil, "", err
	}
	return parent, leaf, nil
}

// EventType returns the event type at p, creating it if needed.
func (ns *NameSpace) EventType(p string) (*EventType, error) {
	parent, name, err := ns.splitLeaf("event type", p)
	if err != nil {
		return nil, err
	}
	et, ok := parent.eventTypes[name]
	if !ok {
		et = newEventType(parent, name)
		parent.eventTypes[name] = et
		ns.logger.Debug("event type created", "path", et.Path())
	}
	return et, nil
}

// Topic returns the topic at p, creating it if needed.
func (ns *NameSpace) Topic(p string) (*Topic, error) {
	parent, name, err := ns.splitLeaf("topic", p)
	if err != nil {
		return nil, err
	}
	t, ok := parent.topics[name]
	if !ok {
		t = newTopic(parent, name)
		parent.topics[name] = t
		ns.logger.Debug("topic created", "path", t.Path())
	}
	return t, nil
}

// Event creates an event of the event type at p.
// It is a shortcut for EventType(p) followed by Create.
func (ns *NameSpace) Event(p string, fields ...event.Field) (*event.Event, error) {
	et, err := ns.EventType(p)
	if err != nil {
		return nil, err
	}
	return et.Create(fields...)
}

// Handlers returns the handler list for hook of the topic at p.
func (ns *NameSpace) Handlers(p, hook string) (*event.Handlers, error) {
	t, err := ns.Topic(p)
	if err != nil {
		return nil, err
	}
	return t.Handlers(hook), nil
}

// Before returns the before handlers of the topic at p.
func (ns *NameSpace) Before(p string) (*event.Handlers, error) {
	return ns.Handlers(p, event.HookBefore)
}

// Callbacks returns the callbacks handlers of the topic at p.
func (ns *NameSpace) Callbacks(p string) (*event.Handlers, error) {
	return ns.Handlers(p, event.HookCallbacks)
}

// After returns the after handlers of the topic at p.
func (ns *NameSpace) After(p string) (*event.Handlers, error) {
	return ns.Handlers(p, event.HookAfter)
}

// Enable returns the enable handlers of the topic at p.
func (ns *NameSpace) Enable(p string) (*event.Handlers, error) {
	return ns.Handlers(p, event.HookEnable)
}

// Disable returns the disable handlers of the topic at p.
func (ns *NameSpace) Disable(p string) (*event.Handlers, error) {
	return ns.Handlers(p, event.HookDisable)
}

// Children returns the names of the child namespaces, sorted.
func (ns *NameSpace) Children() []string {
	return sortedKeys(ns.children)
}

// EventTypes returns the names of the event types of ns, sorted.
func (ns *NameSpace) EventTypes() []string {
	return sortedKeys(ns.eventTypes)
}

// Topics returns the names of the topics of ns, sorted.
func (ns *NameSpace) Topics() []string {
	return sortedKeys(ns.topics)
}

// LookupEventType returns the event type name of ns without creating it.
func (ns *NameSpace) LookupEventType(name string) (*EventType, bool) {
	et, ok := ns.eventTypes[name]
	return et, ok
}

// LookupTopic returns the topic name of ns without creating it.
func (ns *NameSpace) LookupTopic(name string) (*Topic, bool) {
	t, ok := ns.topics[name]
	return t, ok
}

// Walk calls fn for ns and every namespace below it, depth first, children
// in sorted order. A non-nil error from fn stops the walk and is returned.
func (ns *NameSpace) Walk(fn func(*NameSpace) error) error {
	if err := fn(ns); err != nil {
		return err
	}
	for _, name := range ns.Children() {
		if err := ns.children[name].Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
