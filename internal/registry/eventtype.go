package registry

import (
	"slices"

	"github.com/dshills/simevents/internal/event"
	"github.com/dshills/simevents/internal/event/path"
)

// EventType creates events and links topics into them.
type EventType struct {
	name      string
	ns        *NameSpace
	instances []*event.Event
	topics    []*event.Mapping

	dispatcher *DispatcherNode
	enabled    *EnabledNode
}

func newEventType(ns *NameSpace, name string) *EventType {
	return &EventType{
		name:       name,
		ns:         ns,
		dispatcher: ns.dispatcher.NewChild(),
		enabled:    ns.enabled.NewChild(),
	}
}

// Name returns the event type name.
func (et *EventType) Name() string {
	return et.name
}

// Namespace returns the namespace holding the event type.
func (et *EventType) Namespace() *NameSpace {
	return et.ns
}

// Path returns the absolute path of the event type.
func (et *EventType) Path() string {
	return path.Child(et.ns.Path(), et.name)
}

// String implements fmt.Stringer.
func (et *EventType) String() string {
	return et.Path()
}

// Dispatcher returns the dispatcher cascade node of the event type.
func (et *EventType) Dispatcher() *DispatcherNode {
	return et.dispatcher
}

// Enabled returns the enabled cascade node of the event type.
func (et *EventType) Enabled() *EnabledNode {
	return et.enabled
}

// Instances returns the events created by the event type, oldest first.
func (et *EventType) Instances() []*event.Event {
	return slices.Clone(et.instances)
}

// Topics returns the linked topic mappings in link order.
func (et *EventType) Topics() []*event.Mapping {
	return slices.Clone(et.topics)
}

// Create creates an event.
//
// The event metadata starts with "ns" and "name"; fields are added after
// them and replace them in place if they use the same keys. The event gets
// the topics linked so far, then the effective dispatcher and enabled values.
// An enabled event therefore dispatches its enable hook to those topics
// before Create returns.
//
// The event is registered even if an enable handler fails; in that case the
// event is returned together with the error.
func (et *EventType) Create(fields ...event.Field) (*event.Event, error) {
	all := make([]event.Field, 0, 2+len(fields))
	all = append(all,
		event.F(event.KeyNamespace, et.ns),
		event.F(event.KeyName, et.name),
	)
	all = append(all, fields...)

	e := event.New(all...)
	et.instances = append(et.instances, e)
	e.AppendTopic(et.topics...)

	if err := et.dispatcher.Attach(e); err != nil {
		return e, err
	}
	if err := et.enabled.Attach(e); err != nil {
		return e, err
	}
	return e, nil
}

// Detach removes e from the event type. The event keeps its topics,
// dispatcher and enabled state but no longer follows the cascade or topic
// changes.
func (et *EventType) Detach(e *event.Event) error {
	i := slices.Index(et.instances, e)
	if i < 0 {
		return &PathError{Op: "detach", Path: et.Path(), Err: ErrNotFound}
	}
	et.instances = slices.Delete(et.instances, i, i+1)
	if err := et.dispatcher.Detach(e); err != nil {
		return err
	}
	return et.enabled.Detach(e)
}

// AddTopic links m into the event type and every existing instance.
func (et *EventType) AddTopic(m *event.Mapping) {
	et.topics = append(et.topics, m)
	for _, e := range et.instances {
		e.AppendTopic(m)
	}
}

// RemoveTopic unlinks one occurrence of m from the event type and from
// every existing instance. It returns false if m was not linked.
func (et *EventType) RemoveTopic(m *event.Mapping) bool {
	var removed bool
	et.topics, removed = event.RemoveMapping(et.topics, m)
	for _, e := range et.instances {
		e.RemoveTopic(m)
	}
	return removed
}
