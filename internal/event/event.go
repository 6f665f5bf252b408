package event

import "slices"

// Event is an addressable endpoint that dispatches hooks to the handlers of
// its linked topic mappings.
//
// A new event is disabled and has no dispatcher; Dispatch does nothing until
// both are set. Event types normally set them through the registry cascade.
type Event struct {
	metadata   Metadata
	topics     []*Mapping
	dispatcher Dispatcher
	enabled    bool
}

// New creates a disabled event with the given metadata.
func New(fields ...Field) *Event {
	return &Event{
		metadata: NewMetadata(fields...),
	}
}

// Metadata returns the metadata the event was created with.
func (e *Event) Metadata() Metadata {
	return e.metadata
}

// Topics returns a copy of the linked topic mappings in link order.
func (e *Event) Topics() []*Mapping {
	return slices.Clone(e.topics)
}

// AppendTopic links mappings to the event. A mapping may be linked more
// than once; each link dispatches separately.
func (e *Event) AppendTopic(mappings ...*Mapping) {
	for _, m := range mappings {
		if m != nil {
			e.topics = append(e.topics, m)
		}
	}
}

// RemoveTopic unlinks the first occurrence of m, matched by identity.
// Returns false if m was not linked.
func (e *Event) RemoveTopic(m *Mapping) bool {
	var removed bool
	e.topics, removed = RemoveMapping(e.topics, m)
	return removed
}

// Dispatcher returns the current dispatcher, which may be nil.
func (e *Event) Dispatcher() Dispatcher {
	return e.dispatcher
}

// SetDispatcher replaces the dispatcher. A nil dispatcher silences the event.
func (e *Event) SetDispatcher(d Dispatcher) {
	e.dispatcher = d
}

// Enabled returns true if the event dispatches hooks.
func (e *Event) Enabled() bool {
	return e.enabled
}

// SetEnabled changes the enabled flag. Setting the current value does nothing.
//
// Enabling sets the flag and then dispatches the enable hook. Disabling
// dispatches the disable hook and then clears the flag, so disable handlers
// still see an enabled event. If a disable handler fails the event stays
// enabled and the error is returned.
func (e *Event) SetEnabled(enabled bool) error {
	if enabled == e.enabled {
		return nil
	}
	if enabled {
		e.enabled = true
		return e.Dispatch(HookEnable, nil)
	}
	if err := e.Dispatch(HookDisable, nil); err != nil {
		return err
	}
	e.enabled = false
	return nil
}

// Dispatch delivers hook with data to the event's handlers.
// It does nothing when the event is disabled or has no dispatcher.
func (e *Event) Dispatch(hook string, data any) error {
	if !e.enabled || e.dispatcher == nil {
		return nil
	}
	return e.dispatcher.Dispatch(e, hook, data)
}

// Attach splices the event's before, callbacks and after hooks into the
// callback list of a scheduler event and returns t, so it can be used inline:
//
//	evt.Attach(env.Timeout(1, "payload"))
//
// The scheduler event is passed to the handlers as data. Hooks are evaluated
// when the scheduler fires them: disabling the event or clearing its
// dispatcher beforehand suppresses them.
func (e *Event) Attach(t Target) Target {
	s := SpliceOf(t.Callbacks())
	s.AppendBefore(e.trampoline(HookBefore))
	s.Raw().Append(e.trampoline(HookCallbacks))
	s.AppendAfter(e.trampoline(HookAfter))
	t.SetCallbacks(s)
	return t
}

func (e *Event) trampoline(hook string) Callback {
	return func(t Target) error {
		return e.Dispatch(hook, t)
	}
}

// String returns the event metadata.
func (e *Event) String() string {
	return e.metadata.String()
}
