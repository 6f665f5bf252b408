package event

// Dispatcher delivers one hook of an event to its handlers.
type Dispatcher interface {
	Dispatch(e *Event, hook string, data any) error
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(e *Event, hook string, data any) error

// Dispatch calls f.
func (f DispatcherFunc) Dispatch(e *Event, hook string, data any) error {
	return f(e, hook, data)
}

// EventDispatcher is the default Dispatcher. It calls the handlers of every
// topic mapping linked to the event, topic by topic, in order, and stops at
// the first handler error.
type EventDispatcher struct{}

// Dispatch implements Dispatcher.
func (EventDispatcher) Dispatch(e *Event, hook string, data any) error {
	ctx := &Context{Event: e, Hook: hook}
	for _, handlers := range Snapshot(e, hook) {
		for _, fn := range handlers {
			if err := fn(ctx, data); err != nil {
				return err
			}
		}
	}
	return nil
}

// Snapshot returns a copy of the handler list for hook of every mapping
// linked to e, in link order. Mappings without the hook are skipped.
// The copy is taken up front so handlers can mutate topics and handler lists
// without affecting the dispatch that is running.
func Snapshot(e *Event, hook string) [][]Handler {
	snapshot := make([][]Handler, 0, len(e.topics))
	for _, m := range e.topics {
		h, ok := m.Lookup(hook)
		if !ok || h.Len() == 0 {
			continue
		}
		snapshot = append(snapshot, h.Snapshot())
	}
	return snapshot
}
