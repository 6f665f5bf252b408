package event

import "slices"

// Handler handles one hook dispatch.
// ctx identifies the event and hook; data is whatever the dispatcher was given
// (the scheduler event for spliced hooks, nil for enable and disable).
// A returned error aborts the dispatch and is returned to its caller.
type Handler func(ctx *Context, data any) error

// Handlers is the ordered, mutable handler list of one hook in a topic.
// The list is shared by reference: every event linked to the topic sees
// changes made through any holder of the pointer.
type Handlers struct {
	list []Handler
}

// NewHandlers creates a handler list with the given initial handlers.
func NewHandlers(handlers ...Handler) *Handlers {
	h := &Handlers{}
	h.Append(handlers...)
	return h
}

// Register appends fn and returns it unchanged, so it can be used inline:
//
//	onArrival := topic.After().Register(func(ctx *event.Context, data any) error {
//		...
//	})
func (h *Handlers) Register(fn Handler) Handler {
	h.Append(fn)
	return fn
}

// Append adds handlers to the end of the list. Nil handlers are skipped.
func (h *Handlers) Append(handlers ...Handler) {
	for _, fn := range handlers {
		if fn != nil {
			h.list = append(h.list, fn)
		}
	}
}

// Insert inserts fn before index i. i may equal Len to append.
func (h *Handlers) Insert(i int, fn Handler) error {
	if fn == nil {
		return ErrNilHandler
	}
	if err := checkInsert(i, len(h.list)); err != nil {
		return err
	}
	h.list = slices.Insert(h.list, i, fn)
	return nil
}

// Set replaces the handler at index i.
func (h *Handlers) Set(i int, fn Handler) error {
	if fn == nil {
		return ErrNilHandler
	}
	if err := checkIndex(i, len(h.list)); err != nil {
		return err
	}
	h.list[i] = fn
	return nil
}

// Delete removes the handler at index i.
func (h *Handlers) Delete(i int) error {
	if err := checkIndex(i, len(h.list)); err != nil {
		return err
	}
	h.list = slices.Delete(h.list, i, i+1)
	return nil
}

// At returns the handler at index i.
func (h *Handlers) At(i int) (Handler, error) {
	if err := checkIndex(i, len(h.list)); err != nil {
		return nil, err
	}
	return h.list[i], nil
}

// Pop removes and returns the last handler.
func (h *Handlers) Pop() (Handler, error) {
	n := len(h.list)
	if n == 0 {
		return nil, indexError(0, 0)
	}
	fn := h.list[n-1]
	h.list = slices.Delete(h.list, n-1, n)
	return fn, nil
}

// Clear removes every handler.
func (h *Handlers) Clear() {
	h.list = nil
}

// Len returns the number of handlers.
func (h *Handlers) Len() int {
	return len(h.list)
}

// Snapshot returns a copy of the handlers in their current order.
func (h *Handlers) Snapshot() []Handler {
	return slices.Clone(h.list)
}
