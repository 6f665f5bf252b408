package sim

import (
	"fmt"

	"github.com/dshills/simevents/internal/event"
)

// Event is a scheduler event. It implements event.Target.
type Event struct {
	env       *Environment
	callbacks event.CallbackList
	value     any
	triggered bool
	processed bool
}

func newEvent(env *Environment) *Event {
	return &Event{
		env:       env,
		callbacks: event.NewCallbackSlice(),
	}
}

// Env returns the environment the event belongs to.
func (e *Event) Env() *Environment {
	return e.env
}

// Value returns the value the event was triggered with.
func (e *Event) Value() any {
	return e.value
}

// Triggered returns true once the event is scheduled for processing.
func (e *Event) Triggered() bool {
	return e.triggered
}

// Processed returns true once the callbacks have run.
func (e *Event) Processed() bool {
	return e.processed
}

// Callbacks implements event.Target.
func (e *Event) Callbacks() event.CallbackList {
	return e.callbacks
}

// SetCallbacks implements event.Target.
func (e *Event) SetCallbacks(list event.CallbackList) {
	e.callbacks = list
}

// OnProcessed appends cb to the callback list. It is a shortcut for
// e.Callbacks().Append.
func (e *Event) OnProcessed(cb event.Callback) *Event {
	e.callbacks.Append(cb)
	return e
}

// Succeed triggers the event with value, to be processed at the current time.
func (e *Event) Succeed(value any) error {
	if e.triggered {
		return ErrAlreadyTriggered
	}
	e.trigger(value)
	e.env.schedule(e, 0)
	return nil
}

// String implements fmt.Stringer.
func (e *Event) String() string {
	return fmt.Sprintf("Event(%v)", e.value)
}

func (e *Event) trigger(value any) {
	e.triggered = true
	e.value = value
}

func (e *Event) process() error {
	e.processed = true
	if e.callbacks == nil {
		return nil
	}
	for _, cb := range e.callbacks.All() {
		if err := cb(e); err != nil {
			return err
		}
	}
	return nil
}
