package sim

import (
	"container/heap"
	"fmt"
)

// Environment owns simulated time and the event queue.
// It is not safe for concurrent use.
type Environment struct {
	now       float64
	seq       uint64
	queue     queue
	processed uint64
	onStep    func(*Event)
}

// Option configures an Environment.
type Option func(*Environment)

// WithStepHook sets a function called after each processed event, whether
// or not its callbacks failed.
func WithStepHook(fn func(*Event)) Option {
	return func(env *Environment) {
		env.onStep = fn
	}
}

// NewEnvironment creates an environment at time zero.
func NewEnvironment(opts ...Option) *Environment {
	env := &Environment{}
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// Now returns the current simulated time.
func (env *Environment) Now() float64 {
	return env.now
}

// Event creates an untriggered event.
func (env *Environment) Event() *Event {
	return newEvent(env)
}

// Timeout creates an event triggered with value that is processed delay
// time units from now. It panics with ErrNegativeDelay if delay < 0.
func (env *Environment) Timeout(delay float64, value any) *Event {
	if delay < 0 {
		panic(fmt.Errorf("%w: %v", ErrNegativeDelay, delay))
	}
	e := newEvent(env)
	e.trigger(value)
	env.schedule(e, delay)
	return e
}

// Peek returns the time of the next scheduled event.
// ok is false if the queue is empty.
func (env *Environment) Peek() (at float64, ok bool) {
	if len(env.queue) == 0 {
		return 0, false
	}
	return env.queue[0].at, true
}

// Pending returns the number of scheduled events.
func (env *Environment) Pending() int {
	return len(env.queue)
}

// Step processes the next scheduled event. It returns ErrEmptySchedule when
// the queue is empty and the first error returned by a callback otherwise.
func (env *Environment) Step() error {
	if len(env.queue) == 0 {
		return ErrEmptySchedule
	}
	item := heap.Pop(&env.queue).(scheduled)
	env.now = item.at
	err := item.event.process()
	env.processed++
	if env.onStep != nil {
		env.onStep(item.event)
	}
	return err
}

// Processed returns the number of events processed so far.
func (env *Environment) Processed() uint64 {
	return env.processed
}

// Run processes events until the queue is empty or, if until > 0, until the
// next event is scheduled at or after until. With until > 0 the clock ends at
// until unless it is already past it. The first callback error stops the run.
func (env *Environment) Run(until float64) error {
	for {
		at, ok := env.Peek()
		if !ok {
			if until > 0 && env.now < until {
				env.now = until
			}
			return nil
		}
		if until > 0 && at >= until {
			env.now = until
			return nil
		}
		if err := env.Step(); err != nil {
			return fmt.Errorf("at %v: %w", env.now, err)
		}
	}
}

func (env *Environment) schedule(e *Event, delay float64) {
	env.seq++
	heap.Push(&env.queue, scheduled{
		at:    env.now + delay,
		seq:   env.seq,
		event: e,
	})
}
