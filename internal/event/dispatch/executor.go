package dispatch

import (
	"runtime/debug"
	"time"

	"github.com/dshills/simevents/internal/event"
)

// Executor runs one handler and captures timing information.
// If recovery is enabled it also turns panics into results.
type Executor struct {
	panicHandler PanicHandler
	recover      bool
}

// NewExecutor creates a new executor with the given options.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{
		panicHandler: defaultPanicHandler,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithExecutorPanicHandler sets the panic handler for the executor.
func WithExecutorPanicHandler(h PanicHandler) ExecutorOption {
	return func(e *Executor) {
		e.panicHandler = h
	}
}

// WithRecovery makes the executor recover handler panics.
func WithRecovery() ExecutorOption {
	return func(e *Executor) {
		e.recover = true
	}
}

// Execute runs fn with ctx and data and returns the result.
func (e *Executor) Execute(ctx *event.Context, data any, fn event.Handler) (result Result) {
	start := time.Now()

	if e.recover {
		defer func() {
			result.Duration = time.Since(start)

			if r := recover(); r != nil {
				stack := debug.Stack()

				result.Success = false
				result.Panicked = true
				result.PanicValue = r
				result.PanicStack = stack

				// A panicking panic handler must not escape the dispatch.
				if e.panicHandler != nil {
					func() {
						defer func() {
							_ = recover()
						}()
						e.panicHandler(ctx, r, stack)
					}()
				}
			}
		}()
	}

	err := fn(ctx, data)
	result.Duration = time.Since(start)
	if err != nil {
		result.Error = err
	} else {
		result.Success = true
	}
	return result
}
