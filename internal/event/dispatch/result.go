package dispatch

import (
	"time"

	"github.com/dshills/simevents/internal/event"
)

// Result represents the outcome of a handler execution.
type Result struct {
	// Success is true if the handler completed without error or panic.
	Success bool

	// Error is the error returned by the handler, if any.
	Error error

	// Panicked is true if the handler panicked.
	Panicked bool

	// PanicValue is the value passed to panic(), if Panicked is true.
	PanicValue any

	// PanicStack is the stack trace at the point of panic.
	PanicStack []byte

	// Duration is how long the handler took to execute.
	Duration time.Duration
}

// IsSuccess returns true if the result indicates successful execution.
func (r Result) IsSuccess() bool {
	return r.Success && !r.Panicked && r.Error == nil
}

// IsError returns true if the result indicates an error (not panic).
func (r Result) IsError() bool {
	return r.Error != nil && !r.Panicked
}

// IsPanic returns true if the result indicates a panic.
func (r Result) IsPanic() bool {
	return r.Panicked
}

// Err returns the failure of r as an error, or nil on success.
func (r Result) Err(hook string) error {
	if r.Panicked {
		return &PanicError{Hook: hook, Value: r.PanicValue, Stack: r.PanicStack}
	}
	return r.Error
}

// PanicHandler is called when a handler panics during an isolated dispatch.
// It receives the dispatch context, the panic value, and the stack trace.
type PanicHandler func(ctx *event.Context, panicValue any, stack []byte)

// defaultPanicHandler is a no-op panic handler.
func defaultPanicHandler(*event.Context, any, []byte) {}
