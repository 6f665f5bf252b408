package dispatch

import "fmt"

// PanicError reports a recovered handler panic.
type PanicError struct {
	// Hook is the hook being dispatched.
	Hook string

	// Value is the value passed to panic.
	Value any

	// Stack is the stack trace at the point of panic.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s handler: %v", e.Hook, e.Value)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
