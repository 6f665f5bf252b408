package cascade

import "errors"

// Errors returned by cascade nodes.
var (
	// ErrNotAttached is returned when detaching a target that is not attached.
	ErrNotAttached = errors.New("target not attached")

	// ErrUnsetRoot is the panic value when the root value is unset.
	// The root of a cascade must always hold a concrete value.
	ErrUnsetRoot = errors.New("cannot unset the root value")
)
