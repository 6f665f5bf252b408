package action

import "errors"

var (
	// ErrUnknownAction is returned when no factory is registered for a name.
	ErrUnknownAction = errors.New("unknown action")

	// ErrInvalidParam is returned when an action parameter is missing or has
	// the wrong type.
	ErrInvalidParam = errors.New("invalid action parameter")

	// ErrUnavailable is returned when an action needs a dependency that was
	// not provided.
	ErrUnavailable = errors.New("action unavailable")
)
