package event

import (
	"errors"
	"fmt"
)

// Sentinel errors for the event package.
var (
	// ErrIndexOutOfRange is returned when an index does not address an element.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNilHandler is returned when a nil handler is stored by index.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrNilCallback is returned when a nil callback is stored by index.
	ErrNilCallback = errors.New("callback cannot be nil")
)

func indexError(index, length int) error {
	return fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, index, length)
}

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return indexError(index, length)
	}
	return nil
}

// checkInsert allows index == length (append position).
func checkInsert(index, length int) error {
	if index < 0 || index > length {
		return indexError(index, length)
	}
	return nil
}
