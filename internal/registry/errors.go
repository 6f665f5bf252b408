package registry

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dshills/simevents/internal/event"
)

var (
	// ErrUnsupported is returned by range operations on a topic.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrNotFound is returned when removing a path or event that is not
	// present.
	ErrNotFound = errors.New("not found")
)

// PathError records a failed path operation.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return e.Op + " " + strconv.Quote(e.Path) + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error { return e.Err }

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d (length %d)", event.ErrIndexOutOfRange, i, n)
	}
	return nil
}

func checkInsert(i, n int) error {
	if i < 0 || i > n {
		return fmt.Errorf("%w: %d (length %d)", event.ErrIndexOutOfRange, i, n)
	}
	return nil
}
