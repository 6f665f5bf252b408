package sim

import "errors"

var (
	// ErrAlreadyTriggered is returned when triggering an event twice.
	ErrAlreadyTriggered = errors.New("event already triggered")

	// ErrNegativeDelay is returned for a delay below zero.
	ErrNegativeDelay = errors.New("negative delay")

	// ErrEmptySchedule is returned by Step when no event is queued.
	ErrEmptySchedule = errors.New("no scheduled events")
)
