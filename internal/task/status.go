package task

import (
	"errors"
	"strings"
)

var ErrInvalidStatus = errors.New("invalid task status")

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
)

// ParseStatus converts a raw string into a Status. Matching is
// case-insensitive; the stored form is always upper-case.
func ParseStatus(raw string) (Status, error) {
	switch Status(strings.ToUpper(raw)) {
	case StatusPending:
		return StatusPending, nil
	case StatusCompleted:
		return StatusCompleted, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Toggle flips between PENDING and COMPLETED. With only two states the
// operation is its own inverse.
func (s Status) Toggle() Status {
	if s == StatusPending {
		return StatusCompleted
	}
	return StatusPending
}

func (s Status) String() string {
	return string(s)
}
