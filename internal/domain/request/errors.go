package request

import (
	"errors"
	"fmt"
)

var (
	ErrRequestNotFound = errors.New("holiday request not found")
	// ErrInvalidRange is returned when start_date is after end_date.
	ErrInvalidRange = errors.New("start date must not be after end date")
	// ErrEmptyRange is returned on approval of a range containing no weekday.
	ErrEmptyRange = errors.New("no weekdays in requested range")
	// ErrStatePrecondition is returned when an operation is attempted from
	// the wrong lifecycle state.
	ErrStatePrecondition = errors.New("request is not in the required state")
	// ErrStaleState is returned when a concurrent writer already moved the
	// request; the losing caller must not re-apply side effects.
	ErrStaleState = errors.New("request was modified concurrently")
	// ErrNotRequestOwner is returned when a staff member operates on a
	// request they did not submit.
	ErrNotRequestOwner = errors.New("request belongs to another employee")

	ErrCancellationNotAllowed = errors.New("cancellation not allowed")
)

// Cancellation refusal reasons.
const (
	ReasonAlreadyPassed      = "already passed"
	ReasonInsideNoticeWindow = "inside notice window"
)

// CancellationNotAllowedError carries the policy reason a cancellation
// request was refused.
type CancellationNotAllowedError struct {
	Reason string
}

func (e *CancellationNotAllowedError) Error() string {
	return fmt.Sprintf("cancellation not allowed: %s", e.Reason)
}

func (e *CancellationNotAllowedError) Unwrap() error {
	return ErrCancellationNotAllowed
}
