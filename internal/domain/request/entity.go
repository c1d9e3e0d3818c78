package request

import (
	"time"

	"github.com/storecrew/absence-backend-go/internal/domain/absence"
)

type Status string

const (
	StatusPending       Status = "pending"
	StatusApproved      Status = "approved"
	StatusRejected      Status = "rejected"
	StatusCancelPending Status = "cancel_pending"
	StatusCancelled     Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelPending, StatusCancelled:
		return true
	}
	return false
}

// Event names an action that moves a request through its lifecycle.
type Event string

const (
	EventApprove       Event = "approve"
	EventReject        Event = "reject"
	EventRequestCancel Event = "request_cancel"
	EventApproveCancel Event = "approve_cancel"
	EventDeclineCancel Event = "decline_cancel"
)

// transitions is the closed state machine:
//
//	pending --approve--> approved --request_cancel--> cancel_pending --approve_cancel--> cancelled
//	pending --reject-->  rejected
//	cancel_pending --decline_cancel--> approved
var transitions = map[Status]map[Event]Status{
	StatusPending: {
		EventApprove: StatusApproved,
		EventReject:  StatusRejected,
	},
	StatusApproved: {
		EventRequestCancel: StatusCancelPending,
	},
	StatusCancelPending: {
		EventApproveCancel: StatusCancelled,
		EventDeclineCancel: StatusApproved,
	},
}

// Next returns the status that event leads to from the current status, or
// ErrStatePrecondition when the transition is not in the table. Rejected and
// cancelled are terminal.
func Next(from Status, event Event) (Status, error) {
	if to, ok := transitions[from][event]; ok {
		return to, nil
	}
	return "", ErrStatePrecondition
}

// HolidayRequest is a staff-submitted ask for a contiguous date range.
// Weekends are excluded when the range is expanded into absence records.
type HolidayRequest struct {
	ID         string
	EmployeeID string
	Type       absence.Type
	StartDate  time.Time
	EndDate    time.Time
	Status     Status
	CreatedAt  time.Time
	ReviewedAt *time.Time
	UpdatedAt  time.Time

	// Relationships (for responses)
	EmployeeName *string
	StoreID      *string
	StoreName    *string
}
