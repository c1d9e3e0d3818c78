package request

import (
	"context"
	"time"
)

// Clock abstracts "now" so the cancellation notice-window policy is
// deterministic under test.
type Clock interface {
	Now() time.Time
}

type RequestService interface {
	Submit(ctx context.Context, req SubmitRequestRequest) (HolidayRequest, error)
	Approve(ctx context.Context, requestID string) (ApprovalResult, error)
	Reject(ctx context.Context, requestID string) (HolidayRequest, error)
	RequestCancellation(ctx context.Context, requestID, requesterID string) (HolidayRequest, error)
	ApproveCancellation(ctx context.Context, requestID string) (HolidayRequest, error)
	DeclineCancellation(ctx context.Context, requestID string) (HolidayRequest, error)
	EditPending(ctx context.Context, req EditRequestRequest) (HolidayRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]RequestResponse, error)
	ListMine(ctx context.Context, employeeID string) ([]RequestResponse, error)
	DetectClashes(ctx context.Context) (ClashReport, error)
}
