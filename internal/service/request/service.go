package request

import (
	"context"
	"fmt"
	"time"

	"github.com/storecrew/absence-backend-go/internal/domain/absence"
	"github.com/storecrew/absence-backend-go/internal/domain/employee"
	"github.com/storecrew/absence-backend-go/internal/domain/request"
	"github.com/storecrew/absence-backend-go/internal/pkg/dates"
)

// cancellationNotice is how far in the future a request must start before
// staff may ask to cancel it. Inside the window the rota is considered
// locked.
const cancellationNotice = 4 * 7 * 24 * time.Hour

// Transactor runs a function inside a single database transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type RequestServiceImpl struct {
	tx Transactor
	request.HolidayRequestRepository
	absence.AbsenceRepository
	employee.EmployeeRepository
	clock request.Clock
}

func NewRequestService(
	tx Transactor,
	requestRepository request.HolidayRequestRepository,
	absenceRepository absence.AbsenceRepository,
	employeeRepository employee.EmployeeRepository,
	clock request.Clock,
) request.RequestService {
	return &RequestServiceImpl{
		tx:                       tx,
		HolidayRequestRepository: requestRepository,
		AbsenceRepository:        absenceRepository,
		EmployeeRepository:       employeeRepository,
		clock:                    clock,
	}
}

// Submit implements request.RequestService.
func (s *RequestServiceImpl) Submit(ctx context.Context, req request.SubmitRequestRequest) (request.HolidayRequest, error) {
	if err := req.Validate(); err != nil {
		return request.HolidayRequest{}, err
	}

	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return request.HolidayRequest{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return request.HolidayRequest{}, err
	}

	created, err := s.HolidayRequestRepository.Create(ctx, request.HolidayRequest{
		EmployeeID: req.EmployeeID,
		Type:       absence.Type(req.Type),
		StartDate:  start,
		EndDate:    end,
		Status:     request.StatusPending,
	})
	if err != nil {
		return request.HolidayRequest{}, fmt.Errorf("failed to create holiday request: %w", err)
	}

	return created, nil
}

// Approve moves a pending request to approved and materializes its weekday
// absence records. The status flip and the absence writes commit together
// or not at all.
func (s *RequestServiceImpl) Approve(ctx context.Context, requestID string) (request.ApprovalResult, error) {
	req, err := s.HolidayRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return request.ApprovalResult{}, err
	}
	if _, err := request.Next(req.Status, request.EventApprove); err != nil {
		return request.ApprovalResult{}, err
	}

	// Refuse before any write: an approved request must always correspond
	// to at least one absence record.
	days := dates.ExpandWeekdays(req.StartDate, req.EndDate)
	if len(days) == 0 {
		return request.ApprovalResult{}, request.ErrEmptyRange
	}

	reviewedAt := s.clock.Now()
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		moved, err := s.HolidayRequestRepository.UpdateStatusIf(ctx,
			req.ID, request.StatusPending, request.StatusApproved, &reviewedAt)
		if err != nil {
			return err
		}
		if !moved {
			return request.ErrStaleState
		}

		records := make([]absence.Record, 0, len(days))
		for _, day := range days {
			records = append(records, absence.Record{
				EmployeeID: req.EmployeeID,
				Date:       day,
				Type:       req.Type,
			})
		}
		return s.AbsenceRepository.UpsertBatch(ctx, records)
	})
	if err != nil {
		return request.ApprovalResult{}, err
	}

	req.Status = request.StatusApproved
	req.ReviewedAt = &reviewedAt
	return request.ApprovalResult{Request: req, DaysApplied: len(days)}, nil
}

// Reject implements request.RequestService.
func (s *RequestServiceImpl) Reject(ctx context.Context, requestID string) (request.HolidayRequest, error) {
	return s.transition(ctx, requestID, request.EventReject, true)
}

// RequestCancellation flags an approved request for admin review. Staff can
// only do this while the request starts far enough out; past or imminent
// time off stays on the calendar.
func (s *RequestServiceImpl) RequestCancellation(ctx context.Context, requestID, requesterID string) (request.HolidayRequest, error) {
	req, err := s.HolidayRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return request.HolidayRequest{}, err
	}
	if requesterID != "" && req.EmployeeID != requesterID {
		return request.HolidayRequest{}, request.ErrNotRequestOwner
	}
	to, err := request.Next(req.Status, request.EventRequestCancel)
	if err != nil {
		return request.HolidayRequest{}, err
	}

	now := s.clock.Now()
	if !req.EndDate.After(now) {
		return request.HolidayRequest{}, &request.CancellationNotAllowedError{Reason: request.ReasonAlreadyPassed}
	}
	if !req.StartDate.After(now.Add(cancellationNotice)) {
		return request.HolidayRequest{}, &request.CancellationNotAllowedError{Reason: request.ReasonInsideNoticeWindow}
	}

	moved, err := s.HolidayRequestRepository.UpdateStatusIf(ctx, req.ID, req.Status, to, nil)
	if err != nil {
		return request.HolidayRequest{}, err
	}
	if !moved {
		return request.HolidayRequest{}, request.ErrStaleState
	}

	req.Status = to
	return req, nil
}

// ApproveCancellation finalizes a cancellation: the request becomes
// cancelled and its weekday absence records come off the calendar in the
// same transaction. Days already removed by a direct edit are skipped.
func (s *RequestServiceImpl) ApproveCancellation(ctx context.Context, requestID string) (request.HolidayRequest, error) {
	req, err := s.HolidayRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return request.HolidayRequest{}, err
	}
	to, err := request.Next(req.Status, request.EventApproveCancel)
	if err != nil {
		return request.HolidayRequest{}, err
	}

	days := dates.ExpandWeekdays(req.StartDate, req.EndDate)
	reviewedAt := s.clock.Now()

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		moved, err := s.HolidayRequestRepository.UpdateStatusIf(ctx, req.ID, req.Status, to, &reviewedAt)
		if err != nil {
			return err
		}
		if !moved {
			return request.ErrStaleState
		}
		_, err = s.AbsenceRepository.DeleteBatch(ctx, req.EmployeeID, days)
		return err
	})
	if err != nil {
		return request.HolidayRequest{}, err
	}

	req.Status = to
	req.ReviewedAt = &reviewedAt
	return req, nil
}

// DeclineCancellation implements request.RequestService.
func (s *RequestServiceImpl) DeclineCancellation(ctx context.Context, requestID string) (request.HolidayRequest, error) {
	return s.transition(ctx, requestID, request.EventDeclineCancel, true)
}

// EditPending implements request.RequestService.
func (s *RequestServiceImpl) EditPending(ctx context.Context, req request.EditRequestRequest) (request.HolidayRequest, error) {
	if err := req.Validate(); err != nil {
		return request.HolidayRequest{}, err
	}

	current, err := s.HolidayRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return request.HolidayRequest{}, err
	}
	if req.RequesterID != "" && current.EmployeeID != req.RequesterID {
		return request.HolidayRequest{}, request.ErrNotRequestOwner
	}
	if current.Status != request.StatusPending {
		return request.HolidayRequest{}, request.ErrStatePrecondition
	}

	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return request.HolidayRequest{}, err
	}

	if err := s.HolidayRequestRepository.UpdateFields(ctx, req.ID, absence.Type(req.Type), start, end); err != nil {
		return request.HolidayRequest{}, err
	}

	return s.HolidayRequestRepository.GetByID(ctx, req.ID)
}

// List implements request.RequestService.
func (s *RequestServiceImpl) List(ctx context.Context, filter request.RequestFilter) ([]request.RequestResponse, error) {
	requests, err := s.HolidayRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list holiday requests: %w", err)
	}

	responses := make([]request.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, request.ToResponse(req))
	}
	return responses, nil
}

// ListMine implements request.RequestService.
func (s *RequestServiceImpl) ListMine(ctx context.Context, employeeID string) ([]request.RequestResponse, error) {
	return s.List(ctx, request.RequestFilter{EmployeeID: &employeeID})
}

// DetectClashes implements request.RequestService.
func (s *RequestServiceImpl) DetectClashes(ctx context.Context) (request.ClashReport, error) {
	pendingStatus := request.StatusPending
	pending, err := s.HolidayRequestRepository.List(ctx, request.RequestFilter{Status: &pendingStatus})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	absences, err := s.AbsenceRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}

	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return request.DetectClashes(pending, absences, employees), nil
}

// transition applies a single-step event that touches no absence records.
func (s *RequestServiceImpl) transition(ctx context.Context, requestID string, event request.Event, stampReview bool) (request.HolidayRequest, error) {
	req, err := s.HolidayRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return request.HolidayRequest{}, err
	}
	to, err := request.Next(req.Status, event)
	if err != nil {
		return request.HolidayRequest{}, err
	}

	var reviewedAt *time.Time
	if stampReview {
		now := s.clock.Now()
		reviewedAt = &now
	}

	moved, err := s.HolidayRequestRepository.UpdateStatusIf(ctx, req.ID, req.Status, to, reviewedAt)
	if err != nil {
		return request.HolidayRequest{}, err
	}
	if !moved {
		return request.HolidayRequest{}, request.ErrStaleState
	}

	req.Status = to
	if reviewedAt != nil {
		req.ReviewedAt = reviewedAt
	}
	return req, nil
}

func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(dates.Layout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse(dates.Layout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	start, end = dates.Normalize(start), dates.Normalize(end)
	if start.After(end) {
		return time.Time{}, time.Time{}, request.ErrInvalidRange
	}
	return start, end, nil
}
