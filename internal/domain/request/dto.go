package request

import (
	"time"

	"github.com/storecrew/absence-backend-go/internal/domain/absence"
	"github.com/storecrew/absence-backend-go/internal/pkg/dates"
	"github.com/storecrew/absence-backend-go/internal/pkg/validator"
)

type SubmitRequestRequest struct {
	EmployeeID string `json:"employee_id"` // set from JWT claims, not client input
	Type       string `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *SubmitRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !absence.Type(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of H, S, P",
		})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EditRequestRequest struct {
	ID          string `json:"request_id"`
	RequesterID string `json:"-"` // set from JWT claims
	Type        string `json:"type"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

func (r *EditRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}
	if !absence.Type(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of H, S, P",
		})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestFilter struct {
	Status     *Status
	EmployeeID *string
}

type RequestResponse struct {
	ID           string  `json:"request_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	StoreName    string  `json:"store_name,omitempty"`
	Type         string  `json:"type"`
	TypeLabel    string  `json:"type_label"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	ReviewedAt   *string `json:"reviewed_at,omitempty"`
}

func ToResponse(r HolidayRequest) RequestResponse {
	resp := RequestResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Type:       string(r.Type),
		TypeLabel:  r.Type.Label(),
		StartDate:  r.StartDate.Format(dates.Layout),
		EndDate:    r.EndDate.Format(dates.Layout),
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
	if r.EmployeeName != nil {
		resp.EmployeeName = *r.EmployeeName
	}
	if r.StoreName != nil {
		resp.StoreName = *r.StoreName
	}
	if r.ReviewedAt != nil {
		reviewed := r.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &reviewed
	}
	return resp
}

// ApprovalResult reports how many weekday absence records an approval wrote.
type ApprovalResult struct {
	Request     HolidayRequest `json:"request"`
	DaysApplied int            `json:"days_applied"`
}

// ClashReport maps a pending request id to the deduplicated names of
// same-store employees whose time off overlaps it. Requests without
// clashes are omitted.
type ClashReport map[string][]string
