package absence

import "github.com/storecrew/absence-backend-go/internal/pkg/validator"

type ToggleAbsenceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Type       string `json:"type"`
}

func (r *ToggleAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if !Type(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of H, S, P",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RemoveAbsenceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
}

func (r *RemoveAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Type       string `json:"type"`
	TypeLabel  string `json:"type_label"`
}

// EmployeeSummary is the per-employee balance line: counts by type and the
// remaining holiday entitlement. Sick and personal days never draw down the
// entitlement.
type EmployeeSummary struct {
	EmployeeID  string `json:"employee_id"`
	Name        string `json:"employee_name"`
	StoreName   string `json:"store_name"`
	Holiday     int    `json:"holiday"`
	Sick        int    `json:"sick"`
	Personal    int    `json:"personal"`
	Entitlement int    `json:"entitlement"`
	Remaining   int    `json:"remaining"`
}
