package employee

import "github.com/storecrew/absence-backend-go/internal/pkg/validator"

type CreateEmployeeRequest struct {
	Name            string `json:"employee_name"`
	StoreID         string `json:"store_id"`
	EntitlementDays *int   `json:"entitlement_days,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name must not exceed 255 characters",
		})
	}
	if validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_id",
			Message: "store_id is required",
		})
	} else if !validator.IsValidUUID(r.StoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_id",
			Message: "store_id must be a valid UUID",
		})
	}
	if r.EntitlementDays != nil && *r.EntitlementDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "entitlement_days",
			Message: "entitlement_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID              string  `json:"employee_id"`
	Name            *string `json:"employee_name,omitempty"`
	StoreID         *string `json:"store_id,omitempty"`
	EntitlementDays *int    `json:"entitlement_days,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name must not be empty",
		})
	}
	if r.StoreID != nil && !validator.IsValidUUID(*r.StoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_id",
			Message: "store_id must be a valid UUID",
		})
	}
	if r.EntitlementDays != nil && *r.EntitlementDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "entitlement_days",
			Message: "entitlement_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID              string `json:"employee_id"`
	Name            string `json:"employee_name"`
	StoreID         string `json:"store_id"`
	StoreName       string `json:"store_name,omitempty"`
	EntitlementDays int    `json:"entitlement_days"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:              e.ID,
		Name:            e.Name,
		StoreID:         e.StoreID,
		EntitlementDays: e.EntitlementDays,
	}
	if e.StoreName != nil {
		resp.StoreName = *e.StoreName
	}
	return resp
}
