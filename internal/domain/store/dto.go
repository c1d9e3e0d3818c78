package store

import "github.com/storecrew/absence-backend-go/internal/pkg/validator"

type CreateStoreRequest struct {
	Name string `json:"store_name"`
}

func (r *CreateStoreRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_name",
			Message: "store_name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "store_name",
			Message: "store_name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStoreRequest struct {
	ID   string `json:"store_id"`
	Name string `json:"store_name"`
}

func (r *UpdateStoreRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_id",
			Message: "store_id is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_name",
			Message: "store_name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "store_name",
			Message: "store_name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StoreResponse struct {
	ID        string `json:"store_id"`
	Name      string `json:"store_name"`
	Employees int64  `json:"employee_count"`
}
