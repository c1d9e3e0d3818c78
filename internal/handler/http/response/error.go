package response

import (
	"errors"
	"net/http"

	"github.com/storecrew/absence-backend-go/internal/domain/absence"
	"github.com/storecrew/absence-backend-go/internal/domain/auth"
	"github.com/storecrew/absence-backend-go/internal/domain/employee"
	"github.com/storecrew/absence-backend-go/internal/domain/request"
	"github.com/storecrew/absence-backend-go/internal/domain/store"
	"github.com/storecrew/absence-backend-go/internal/domain/user"
	"github.com/storecrew/absence-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Cancellation refusals carry a policy reason
	var cancellationErr *request.CancellationNotAllowedError
	if errors.As(err, &cancellationErr) {
		UnprocessableEntity(w, "CANCELLATION_NOT_ALLOWED", cancellationErr.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrClaimsMissing):
		Unauthorized(w, "Required claims missing")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Store domain errors
	case errors.Is(err, store.ErrStoreNotFound):
		NotFound(w, "Store not found")
	case errors.Is(err, store.ErrStoreNameExists):
		Conflict(w, "Store name already exists")
	case errors.Is(err, store.ErrStoreInUse):
		Conflict(w, "Store still has employees assigned")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Absence domain errors
	case errors.Is(err, absence.ErrInvalidType):
		BadRequest(w, "Invalid absence type", nil)
	case errors.Is(err, absence.ErrWeekendDate):
		BadRequest(w, "Absence records are limited to weekdays", nil)
	case errors.Is(err, absence.ErrInvalidRange):
		BadRequest(w, "From date must not be after to date", nil)

	// Request domain errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Holiday request not found")
	case errors.Is(err, request.ErrInvalidRange):
		BadRequest(w, "Start date must not be after end date", nil)
	case errors.Is(err, request.ErrEmptyRange):
		BadRequest(w, "Requested range contains no weekdays", nil)
	case errors.Is(err, request.ErrStatePrecondition):
		Conflict(w, "Request is not in the required state")
	case errors.Is(err, request.ErrStaleState):
		Conflict(w, "Request was modified concurrently, reload and retry")
	case errors.Is(err, request.ErrNotRequestOwner):
		Forbidden(w, "Request belongs to another employee")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
