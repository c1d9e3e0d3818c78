package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/storecrew/absence-backend-go/internal/domain/request"
	"github.com/storecrew/absence-backend-go/internal/domain/user"
	"github.com/storecrew/absence-backend-go/internal/handler/http/middleware"
	"github.com/storecrew/absence-backend-go/internal/handler/http/response"
)

type RequestHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	RequestCancel(w http.ResponseWriter, r *http.Request)
	ApproveCancel(w http.ResponseWriter, r *http.Request)
	DeclineCancel(w http.ResponseWriter, r *http.Request)
	Clashes(w http.ResponseWriter, r *http.Request)
}

type RequestHandlerImpl struct {
	requestService request.RequestService
}

func NewRequestHandler(requestService request.RequestService) RequestHandler {
	return &RequestHandlerImpl{requestService: requestService}
}

// Submit creates a pending request for the calling employee. Admins may
// submit on behalf of someone else by naming them in the body.
func (h *RequestHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	employeeID, role, err := middleware.Claims(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req request.SubmitRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if role != user.RoleAdmin || req.EmployeeID == "" {
		req.EmployeeID = employeeID
	}

	created, err := h.requestService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday request submitted", request.ToResponse(created))
}

// List implements RequestHandler.
func (h *RequestHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter request.RequestFilter
	if s := r.URL.Query().Get("status"); s != "" {
		status := request.Status(s)
		if !status.Valid() {
			response.BadRequest(w, "Invalid status filter", nil)
			return
		}
		filter.Status = &status
	}
	if id := r.URL.Query().Get("employee_id"); id != "" {
		filter.EmployeeID = &id
	}

	requests, err := h.requestService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListMine implements RequestHandler.
func (h *RequestHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID, _, err := middleware.Claims(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.requestService.ListMine(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Edit overwrites a pending request's type and range. Staff may only edit
// their own requests; admins may edit any.
func (h *RequestHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	employeeID, role, err := middleware.Claims(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req request.EditRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Edit request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	if role != user.RoleAdmin {
		req.RequesterID = employeeID
	}

	edited, err := h.requestService.EditPending(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday request updated", request.ToResponse(edited))
}

// Approve implements RequestHandler.
func (h *RequestHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	result, err := h.requestService.Approve(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday request approved", map[string]interface{}{
		"request":      request.ToResponse(result.Request),
		"days_applied": result.DaysApplied,
	})
}

// Reject implements RequestHandler.
func (h *RequestHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	rejected, err := h.requestService.Reject(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday request rejected", request.ToResponse(rejected))
}

// RequestCancel flags an approved request for cancellation review. Staff
// may only cancel their own; admins bypass the ownership check.
func (h *RequestHandlerImpl) RequestCancel(w http.ResponseWriter, r *http.Request) {
	employeeID, role, err := middleware.Claims(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	requesterID := employeeID
	if role == user.RoleAdmin {
		requesterID = ""
	}

	updated, err := h.requestService.RequestCancellation(r.Context(), id, requesterID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cancellation requested", request.ToResponse(updated))
}

// ApproveCancel implements RequestHandler.
func (h *RequestHandlerImpl) ApproveCancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	cancelled, err := h.requestService.ApproveCancellation(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday request cancelled", request.ToResponse(cancelled))
}

// DeclineCancel implements RequestHandler.
func (h *RequestHandlerImpl) DeclineCancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	restored, err := h.requestService.DeclineCancellation(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cancellation declined", request.ToResponse(restored))
}

// Clashes implements RequestHandler.
func (h *RequestHandlerImpl) Clashes(w http.ResponseWriter, r *http.Request) {
	report, err := h.requestService.DetectClashes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
