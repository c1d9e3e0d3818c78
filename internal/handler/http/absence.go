package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/storecrew/absence-backend-go/internal/domain/absence"
	"github.com/storecrew/absence-backend-go/internal/handler/http/response"
)

type AbsenceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Toggle(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	SummaryEmployee(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService absence.AbsenceService
}

func NewAbsenceHandler(absenceService absence.AbsenceService) AbsenceHandler {
	return &AbsenceHandlerImpl{absenceService: absenceService}
}

// List serves the calendar grid: every absence record in [from, to],
// optionally narrowed to one employee.
func (h *AbsenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		response.BadRequest(w, "from and to query parameters are required", nil)
		return
	}

	var employeeID *string
	if id := r.URL.Query().Get("employee_id"); id != "" {
		employeeID = &id
	}

	records, err := h.absenceService.ListRange(r.Context(), from, to, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Toggle implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Toggle(w http.ResponseWriter, r *http.Request) {
	var req absence.ToggleAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Toggle absence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.absenceService.Toggle(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence recorded", nil)
}

// Remove implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Remove(w http.ResponseWriter, r *http.Request) {
	var req absence.RemoveAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Remove absence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.absenceService.Remove(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence removed", nil)
}

// Summary implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.absenceService.Summarize(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

// SummaryEmployee implements AbsenceHandler.
func (h *AbsenceHandlerImpl) SummaryEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "employeeID")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	summary, err := h.absenceService.SummarizeEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
