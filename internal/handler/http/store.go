package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/storecrew/absence-backend-go/internal/domain/store"
	"github.com/storecrew/absence-backend-go/internal/handler/http/response"
)

type StoreHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type StoreHandlerImpl struct {
	storeService store.StoreService
}

func NewStoreHandler(storeService store.StoreService) StoreHandler {
	return &StoreHandlerImpl{storeService: storeService}
}

// List implements StoreHandler.
func (h *StoreHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	stores, err := h.storeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stores)
}

// Create implements StoreHandler.
func (h *StoreHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req store.CreateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create store decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.storeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Store created successfully", created)
}

// Update implements StoreHandler.
func (h *StoreHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req store.UpdateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update store decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.storeService.Update(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Store updated successfully", nil)
}

// Delete implements StoreHandler.
func (h *StoreHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Store ID is required", nil)
		return
	}

	if err := h.storeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Store deleted successfully", nil)
}
