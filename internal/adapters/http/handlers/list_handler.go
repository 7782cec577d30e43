// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
)

// ListHandler handles HTTP requests for lists and their nested items.
// Handlers extract path parameters, decode bodies, and map errors; id format
// and emptiness rules are enforced below the HTTP layer.
type ListHandler struct {
	svc ports.ListService
}

// NewListHandler creates a new ListHandler with the given service port.
func NewListHandler(svc ports.ListService) *ListHandler {
	return &ListHandler{svc: svc}
}

// ListSummaries handles GET /api/lists.
func (h *ListHandler) ListSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.ListSummaries(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToSummaryResponses(summaries))
}

// CreateList handles POST /api/lists.
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateListRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	created, err := h.svc.CreateList(r.Context(), req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToCreateListResponse(created))
}

// GetList handles GET /api/lists/{id}.
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.GetList(r.Context(), chi.URLParam(r, ParamListID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListResponse(list))
}

// RenameList handles PATCH /api/lists/{id}.
func (h *ListHandler) RenameList(w http.ResponseWriter, r *http.Request) {
	var req dto.RenameListRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	list, err := h.svc.RenameList(r.Context(), chi.URLParam(r, ParamListID), req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListResponse(list))
}

// DeleteList handles DELETE /api/lists/{id}. An absent list answers 200
// with deleted=false.
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.svc.DeleteList(r.Context(), chi.URLParam(r, ParamListID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DeleteListResponse{Deleted: deleted})
}

// AddItem handles POST /api/lists/{id}/items.
func (h *ListHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateItemRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	list, err := h.svc.AddItem(r.Context(), chi.URLParam(r, ParamListID), req.Label)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToListResponse(list))
}

// ToggleItem handles PATCH /api/lists/{id}/items/{item_id}.
func (h *ListHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ToggleItem(r.Context(), chi.URLParam(r, ParamListID), chi.URLParam(r, ParamItemID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListResponse(list))
}

// EditItem handles PUT /api/lists/{id}/items/{item_id}.
func (h *ListHandler) EditItem(w http.ResponseWriter, r *http.Request) {
	var req dto.EditItemRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	list, err := h.svc.EditItem(r.Context(), chi.URLParam(r, ParamListID), chi.URLParam(r, ParamItemID), req.Label)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListResponse(list))
}

// RemoveItem handles DELETE /api/lists/{id}/items/{item_id}.
func (h *ListHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.RemoveItem(r.Context(), chi.URLParam(r, ParamListID), chi.URLParam(r, ParamItemID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListResponse(list))
}
