// Package http is the inbound adapter: routes for the list resource API and
// the probes, plus the server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/handlers"
)

// NewRouter registers every route. Middleware runs in the order given, inside
// chi so the matched route pattern is visible to it. Unknown paths and
// methods answer with problem bodies like every other error.
func NewRouter(
	listHandler *handlers.ListHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteStatusResponse(w, r, http.StatusNotFound, dto.KindNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteStatusResponse(w, r, http.StatusMethodNotAllowed, dto.KindMethodNotAllowed)
	})

	// Probes sit outside /api.
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Lists.
	r.Get("/api/lists", listHandler.ListSummaries)
	r.Post("/api/lists", listHandler.CreateList)
	r.Get("/api/lists/{id}", listHandler.GetList)
	r.Patch("/api/lists/{id}", listHandler.RenameList)
	r.Delete("/api/lists/{id}", listHandler.DeleteList)

	// Items nested under a list.
	r.Post("/api/lists/{id}/items", listHandler.AddItem)
	r.Patch("/api/lists/{id}/items/{item_id}", listHandler.ToggleItem)
	r.Put("/api/lists/{id}/items/{item_id}", listHandler.EditItem)
	r.Delete("/api/lists/{id}/items/{item_id}", listHandler.RemoveItem)

	return r
}
