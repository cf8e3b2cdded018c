package api

import (
	"database/sql"
	"net/http"

	"homestock/internal/store"
	"homestock/internal/view"
)

// ViewHandler composes the grouped or search-ranked display structure
// server-side, so the client renders exactly what storage holds.
type ViewHandler struct {
	DB *sql.DB
}

// Get handles GET /api/view?q=. An empty query yields items grouped by
// location with a trailing Unassigned group; a non-empty query yields a
// flat relevance-ranked result list.
func (h *ViewHandler) Get(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListItems(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to list items")
		return
	}

	locations, err := store.ListLocations(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to list locations")
		return
	}

	composed := view.Compose(items, locations, r.URL.Query().Get("q"))
	jsonResponse(w, http.StatusOK, composed)
}
