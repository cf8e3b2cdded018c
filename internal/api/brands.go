package api

import (
	"database/sql"
	"net/http"

	"homestock/internal/store"
)

// BrandsHandler serves the derived brand list.
type BrandsHandler struct {
	DB *sql.DB
}

// List handles GET /api/brands. Brands are recomputed from live item rows
// on every read.
func (h *BrandsHandler) List(w http.ResponseWriter, r *http.Request) {
	brands, err := store.ListDistinctBrands(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to list brands")
		return
	}
	if brands == nil {
		brands = []string{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{"brands": brands})
}
