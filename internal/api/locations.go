package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"homestock/internal/model"
	"homestock/internal/store"
)

// LocationsHandler handles location CRUD endpoints.
type LocationsHandler struct {
	DB *sql.DB
}

type createLocationRequest struct {
	Name string `json:"name"`
}

// List handles GET /api/locations.
func (h *LocationsHandler) List(w http.ResponseWriter, r *http.Request) {
	locations, err := store.ListLocations(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to list locations")
		return
	}
	if locations == nil {
		locations = []model.Location{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{"locations": locations})
}

// Create handles POST /api/locations.
func (h *LocationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLocationRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	location, err := store.CreateLocation(r.Context(), h.DB, req.Name)
	if err != nil {
		storeError(w, err, "failed to create location")
		return
	}

	jsonResponse(w, http.StatusCreated, location)
}

// Delete handles DELETE /api/locations/{id}. Items in the location become
// unassigned as part of the same operation.
func (h *LocationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid location id")
		return
	}

	if err := store.DeleteLocation(r.Context(), h.DB, id); err != nil {
		storeError(w, err, "failed to delete location")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]int64{"id": id})
}
