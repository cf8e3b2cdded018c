package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"homestock/internal/model"
	"homestock/internal/store"
)

// ItemsHandler handles item CRUD endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

type itemRequest struct {
	Name        *string  `json:"name"`
	Quantity    *int64   `json:"quantity"`
	LocationID  *int64   `json:"location_id"`
	PackageSize *float64 `json:"package_size"`
	PackageUnit *string  `json:"package_unit"`
	Brand       *string  `json:"brand"`
}

func (r itemRequest) input() store.ItemInput {
	in := store.ItemInput{
		Quantity:    r.Quantity,
		LocationID:  r.LocationID,
		PackageSize: r.PackageSize,
		PackageUnit: r.PackageUnit,
		Brand:       r.Brand,
	}
	if r.Name != nil {
		in.Name = *r.Name
	}
	return in
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListItems(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{"items": items})
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, req.input())
	if err != nil {
		storeError(w, err, "failed to create item")
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// Update handles PUT /api/items/{id}. A body without a name is the
// quantity-only variant the +/- buttons send; a body with a name is the
// full edit from the modal.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == nil {
		if req.Quantity == nil {
			jsonError(w, http.StatusBadRequest, "quantity required")
			return
		}
		if err := store.UpdateItemQuantity(r.Context(), h.DB, id, *req.Quantity); err != nil {
			storeError(w, err, "failed to update quantity")
			return
		}
		jsonResponse(w, http.StatusOK, map[string]int64{"id": id, "quantity": *req.Quantity})
		return
	}

	item, err := store.UpdateItemFields(r.Context(), h.DB, id, req.input())
	if err != nil {
		storeError(w, err, "failed to update item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := store.DeleteItem(r.Context(), h.DB, id); err != nil {
		storeError(w, err, "failed to delete item")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]int64{"id": id})
}
