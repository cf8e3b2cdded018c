package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"

	"homestock/internal/metrics"
)

// NewRouter creates the API router with all endpoints registered. The
// metrics collector may be nil, in which case no /metrics endpoint is
// mounted and requests are not instrumented.
func NewRouter(db *sql.DB, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggingMiddleware)
	if m != nil {
		r.Use(m.Middleware())
		r.Get("/metrics", m.Handler().ServeHTTP)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	itemsHandler := &ItemsHandler{DB: db}
	locationsHandler := &LocationsHandler{DB: db}
	brandsHandler := &BrandsHandler{DB: db}
	viewHandler := &ViewHandler{DB: db}

	r.Route("/api", func(r chi.Router) {
		r.Get("/items", itemsHandler.List)
		r.Post("/items", itemsHandler.Create)
		r.Put("/items/{id}", itemsHandler.Update)
		r.Delete("/items/{id}", itemsHandler.Delete)

		r.Get("/locations", locationsHandler.List)
		r.Post("/locations", locationsHandler.Create)
		r.Delete("/locations/{id}", locationsHandler.Delete)

		r.Get("/brands", brandsHandler.List)
		r.Get("/view", viewHandler.Get)
	})

	return r
}
