package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"homestock/internal/store"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Error().Err(err).Msg("encoding response")
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// storeError maps a store failure onto the HTTP surface: validation
// failures are the client's fault (400), unique-value conflicts are 409,
// anything else is a storage fault (500) reported with the fallback
// message.
func storeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case store.IsValidation(err):
		jsonError(w, http.StatusBadRequest, err.Error())
	case store.IsConflict(err):
		jsonError(w, http.StatusConflict, err.Error())
	default:
		log.Error().Err(err).Msg(fallback)
		jsonError(w, http.StatusInternalServerError, fallback)
	}
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
