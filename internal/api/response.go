package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/stocksync/stocksync/internal/store"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20)).Decode(target)
}

// storeError maps a store rejection to a response. Anything unrecognized is
// logged and reported as a failure to perform action.
func storeError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, store.ErrDuplicateSKU):
		jsonError(w, http.StatusConflict, "sku already exists")
	case errors.Is(err, store.ErrNotFound):
		jsonError(w, http.StatusNotFound, "product not found")
	case errors.Is(err, store.ErrInvalidQuantity), errors.Is(err, store.ErrInvalidDirection):
		jsonError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("failed to "+action, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to "+action)
	}
}
