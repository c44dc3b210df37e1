package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// MessageResponse represents a plain message payload used for
// confirmations, not-found and conflict responses.
// swagger:model MessageResponse
type MessageResponse struct {
	// Message text
	// default: user 1 has been deleted
	Message string `json:"message"`
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseID extracts a numeric URL parameter. A non-numeric value is
// treated by callers the same way as a row that does not exist.
func parseID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
