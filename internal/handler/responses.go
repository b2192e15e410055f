package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mwren/craftcost/internal/domain"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceError converts a service error to an HTTP status and a user
// message that does not leak internal detail.
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, domain.ErrMsgItemNotFound
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, domain.ErrMsgInvalidQuantity
	case errors.Is(err, domain.ErrMissingReference):
		return http.StatusInternalServerError, domain.ErrMsgMissingReference
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
