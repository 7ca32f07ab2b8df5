package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/greeter/internal/greeting"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceError converts resolver errors into an HTTP status and user message
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, greeting.ErrLocaleNotFound):
		return http.StatusNotFound, ErrMsgLocaleNotFound
	case errors.Is(err, greeting.ErrInvalidKey):
		return http.StatusBadRequest, ErrMsgInvalidKey
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
	// Store write failures: the value is live in memory
	return http.StatusServiceUnavailable, ErrMsgStoreUnavailable
}
