package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/PollPeak_Go/internal/domain"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are sent, nothing left to do but log.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	ErrMsgPersonNotFoundError    = "Person not found"
	ErrMsgAdventureNotFoundError = "No adventure recorded for that person"
	ErrMsgInvalidVoteFieldError  = "Vote field must be upvotes or downvotes"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrPersonNotFound):
		return http.StatusNotFound, ErrMsgPersonNotFoundError
	case errors.Is(err, domain.ErrAdventureNotFound):
		return http.StatusNotFound, ErrMsgAdventureNotFoundError
	case errors.Is(err, domain.ErrInvalidVoteField):
		return http.StatusBadRequest, ErrMsgInvalidVoteFieldError
	case errors.Is(err, domain.ErrDatasetInvalid):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
