// Package api holds the JSON response helpers and error-to-status mapping
// shared by the HTTP handlers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mytheresa/go-inventory/models"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// InternalErrorMessage replaces the detail of unexpected failures.
const InternalErrorMessage = "internal server error"

// OKResponse writes data as JSON with the given status code.
func OKResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent, an encode failure cannot change the response.
	_ = json.NewEncoder(w).Encode(data)
}

// ErrorResponseJSON writes {"error": message} with the given status code.
func ErrorResponseJSON(w http.ResponseWriter, status int, message string) {
	OKResponse(w, status, ErrorResponse{Error: message})
}

// NoContent writes a bare 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// StatusFor maps the models error taxonomy onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConstraintViolation):
		return http.StatusConflict
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteError maps err to a status and writes it. Unexpected failures are
// logged and answered with a generic message.
func WriteError(w http.ResponseWriter, log logrus.FieldLogger, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).Error("Unhandled error while serving request")
		ErrorResponseJSON(w, status, InternalErrorMessage)
		return
	}
	ErrorResponseJSON(w, status, err.Error())
}

// DecodeJSON decodes the request body into v.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return models.NewValidationError("body", "is not valid JSON: "+err.Error())
	}
	return nil
}
