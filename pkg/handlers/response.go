// Package handlers exposes the back-office REST API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/agencydesk/backoffice/pkg/apperrors"
)

// ErrorResponse writes a JSON error response and returns any encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}

// writeAPIError maps the apperrors taxonomy onto HTTP statuses. Schema errors
// get 503 with the migration hint so operators see the real cause.
func writeAPIError(logger *zap.Logger, w http.ResponseWriter, err error, fallback string) {
	var werr error
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		werr = ErrorResponse(w, http.StatusBadRequest, "validation_failed", err.Error())
	case apperrors.IsSchemaError(err):
		werr = ErrorResponse(w, http.StatusServiceUnavailable, "schema_migration_required", err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		werr = ErrorResponse(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		werr = ErrorResponse(w, http.StatusNotFound, "not_found", "Not found")
	default:
		werr = ErrorResponse(w, http.StatusInternalServerError, "internal_error", fallback)
	}
	if werr != nil {
		logger.Error("Failed to write error response", zap.Error(werr))
	}
}
