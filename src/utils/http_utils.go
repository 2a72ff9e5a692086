package utils

import (
	"encoding/json"
	"net/http"

	"github.com/username/fopzvit/src/logger"
)

// SendJSONError is a helper function to send JSON formatted error responses.
func SendJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if logger.L != nil {
		logger.L.Warn("Sending JSON error to client", "message", message, "statusCode", statusCode)
	}
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// SendJSONValidationErrors sends a collected list of validation errors.
// Validation failures block only the requested action, so they get a
// dedicated envelope instead of the single-message error one.
func SendJSONValidationErrors(w http.ResponseWriter, errs []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	if logger.L != nil {
		logger.L.Warn("Sending validation errors to client", "count", len(errs))
	}
	json.NewEncoder(w).Encode(map[string][]string{"errors": errs})
}
