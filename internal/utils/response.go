package utils

import (
	"encoding/json"
	"net/http"
)

// SendJSON writes v as a JSON response with the given status code.
func SendJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// The status line is already on the wire at this point, so there is
		// nothing useful left to send the client.
	}
}

// ErrorResponse builds the single-error failure envelope.
func ErrorResponse(message string) map[string]interface{} {
	return map[string]interface{}{
		"success": false,
		"error":   message,
	}
}

// ValidationErrorResponse builds the failure envelope carrying the list of
// field validation errors.
func ValidationErrorResponse(errs []string) map[string]interface{} {
	return map[string]interface{}{
		"success": false,
		"errors":  errs,
	}
}
