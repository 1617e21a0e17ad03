// Package handlers contains the HTTP request handlers and their shared
// response helpers.
package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/turtacn/ClaimScout/pkg/errors"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Message string `json:"message"`
}

// writeError writes a structured error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Message: message})
}

// writeAppError maps application-level errors to HTTP status codes. Client
// errors carry their own message; server errors are masked and must be
// logged by the caller.
func writeAppError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatusForCode(code)
	if status >= http.StatusInternalServerError {
		writeError(w, status, "internal server error")
		return
	}
	message := err.Error()
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		message = appErr.Message
	}
	writeError(w, status, message)
}
