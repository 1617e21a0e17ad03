package errors

import "net/http"

// ErrorCode identifies a failure category.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

const (
	CodeOK       ErrorCode = "OK"
	CodeUnknown  ErrorCode = "UNKNOWN"
	CodeInternal ErrorCode = "INTERNAL"
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeValidation covers malformed, missing, or empty caller input.
	CodeValidation ErrorCode = "VALIDATION"

	// CodeExtraction covers failures to extract text from an uploaded document.
	CodeExtraction ErrorCode = "EXTRACTION"

	// CodeGeneration covers failures of the external analysis generator,
	// including unparsable upstream content.
	CodeGeneration ErrorCode = "GENERATION"

	// CodeStore covers corpus store faults. The in-memory store cannot
	// actually fail, but the handler contract keeps the category so a
	// durable implementation stays interchangeable.
	CodeStore ErrorCode = "STORE"
)

// errorCodeHTTPStatus maps ErrorCodes to HTTP status codes. Validation,
// extraction, and generation failures are client errors per the API contract;
// their messages are passed through to callers, server-side categories are not.
var errorCodeHTTPStatus = map[ErrorCode]int{
	CodeInternal:   http.StatusInternalServerError,
	CodeNotFound:   http.StatusNotFound,
	CodeValidation: http.StatusBadRequest,
	CodeExtraction: http.StatusBadRequest,
	CodeGeneration: http.StatusBadRequest,
	CodeStore:      http.StatusInternalServerError,
}

// HTTPStatusForCode returns the HTTP status for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// IsClientError reports whether the code maps to a 4xx status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError reports whether the code maps to a 5xx status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}
