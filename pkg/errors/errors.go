// Package errors provides the unified error type and factory functions for
// ClaimScout. Every layer of the application (domain, application,
// infrastructure, interfaces) uses AppError as the single carrier for
// structured error information, enabling consistent HTTP responses and logging.
package errors

import (
	"errors"
	"fmt"
)

// AppError is the single structured error type used throughout ClaimScout.
// It satisfies the standard error interface and supports Go 1.13+ error
// wrapping so that errors.Is / errors.As / errors.Unwrap work transparently
// across all layers.
//
// Usage:
//
//	return errors.NewValidationError("text", "text is required")
//	return errors.Wrap(err, errors.CodeGeneration, "claim analysis failed")
type AppError struct {
	// Code is the typed error code identifying the failure category.
	Code ErrorCode

	// Message is the primary human-readable description, suitable for
	// inclusion in API responses returned to callers.
	Message string

	// Detail carries supplementary context (field names, entity IDs) that
	// aids debugging without leaking internals to end users.
	Detail string

	// Cause is the underlying error, enabling errors.Is / errors.As
	// traversal of the full chain.
	Cause error
}

// Error implements the standard error interface.
// Format: "[<code>] <message>: <detail>"; the detail segment is omitted when
// Detail is empty.
func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail returns a shallow copy of the receiver with Detail set.
// Safe to call on a nil pointer.
func (e *AppError) WithDetail(detail string) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Detail = detail
	return &clone
}

// New constructs a fresh AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap constructs an AppError that wraps an existing error. If err is nil,
// Wrap returns nil so it can be used inline. When err is already an *AppError
// and code is CodeUnknown the original code is preserved, preventing loss of
// the original classification during cross-layer propagation.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	if code == CodeUnknown {
		var ae *AppError
		if errors.As(err, &ae) {
			code = ae.Code
		}
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// NewValidationError constructs a CodeValidation AppError for a named input
// field.
func NewValidationError(field, message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message, Detail: "field=" + field}
}

// NewExtractionError constructs a CodeExtraction AppError.
func NewExtractionError(message string) *AppError {
	return &AppError{Code: CodeExtraction, Message: message}
}

// NewGenerationError constructs a CodeGeneration AppError wrapping the
// upstream failure. The upstream message is part of the API contract for the
// analyze operation, so it is folded into Message rather than hidden in Detail.
func NewGenerationError(message string, cause error) *AppError {
	return &AppError{Code: CodeGeneration, Message: message, Cause: cause}
}

// Internal constructs a CodeInternal AppError.
func Internal(message string) *AppError {
	return &AppError{Code: CodeInternal, Message: message}
}

// NotFound constructs a CodeNotFound AppError.
func NotFound(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

// IsCode reports whether any error in err's chain is an *AppError with the
// given code.
func IsCode(err error, code ErrorCode) bool {
	var ae *AppError
	for err != nil {
		if errors.As(err, &ae) && ae.Code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsValidation reports whether err's chain contains a validation error.
func IsValidation(err error) bool { return IsCode(err, CodeValidation) }

// IsExtraction reports whether err's chain contains an extraction error.
func IsExtraction(err error) bool { return IsCode(err, CodeExtraction) }

// IsGeneration reports whether err's chain contains a generation error.
func IsGeneration(err error) bool { return IsCode(err, CodeGeneration) }

// IsNotFound reports whether err's chain contains a not-found error.
func IsNotFound(err error) bool { return IsCode(err, CodeNotFound) }

// GetCode extracts the ErrorCode from the first *AppError in err's chain.
// If no *AppError is present, CodeUnknown is returned; nil yields CodeOK.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}
