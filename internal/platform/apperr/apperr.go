// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for Gutensearch.

It provides a rich error type that bridges the gap between low-level Storage
errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing machine-readable ErrorCode and user-friendly messages.
  - Taxonomy: Input validation, store communication and author graph failures each
    have a dedicated code so callers can branch on them without string matching.
  - Mapping: Explicit mapping from AppError to standard HTTP Status Codes.

Every error that leaves the service layer should be wrapped as an [AppError] to ensure
consistent API responses.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// # Error Codes

const (
	CodeNotFound            = "NOT_FOUND"
	CodeValidation          = "VALIDATION_ERROR"
	CodeUnsupportedLanguage = "UNSUPPORTED_LANGUAGE"
	CodeEmptyQuery          = "EMPTY_QUERY"
	CodeInvalidRange        = "INVALID_RANGE"
	CodeQueryTimeout        = "QUERY_TIMEOUT"
	CodeConnection          = "CONNECTION_ERROR"
	CodeAuthorNotFound      = "AUTHOR_NOT_FOUND"
	CodeNoPath              = "NO_PATH"
	CodeRateLimited         = "RATE_LIMITED"
	CodeInternal            = "INTERNAL_ERROR"
)

// AppError is the canonical error type for the Gutensearch API.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "EMPTY_QUERY", "NO_PATH").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"error"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the request parameter name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Input Validation Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Book") // Returns "Book not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// UnsupportedLanguage creates a 400 [AppError] for a language that has no
// matching text search configuration.
func UnsupportedLanguage(language string) *AppError {
	return &AppError{
		Code:       CodeUnsupportedLanguage,
		Message:    fmt.Sprintf("Language %q is not supported for full text search", language),
		HTTPStatus: http.StatusBadRequest,
		Details:    []FieldError{{Field: "language", Message: "Must be one of the supported languages"}},
	}
}

// EmptyQuery creates a 400 [AppError] for blank search terms.
func EmptyQuery() *AppError {
	return &AppError{
		Code:       CodeEmptyQuery,
		Message:    "Search terms must not be empty",
		HTTPStatus: http.StatusBadRequest,
		Details:    []FieldError{{Field: "q", Message: "This field is required"}},
	}
}

// InvalidRange creates a 400 [AppError] for out-of-bounds pagination values.
func InvalidRange(details ...FieldError) *AppError {
	return &AppError{
		Code:       CodeInvalidRange,
		Message:    "Row limit or starting row is out of range",
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// # Author Graph Errors (4xx)

// AuthorNotFound creates a 404 [AppError] naming the author missing from the graph.
func AuthorNotFound(name string) *AppError {
	return &AppError{
		Code:       CodeAuthorNotFound,
		Message:    fmt.Sprintf("Author %q was not found; check the spelling on Project Gutenberg", name),
		HTTPStatus: http.StatusNotFound,
	}
}

// NoPath creates a 404 [AppError] for two authors in disconnected components.
func NoPath(from, to string) *AppError {
	return &AppError{
		Code:       CodeNoPath,
		Message:    fmt.Sprintf("No path links %q and %q", from, to),
		HTTPStatus: http.StatusNotFound,
	}
}

// RateLimited creates a 429 [AppError].
func RateLimited(retryAfterSeconds int) *AppError {
	return &AppError{
		Code:       CodeRateLimited,
		Message:    fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds),
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// # Store Errors (5xx)

// QueryTimeout creates a 504 [AppError] for a store round trip that exceeded
// its deadline. The cause is stored for logging but is never sent to the client.
func QueryTimeout(cause error) *AppError {
	return &AppError{
		Code:       CodeQueryTimeout,
		Message:    "The search took too long. Try adding more or less common words.",
		HTTPStatus: http.StatusGatewayTimeout,
		Cause:      cause,
	}
}

// Connection creates a 503 [AppError] for any other store communication failure.
func Connection(cause error) *AppError {
	return &AppError{
		Code:       CodeConnection,
		Message:    "The search service is temporarily unavailable. Please try again.",
		HTTPStatus: http.StatusServiceUnavailable,
		Cause:      cause,
	}
}

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err carries an [*AppError] with the given code.
func HasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
