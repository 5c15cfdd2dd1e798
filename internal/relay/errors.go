package relay

import (
	"errors"
	"net/http"
)

// Category is the short machine-usable error class surfaced to callers.
type Category string

const (
	// CategoryValidation — the caller supplied malformed input. Never
	// retried, always surfaced with a specific reason.
	CategoryValidation Category = "validation_error"

	// CategoryInvalidInput — the upstream rejected the content itself
	// (synthesis only; e.g., malformed SSML).
	CategoryInvalidInput Category = "invalid_input"

	// CategoryUnavailable — a transient upstream condition: quota, rate
	// limit, permission, or resource exhaustion. Surfaced with a
	// retry-later hint; the relay never retries on its own.
	CategoryUnavailable Category = "service_unavailable"

	// CategoryTranslationFailed — opaque upstream translation failure.
	CategoryTranslationFailed Category = "translation_failed"

	// CategorySynthesisFailed — opaque upstream synthesis failure.
	CategorySynthesisFailed Category = "synthesis_failed"
)

// Error is the structured error every relay boundary converts to. Detail is
// the caller-visible message and deliberately never carries upstream
// internals; the wrapped cause is kept for logs only.
type Error struct {
	Category Category
	Status   int
	Detail   string
	cause    error
}

func (e *Error) Error() string {
	return string(e.Category) + ": " + e.Detail
}

func (e *Error) Unwrap() error { return e.cause }

// WithCause attaches the underlying error for logging without changing the
// caller-visible detail.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// NewValidation builds a 400 validation error.
func NewValidation(detail string) *Error {
	return &Error{Category: CategoryValidation, Status: http.StatusBadRequest, Detail: detail}
}

// NewInvalidInput builds a 400 upstream-rejected-content error.
func NewInvalidInput(detail string) *Error {
	return &Error{Category: CategoryInvalidInput, Status: http.StatusBadRequest, Detail: detail}
}

// NewUnavailable builds a service_unavailable error with the given status
// (403 for permission/configuration, 429 for quota and rate limits).
func NewUnavailable(status int, detail string) *Error {
	return &Error{Category: CategoryUnavailable, Status: status, Detail: detail}
}

// NewTranslationFailed builds a generic 500 translation error.
func NewTranslationFailed(detail string) *Error {
	return &Error{Category: CategoryTranslationFailed, Status: http.StatusInternalServerError, Detail: detail}
}

// NewSynthesisFailed builds a generic 500 synthesis error.
func NewSynthesisFailed(detail string) *Error {
	return &Error{Category: CategorySynthesisFailed, Status: http.StatusInternalServerError, Detail: detail}
}

// HTTPStatus maps any error to the response status code. Errors that did not
// pass through the relay taxonomy degrade to a 500.
func HTTPStatus(err error) int {
	var re *Error
	if errors.As(err, &re) {
		return re.Status
	}
	return http.StatusInternalServerError
}

// CategoryOf maps any error to its caller-visible category.
func CategoryOf(err error) Category {
	var re *Error
	if errors.As(err, &re) {
		return re.Category
	}
	return "internal_error"
}

// DetailOf maps any error to its caller-visible detail string.
func DetailOf(err error) string {
	var re *Error
	if errors.As(err, &re) {
		return re.Detail
	}
	return "internal server error"
}
