package backend

import (
	"errors"
	"fmt"

	dErrors "soloparent/pkg/domain-errors"
)

// ErrorCategory is the normalized failure taxonomy for backend calls.
type ErrorCategory string

const (
	// ErrorTimeout indicates the backend did not answer before the context deadline
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorBadData indicates a response body that could not be decoded
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorAuthentication indicates the admin's backend credential was refused
	ErrorAuthentication ErrorCategory = "authentication"

	// ErrorUnavailable indicates a transport failure or a 5xx
	ErrorUnavailable ErrorCategory = "unavailable"

	// ErrorNotFound indicates the addressed record does not exist
	ErrorNotFound ErrorCategory = "not_found"

	// ErrorRejected indicates the backend refused the request as invalid (400/422)
	ErrorRejected ErrorCategory = "rejected"

	// ErrorConflict indicates the action was already applied (409 or success=false)
	ErrorConflict ErrorCategory = "conflict"

	// ErrorLimited indicates the backend's own limit was reached (429)
	ErrorLimited ErrorCategory = "limited"

	// ErrorInternal indicates an unexpected client-side failure
	ErrorInternal ErrorCategory = "internal"
)

// Error wraps a failed backend call with its endpoint and normalized category.
type Error struct {
	Category   ErrorCategory
	Endpoint   string
	Status     int
	Message    string
	Underlying error
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("backend %s [%s]: %s: %v", e.Endpoint, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("backend %s [%s]: %s", e.Endpoint, e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

func newError(category ErrorCategory, endpoint, message string, underlying error) *Error {
	return &Error{Category: category, Endpoint: endpoint, Message: message, Underlying: underlying}
}

// CategoryOf extracts the category from an error, ErrorInternal when it is not a backend error.
func CategoryOf(err error) ErrorCategory {
	var be *Error
	if errors.As(err, &be) {
		return be.Category
	}
	return ErrorInternal
}

// ToDomain converts a backend failure into a domain error carrying msg. Errors that are not
// backend errors are wrapped as internal.
func ToDomain(err error, msg string) error {
	if err == nil {
		return nil
	}
	var be *Error
	if !errors.As(err, &be) {
		return dErrors.Wrap(err, dErrors.CodeInternal, msg)
	}
	var code dErrors.Code
	switch be.Category {
	case ErrorTimeout:
		code = dErrors.CodeTimeout
	case ErrorAuthentication:
		code = dErrors.CodeUnauthorized
	case ErrorNotFound:
		code = dErrors.CodeNotFound
	case ErrorRejected:
		code = dErrors.CodeBadRequest
	case ErrorConflict:
		code = dErrors.CodeConflict
	case ErrorLimited:
		code = dErrors.CodeQuotaExceeded
	case ErrorUnavailable, ErrorBadData:
		code = dErrors.CodeUpstreamUnavailable
	default:
		code = dErrors.CodeInternal
	}
	if be.Category == ErrorConflict && be.Message != "" {
		msg = be.Message
	}
	return &dErrors.Error{Code: code, Message: msg, Err: err}
}
