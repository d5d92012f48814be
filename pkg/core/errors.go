package core

import (
	"fmt"
)

// ErrorCategory groups errors by how the session reacts to them.
type ErrorCategory string

// Error categories.
const (
	// ErrCategoryTransport covers query/connect-level failures. A transport
	// failure aborts the current catalog build but not the session.
	ErrCategoryTransport ErrorCategory = "transport"

	// ErrCategoryInspection covers failures while reading one element's
	// attributes. The element is skipped and the build continues.
	ErrCategoryInspection ErrorCategory = "inspection"

	// ErrCategoryValidation covers operator choices incompatible with the
	// target element. The action is discarded and recording continues.
	ErrCategoryValidation ErrorCategory = "validation"

	// ErrCategoryInput covers malformed menu/prompt input. The prompt
	// repeats; never fatal.
	ErrCategoryInput ErrorCategory = "input"
)

// SessionError is a structured error with a category and an underlying cause.
type SessionError struct {
	Category ErrorCategory
	Code     string // machine-readable: element_not_found, not_editable, ...
	Message  string
	Cause    error
}

// Error implements the error interface.
func (e *SessionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *SessionError) Unwrap() error {
	return e.Cause
}

// Is matches on the error code, so WithCause copies still compare equal
// to their sentinel.
func (e *SessionError) Is(target error) bool {
	t, ok := target.(*SessionError)
	return ok && t.Code == e.Code
}

// WithCause returns a copy of the error with the given cause.
func (e *SessionError) WithCause(cause error) *SessionError {
	return &SessionError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Cause:    cause,
	}
}

// Predefined errors.
var (
	ErrQueryFailed = &SessionError{
		Category: ErrCategoryTransport,
		Code:     "query_failed",
		Message:  "element query failed",
	}
	ErrServerUnreachable = &SessionError{
		Category: ErrCategoryTransport,
		Code:     "server_unreachable",
		Message:  "could not connect to automation server",
	}

	ErrInspectionFailed = &SessionError{
		Category: ErrCategoryInspection,
		Code:     "inspection_failed",
		Message:  "could not read element attributes",
	}

	ErrNotEditable = &SessionError{
		Category: ErrCategoryValidation,
		Code:     "not_editable",
		Message:  "element is not editable",
	}
	ErrNotScrollable = &SessionError{
		Category: ErrCategoryValidation,
		Code:     "not_scrollable",
		Message:  "element is not scrollable",
	}
	ErrEmptyTargetText = &SessionError{
		Category: ErrCategoryValidation,
		Code:     "empty_target_text",
		Message:  "target text cannot be empty",
	}

	ErrInvalidChoice = &SessionError{
		Category: ErrCategoryInput,
		Code:     "invalid_choice",
		Message:  "invalid menu choice",
	}
)
