package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Moderation errors. Each one carries a taxonomy kind (see KindOf).
var (
	ErrInvalidState     = errors.New("invalid state")
	ErrDuplicateName    = fmt.Errorf("duplicate name: %w", ErrAlreadyExists)
	ErrSelfMerge        = errors.New("source and target are the same entity")
	ErrMissingTarget    = errors.New("merge target is required")
	ErrMissingReason    = errors.New("rejection reason is required")
	ErrInvalidReference = errors.New("invalid reference")
	ErrInUse            = errors.New("in use")

	ErrSourceNotFound = &notFoundError{what: "merge source"}
	ErrTargetNotFound = &notFoundError{what: "merge target"}
)

type notFoundError struct {
	what string
}

func (e *notFoundError) Error() string { return e.what + " not found" }

func (e *notFoundError) Unwrap() error { return ErrNotFound }

// ErrorKind names an error class that callers translate into their own
// status codes.
type ErrorKind string

const (
	KindNotFound         ErrorKind = "NotFound"
	KindInvalidState     ErrorKind = "InvalidState"
	KindDuplicateName    ErrorKind = "DuplicateName"
	KindSelfMerge        ErrorKind = "SelfMerge"
	KindMissingTarget    ErrorKind = "MissingTarget"
	KindMissingReason    ErrorKind = "MissingReason"
	KindInvalidReference ErrorKind = "InvalidReference"
	KindInUse            ErrorKind = "InUse"
	KindValidation       ErrorKind = "Validation"
	KindUnauthorized     ErrorKind = "Unauthorized"
	KindForbidden        ErrorKind = "Forbidden"
	KindConflict         ErrorKind = "Conflict"
	KindInternal         ErrorKind = "Internal"
)

// KindOf classifies err. Order matters: ErrDuplicateName wraps
// ErrAlreadyExists and the merge not-found errors wrap ErrNotFound.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDuplicateName), errors.Is(err, ErrAlreadyExists):
		return KindDuplicateName
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidState):
		return KindInvalidState
	case errors.Is(err, ErrSelfMerge):
		return KindSelfMerge
	case errors.Is(err, ErrMissingTarget):
		return KindMissingTarget
	case errors.Is(err, ErrMissingReason):
		return KindMissingReason
	case errors.Is(err, ErrInvalidReference):
		return KindInvalidReference
	case errors.Is(err, ErrInUse):
		return KindInUse
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrConflict):
		return KindConflict
	}
	return KindInternal
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
