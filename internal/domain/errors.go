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

	ErrVersionCeilingExceeded = errors.New("version ceiling exceeded")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrTransfer               = errors.New("transfer failed")
	ErrChainClosed            = errors.New("chain is closed")
)

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

// CeilingError is returned when a chain already holds the maximum number of versions.
type CeilingError struct {
	Chain   ChainKey
	Next    int
	Ceiling int
}

func (e *CeilingError) Error() string {
	return fmt.Sprintf("chain %s: version %d exceeds ceiling %d", e.Chain, e.Next, e.Ceiling)
}

func (e *CeilingError) Unwrap() error { return ErrVersionCeilingExceeded }

// TransitionError names the current and requested status of a rejected transition.
type TransitionError struct {
	From SubmissionStatus
	To   SubmissionStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// TransferError wraps a storage or network failure during upload.
// The whole upload is safe to retry from the start.
type TransferError struct {
	Path string
	Err  error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer %s: %v", e.Path, e.Err)
}

// Unwrap exposes both the transfer sentinel and the underlying cause,
// so errors.Is(err, context.Canceled) keeps working for cancelled uploads.
func (e *TransferError) Unwrap() []error { return []error{ErrTransfer, e.Err} }
