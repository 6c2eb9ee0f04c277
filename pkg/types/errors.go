package types

import (
	"errors"
	"fmt"
)

// Error kinds carried by ValidationError and NotFoundError.
const (
	KindName   = "name"
	KindPhone  = "phone"
	KindRecord = "record"
)

// Sentinel errors.
var (
	ErrValidation      = errors.New("validation failed")
	ErrNameValidation  = fmt.Errorf("invalid name: %w", ErrValidation)
	ErrPhoneValidation = fmt.Errorf("invalid phone: %w", ErrValidation)
	ErrNotFound        = errors.New("not found")
)

// Default validation messages.
const (
	msgNameValidation  = "name must be at least 2 characters long"
	msgPhoneValidation = "phone number must be exactly 10 digits"
)

// ValidationError reports a value that failed its format invariant at
// construction time.
type ValidationError struct {
	Kind    string // KindName or KindPhone.
	Value   string // The rejected input.
	Message string // Human-readable description of the required format.
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the kind-specific sentinel so callers can use errors.Is
// with ErrNameValidation, ErrPhoneValidation, or ErrValidation.
func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case KindName:
		return ErrNameValidation
	case KindPhone:
		return ErrPhoneValidation
	default:
		return ErrValidation
	}
}

func newNameValidationError(value string) error {
	return &ValidationError{Kind: KindName, Value: value, Message: msgNameValidation}
}

func newPhoneValidationError(value string) error {
	return &ValidationError{Kind: KindPhone, Value: value, Message: msgPhoneValidation}
}

// NotFoundError reports a phone or record that does not exist.
type NotFoundError struct {
	Kind  string // KindPhone or KindRecord.
	Value string // The missing phone value or record name.
}

func (e *NotFoundError) Error() string {
	if e.Kind == KindRecord {
		return fmt.Sprintf("record for %s not found", e.Value)
	}
	return fmt.Sprintf("phone number %s not found", e.Value)
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
