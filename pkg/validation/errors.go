// Package validation provides input parsing and validation utilities.
package validation

import (
	"errors"
	"fmt"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Reasons a field can be rejected. Compare with errors.Is.
var (
	ErrEmpty         = constError("value is empty")
	ErrNotNumeric    = constError("value is not a number")
	ErrNegative      = constError("value is negative")
	ErrNotPositive   = constError("value must be greater than zero")
	ErrOutOfRange    = constError("value is out of the supported range")
	ErrUnknownPeriod = constError("unknown period")
	ErrUnknownOption = constError("unknown option")
)

// Field names reported to callers so that a UI can highlight the offending
// input.
const (
	FieldAmount           = "amount"
	FieldReferencePrice   = "object-price"
	FieldPeriod           = "time-period"
	FieldPeriodMultiplier = "custom-period"
	FieldExample          = "object-type"
	FieldMode             = "mode"
)

// FieldError identifies which input failed and why.
type FieldError struct {
	Field  string
	Reason error
	Value  string
}

// NewFieldError builds a FieldError for field with the given reason.
func NewFieldError(field string, reason error, value string) *FieldError {
	return &FieldError{Field: field, Reason: reason, Value: value}
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %v (%q)", e.Field, e.Reason, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Reason
}

// Message returns the French sentence shown next to the field.
func (e *FieldError) Message() string {
	empty := errors.Is(e.Reason, ErrEmpty)
	switch e.Field {
	case FieldAmount:
		if empty {
			return "Veuillez entrer un montant."
		}
		return "Veuillez entrer un montant valide."
	case FieldReferencePrice:
		if empty {
			return "Veuillez entrer un montant de comparaison."
		}
		return "Veuillez entrer un montant de comparaison valide."
	case FieldPeriodMultiplier:
		if empty {
			return "Veuillez entrer une durée personnalisée."
		}
		return "Veuillez entrer une durée personnalisée valide."
	case FieldPeriod:
		return "Veuillez sélectionner une période valide."
	case FieldExample:
		return "Veuillez sélectionner un objet dans la liste."
	default:
		return "Valeur invalide."
	}
}

// AsFieldError extracts a *FieldError from err, if any.
func AsFieldError(err error) (*FieldError, bool) {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr, true
	}
	return nil, false
}
