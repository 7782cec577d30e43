package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Validation messages shared across entity packages.
const (
	MsgRequired = "is required"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrInvalidID   = errors.New("invalid identifier")
	ErrBadRequest  = errors.New("bad request")
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NotFoundError reports that a referenced list or item does not exist.
// Resource names the kind of entity ("list", "item") and ID the identifier
// that was looked up.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q %s", e.Resource, e.ID, ErrNotFound.Error())
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// InvalidIDError reports an identifier that is not in the expected format.
// Field is the request parameter that carried it.
type InvalidIDError struct {
	Field string
	Value string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("%s: %s %q is not a well-formed identifier", ErrInvalidID.Error(), e.Field, e.Value)
}

func (e *InvalidIDError) Unwrap() error {
	return ErrInvalidID
}
