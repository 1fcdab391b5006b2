package serrors

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Base is a structured error carrying a stable machine-readable code. Codes
// are part of the boundary contract: the HTTP layer maps them to status codes
// and audit log fields without parsing messages.
type Base struct {
	Code    string
	Message string
}

func (e *Base) Error() string {
	return e.Message
}

func NewError(code, message string) *Base {
	return &Base{Code: code, Message: message}
}

const (
	CodeNotFound       = "NOT_FOUND"
	CodeTenantMismatch = "TENANT_MISMATCH"
	CodeValidation     = "VALIDATION"
	CodeConflict       = "CONFLICT"
)

// NewNotFound reports that a referenced id or code never existed. Expected,
// recoverable by the caller; never a system error.
func NewNotFound(entity string) *Base {
	return NewError(CodeNotFound, fmt.Sprintf("%s not found", entity))
}

// NewTenantMismatch reports that an id exists but under a different
// organization. Mapped to the same 404 as NotFound at the boundary so
// existence is not leaked, but logged distinctly for auditing.
func NewTenantMismatch(entity string) *Base {
	return NewError(CodeTenantMismatch, fmt.Sprintf("%s belongs to a different organization", entity))
}

func NewValidation(message string) *Base {
	return NewError(CodeValidation, message)
}

// NewConflict reports an optimistic concurrency conflict that survived the
// retry budget. The caller retries the whole operation.
func NewConflict(entity string) *Base {
	return NewError(CodeConflict, fmt.Sprintf("%s was modified concurrently", entity))
}

func hasCode(err error, code string) bool {
	var base *Base
	return errors.As(err, &base) && base.Code == code
}

func IsNotFound(err error) bool       { return hasCode(err, CodeNotFound) }
func IsTenantMismatch(err error) bool { return hasCode(err, CodeTenantMismatch) }
func IsValidation(err error) bool     { return hasCode(err, CodeValidation) }
func IsConflict(err error) bool       { return hasCode(err, CodeConflict) }

// ValidationErrors maps struct field names to their validation failures.
type ValidationErrors map[string]*Base

func (v ValidationErrors) Error() string {
	for field, err := range v {
		return fmt.Sprintf("%s: %s", field, err.Message)
	}
	return "validation failed"
}

// FromValidator converts go-playground field errors into ValidationErrors
// keyed by struct field name.
func FromValidator(errs validator.ValidationErrors) ValidationErrors {
	out := make(ValidationErrors, len(errs))
	for _, fieldErr := range errs {
		out[fieldErr.Field()] = NewValidation(
			fmt.Sprintf("field %s failed on the %s rule", fieldErr.Field(), fieldErr.Tag()),
		)
	}
	return out
}
