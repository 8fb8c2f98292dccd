package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the operation conflicts with existing data (e.g. deleting a category still in use).
var ErrConflict = errors.New("resource conflict")

// ErrInvalidState indicates a state machine transition that is not allowed.
var ErrInvalidState = errors.New("invalid state transition")

// ErrMissingField indicates that a conditionally required field was not supplied.
var ErrMissingField = errors.New("missing required field")

// ErrInvalidAmount indicates a money amount that is not positive or has more than two decimal places.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrLockedForReview indicates an expense that can no longer be edited after an admin response.
var ErrLockedForReview = errors.New("expense is locked for review")

// ErrInvalidBatchState indicates that at least one record of a bulk transition is in the wrong state.
var ErrInvalidBatchState = errors.New("invalid batch state")

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrStorage      = errors.New("storage error")
	ErrInternal     = errors.New("internal error")
)

// NotFoundError names the missing entity and its identifier.
type NotFoundError struct {
	Entity string
	ID     string
}

func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// InvalidStateError describes a rejected state transition.
type InvalidStateError struct {
	Current   string
	Attempted string
}

func NewInvalidStateError(current, attempted string) *InvalidStateError {
	return &InvalidStateError{Current: current, Attempted: attempted}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s: current state is %s", e.Attempted, e.Current)
}

func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }

// MissingFieldError reports a field required only under some condition.
type MissingFieldError struct {
	Field   string
	Context string
}

func NewMissingFieldError(field, context string) *MissingFieldError {
	return &MissingFieldError{Field: field, Context: context}
}

func (e *MissingFieldError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("field %s is required", e.Field)
	}
	return fmt.Sprintf("field %s is required: %s", e.Field, e.Context)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// BatchStateError lists the ids of a bulk transition that were not in the required state.
type BatchStateError struct {
	Required  string
	Offending []string
}

func NewBatchStateError(required string, offending []string) *BatchStateError {
	return &BatchStateError{Required: required, Offending: offending}
}

func (e *BatchStateError) Error() string {
	return fmt.Sprintf("all records must be %s; offending ids: %s", e.Required, strings.Join(e.Offending, ", "))
}

func (e *BatchStateError) Is(target error) bool { return target == ErrInvalidBatchState }

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationErrors collects every violation found in one validation pass.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (v ValidationErrors) Is(target error) bool { return target == ErrValidation }

// AppError carries an HTTP-ish status code alongside a wrapped cause.
// Codes >= 500 are treated as storage/infrastructure failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) Is(target error) bool {
	return target == ErrStorage && e.Code >= http.StatusInternalServerError
}

// NewStorageError wraps a database failure.
func NewStorageError(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, err)
}
