package errors

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents malformed or missing input. It is always
// surfaced to the caller with field-level detail and never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ScheduleConflictError is returned when a proposed shift interval overlaps
// an active shift for the same carer. The colliding shift is named when
// known; a conflict surfaced by the store's exclusion constraint carries
// uuid.Nil.
type ScheduleConflictError struct {
	CarerID            uuid.UUID
	ConflictingShiftID uuid.UUID
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf("schedule conflict: carer %s already has shift %s in the requested interval", e.CarerID, e.ConflictingShiftID)
}

// ForbiddenError represents an actor lacking the role or ownership
// required for the requested operation
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// InvalidStateError represents a lifecycle transition attempted from a
// state that does not permit it
type InvalidStateError struct {
	Entity  string
	From    string
	Attempt string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: cannot %s %s in status %s", e.Attempt, e.Entity, e.From)
}

// PersistenceError wraps a transaction that could not commit
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrShiftNotFound         = &NotFoundError{Entity: "shift"}
	ErrClientNotFound        = &NotFoundError{Entity: "client"}
	ErrCarerNotFound         = &NotFoundError{Entity: "carer"}
	ErrAuthorizationNotFound = &NotFoundError{Entity: "authorization"}
	ErrAlertNotFound         = &NotFoundError{Entity: "authorization alert"}
)

// Business Outcomes
var (
	// ErrNoActiveAuthorization signals that a deduction found no ACTIVE
	// in-window authorization for the client and service type. It is a
	// normal outcome, not a failure: shift completion proceeds without it.
	ErrNoActiveAuthorization = errors.New("no active authorization found")

	// ErrInvalidLocation signals malformed numeric input to the geofence
	// validator (NaN, infinite or out-of-range coordinates).
	ErrInvalidLocation = errors.New("invalid location coordinates")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsScheduleConflict checks if an error is a ScheduleConflictError
func IsScheduleConflict(err error) bool {
	var conflictErr *ScheduleConflictError
	return errors.As(err, &conflictErr)
}

// IsForbidden checks if an error is a ForbiddenError
func IsForbidden(err error) bool {
	var forbiddenErr *ForbiddenError
	return errors.As(err, &forbiddenErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistenceErr *PersistenceError
	return errors.As(err, &persistenceErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewForbiddenError creates a new ForbiddenError
func NewForbiddenError(message string) error {
	return &ForbiddenError{Message: message}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(entity, from, attempt string) error {
	return &InvalidStateError{Entity: entity, From: from, Attempt: attempt}
}

// NewScheduleConflictError creates a new ScheduleConflictError naming the
// colliding shift
func NewScheduleConflictError(carerID, conflictingShiftID uuid.UUID) error {
	return &ScheduleConflictError{CarerID: carerID, ConflictingShiftID: conflictingShiftID}
}

// NewPersistenceError wraps a failed transaction
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
