package errors

import (
	"errors"
	"fmt"
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

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
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

// AuthError represents an authentication failure against the LMS or the API.
// It is fatal to a sync run and is never retried.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// RateLimitedError is returned when the LMS keeps throttling after the
// back-off retry budget is exhausted. It fails the current fetch only.
type RateLimitedError struct {
	Endpoint string
	Attempts int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited by LMS on %s after %d attempts", e.Endpoint, e.Attempts)
}

// TransportError is returned when a network failure or timeout persists
// after retries. It fails the current fetch only.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure on %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// EntityUpsertError records a single remote record that failed validation
// or persistence. It never aborts a batch; siblings continue.
type EntityUpsertError struct {
	Kind     string
	CanvasID int64
	Err      error
}

func (e *EntityUpsertError) Error() string {
	return fmt.Sprintf("upsert %s canvas_id=%d: %v", e.Kind, e.CanvasID, e.Err)
}

func (e *EntityUpsertError) Unwrap() error {
	return e.Err
}

// ReconciliationConflictError records a remote user that could not be
// resolved to a Student during membership reconciliation.
type ReconciliationConflictError struct {
	CanvasUserID int64
	Reason       string
}

func (e *ReconciliationConflictError) Error() string {
	return fmt.Sprintf("cannot resolve canvas user %d: %s", e.CanvasUserID, e.Reason)
}

// Entity Not Found Errors
var (
	ErrCourseNotFound        = &NotFoundError{Entity: "course"}
	ErrEnrollmentNotFound    = &NotFoundError{Entity: "enrollment"}
	ErrStudentNotFound       = &NotFoundError{Entity: "student"}
	ErrAssignmentNotFound    = &NotFoundError{Entity: "assignment"}
	ErrSubmissionNotFound    = &NotFoundError{Entity: "submission"}
	ErrGroupCategoryNotFound = &NotFoundError{Entity: "group category"}
	ErrTeamNotFound          = &NotFoundError{Entity: "team"}
	ErrSyncRunNotFound       = &NotFoundError{Entity: "sync run"}
	ErrProgressNotFound      = &NotFoundError{Entity: "sync progress"}
)

// Already Exists Errors
var (
	ErrTeamExists    = &AlreadyExistsError{Entity: "team", Context: "with this name in the course"}
	ErrStudentExists = &AlreadyExistsError{Entity: "student", Context: "with this email"}
)

// Sync Errors
var (
	ErrSyncAlreadyRunning = errors.New("a sync for this course is already running")
	ErrManualTeam         = errors.New("team is not linked to a remote group")
	ErrNoRemoteGroups     = errors.New("no remote groups found for course")
	ErrCourseNeverLoaded  = errors.New("course was never loaded, downstream phases skipped")
	ErrCredentialMissing  = errors.New("LMS credential is not configured")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuth checks if an error is an AuthError
func IsAuth(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsRateLimited checks if an error is a RateLimitedError
func IsRateLimited(err error) bool {
	var rlErr *RateLimitedError
	return errors.As(err, &rlErr)
}

// IsTransport checks if an error is a TransportError
func IsTransport(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}

// IsUpsert checks if an error is an EntityUpsertError
func IsUpsert(err error) bool {
	var uErr *EntityUpsertError
	return errors.As(err, &uErr)
}

// IsReconciliationConflict checks if an error is a ReconciliationConflictError
func IsReconciliationConflict(err error) bool {
	var rcErr *ReconciliationConflictError
	return errors.As(err, &rcErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthError creates a new AuthError
func NewAuthError(message string) error {
	return &AuthError{Message: message}
}
