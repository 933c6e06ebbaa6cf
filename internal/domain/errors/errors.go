package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// Kind tags an application error with the condition that produced it.
// Only the HTTP boundary turns a Kind into a status code.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidCredentials
	KindConstraintViolation
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInvalidCredentials:
		return "InvalidCredentials"
	case KindConstraintViolation:
		return "ConstraintViolation"
	case KindValidation:
		return "Validation"
	default:
		return "Unknown"
	}
}

// HTTPCode maps a kind to the status rendered by the error handler.
func (k Kind) HTTPCode() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidCredentials, KindValidation:
		return http.StatusBadRequest
	case KindConstraintViolation:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

func (e *BaseError) Kind() Kind {
	return e.kind
}

func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPCode()
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information.
// The copy still matches the original through errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches BaseErrors sharing the same business code, so copies made by
// WithDetails still compare equal to the predefined sentinels.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		"USER_NOT_FOUND",
		"Username invalid. User not found",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		KindInvalidCredentials,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		"",
	)

	ErrValidationFailed = NewBaseError(
		KindValidation,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindUnknown,
		"PASSWORD_HASH_FAILED",
		"Password could not be processed",
		"",
	)

	ErrTokenSignFailed = NewBaseError(
		KindUnknown,
		"TOKEN_SIGN_FAILED",
		"Token could not be issued",
		"",
	)
)

// ConstraintViolationError carries a database constraint failure unchanged,
// tagged so the boundary can render it without translating the message.
type ConstraintViolationError struct {
	err error
}

// NewConstraintViolationError wraps a constraint failure reported by the database.
func NewConstraintViolationError(err error) AppError {
	return &ConstraintViolationError{err: err}
}

func (e *ConstraintViolationError) Error() string {
	return e.err.Error()
}

func (e *ConstraintViolationError) Unwrap() error {
	return e.err
}

func (e *ConstraintViolationError) Kind() Kind {
	return KindConstraintViolation
}

func (e *ConstraintViolationError) HTTPCode() int {
	return KindConstraintViolation.HTTPCode()
}

func (e *ConstraintViolationError) ErrorCode() string {
	return "CONSTRAINT_VIOLATION"
}

func (e *ConstraintViolationError) Message() string {
	return e.err.Error()
}

func (e *ConstraintViolationError) Details() string {
	return e.err.Error()
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) Kind() Kind {
	return KindUnknown
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// KindOf reports the kind of the first AppError in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindUnknown
}
