package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound    = errors.New("resource not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrValidationFailed    = errors.New("validation failed")
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrBadRequest          = errors.New("bad request")
)

// Entity not-found errors. Each wraps ErrResourceNotFound so handlers can
// match the class with a single errors.Is check.
var (
	ErrDepartmentNotFound     = wrapNotFound("department not found")
	ErrInstructorNotFound     = wrapNotFound("instructor not found")
	ErrStudentNotFound        = wrapNotFound("student not found")
	ErrCourseNotFound         = wrapNotFound("course not found")
	ErrEnrollmentNotFound     = wrapNotFound("enrollment not found")
	ErrGradeNotFound          = wrapNotFound("grade not found")
	ErrDepartmentHeadNotFound = wrapNotFound("department head not found")
)

func wrapNotFound(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewConstraintError creates an error in the constraint-violation class
// carrying a client-safe message.
func NewConstraintError(message string) error {
	return &CustomError{
		Err:     ErrConstraintViolation,
		Message: message,
	}
}

// NewValidationError creates an error in the validation class with a message.
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
