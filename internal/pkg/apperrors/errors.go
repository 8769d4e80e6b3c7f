package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Roster parsing errors
var (
	// ErrMalformedDegree is returned when a degree description is not "<year>, <kind>, <institution>"
	ErrMalformedDegree = errors.New("malformed degree description")
	// ErrMalformedRow is returned when a row lacks the name, department and title fields
	ErrMalformedRow = errors.New("malformed roster row")
	// ErrSourceRead is returned when the underlying row source cannot be read
	ErrSourceRead = errors.New("roster source could not be read")
)

// Roster lookup errors
var (
	ErrInstructorNotFound = fmt.Errorf("instructor not found: %w", ErrResourceNotFound)
	ErrDepartmentNotFound = fmt.Errorf("department not found: %w", ErrResourceNotFound)
	ErrRosterNotLoaded    = errors.New("roster has not been loaded")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewMalformedDegreeError describes a degree description that failed to parse.
// cause may be nil when the description simply has too few fields.
func NewMalformedDegreeError(description, reason string, cause error) *CustomError {
	err := ErrMalformedDegree
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrMalformedDegree, cause)
	}
	return NewCustomError(err, fmt.Sprintf("%s %q: %s", ErrMalformedDegree, description, reason)).
		WithCode("MALFORMED_DEGREE").
		WithDetails(map[string]interface{}{
			"description": description,
			"reason":      reason,
		})
}

// NewSourceReadError wraps a failure of the underlying row source.
func NewSourceReadError(source string, cause error) *CustomError {
	return NewCustomError(fmt.Errorf("%w: %w", ErrSourceRead, cause), fmt.Sprintf("%s (%s): %v", ErrSourceRead, source, cause)).
		WithCode("SOURCE_READ").
		WithDetails(map[string]interface{}{
			"source": source,
		})
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err       error
	Message   string
	StatusMsg string
	Code      string
	Details   map[string]interface{}
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

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithDetail adds a single context detail, keeping the ones already set
func (e *CustomError) WithDetail(key string, value interface{}) *CustomError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// WithStatusMsg adds a user-friendly status message
func (e *CustomError) WithStatusMsg(msg string) *CustomError {
	e.StatusMsg = msg
	return e
}
