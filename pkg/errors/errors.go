package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileNotFound  ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrNotADirectory ErrorCode = "NOT_A_DIRECTORY"

	// Marker errors
	ErrMarkerMissing     ErrorCode = "MARKER_MISSING"
	ErrMarkerParse       ErrorCode = "MARKER_PARSE"
	ErrMarkerUnsupported ErrorCode = "MARKER_UNSUPPORTED"

	// Component errors
	ErrComponentInvalid ErrorCode = "COMPONENT_INVALID"

	// Walk errors
	ErrWalkCancelled ErrorCode = "WALK_CANCELLED"
)

// Kind groups error codes into the classes callers branch on.
type Kind string

const (
	KindUnknown    Kind = "unknown"
	KindArgument   Kind = "argument"
	KindIO         Kind = "io"
	KindStructural Kind = "structural"
	KindValidation Kind = "validation"
	KindParse      Kind = "parse"
	KindConfig     Kind = "config"
	KindCancelled  Kind = "cancelled"
)

// KindOf returns the class an error code belongs to
func KindOf(code ErrorCode) Kind {
	switch code {
	case ErrInvalidInput:
		return KindArgument
	case ErrFileNotFound, ErrFileAccess, ErrNotADirectory:
		return KindIO
	case ErrMarkerMissing:
		return KindStructural
	case ErrComponentInvalid:
		return KindValidation
	case ErrMarkerParse, ErrMarkerUnsupported:
		return KindParse
	case ErrConfigLoad, ErrConfigParse, ErrConfigValid:
		return KindConfig
	case ErrWalkCancelled:
		return KindCancelled
	default:
		return KindUnknown
	}
}

// DurpError represents a structured error with code and details
type DurpError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DurpError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DurpError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DurpError) Is(target error) bool {
	var targetErr *DurpError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// Kind returns the class of the error's code
func (e *DurpError) Kind() Kind {
	return KindOf(e.Code)
}

// New creates a new DurpError with the given code and message
func New(code ErrorCode, message string) *DurpError {
	return &DurpError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DurpError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DurpError {
	return &DurpError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DurpError
func Wrap(err error, code ErrorCode, message string) *DurpError {
	if err == nil {
		return nil
	}
	return &DurpError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DurpError {
	if err == nil {
		return nil
	}
	return &DurpError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DurpError) WithDetail(key string, value interface{}) *DurpError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DurpError) WithDetails(details map[string]interface{}) *DurpError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var durpErr *DurpError
	if errors.As(err, &durpErr) {
		return durpErr.Code == code
	}
	return false
}

// IsKind checks if an error's code belongs to the given class
func IsKind(err error, kind Kind) bool {
	var durpErr *DurpError
	if errors.As(err, &durpErr) {
		return durpErr.Kind() == kind
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DurpError
func GetErrorCode(err error) ErrorCode {
	var durpErr *DurpError
	if errors.As(err, &durpErr) {
		return durpErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DurpError
func GetErrorDetails(err error) map[string]interface{} {
	var durpErr *DurpError
	if errors.As(err, &durpErr) {
		return durpErr.Details
	}
	return nil
}
