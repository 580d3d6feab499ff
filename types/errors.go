package types

import (
	"fmt"
)

// ErrorCode represents categorized error codes for report compilation
type ErrorCode string

const (
	// Fatal: a catalog key or fixed image resource is unavailable
	ErrCodeConfiguration ErrorCode = "CONFIGURATION"

	// Recoverable: an attachment could not be decoded as an image
	ErrCodeAttachmentDecode ErrorCode = "ATTACHMENT_DECODE"

	// Fatal: the destination cannot be written or a required image cannot be opened
	ErrCodeIOFailure ErrorCode = "IO_FAILURE"

	// Input errors
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeImageError   ErrorCode = "IMAGE_ERROR"

	// Write errors
	ErrCodeWriteError ErrorCode = "WRITE_ERROR"
)

// ReportError is a structured error type for report compilation
type ReportError struct {
	Code    ErrorCode              // Error category code
	Message string                 // Human-readable message
	Cause   error                  // Underlying error (if any)
	Context map[string]interface{} // Additional context (path, key, language, etc.)
}

// Error implements the error interface
func (e *ReportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ReportError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches a target ReportError by code
func (e *ReportError) Is(target error) bool {
	if t, ok := target.(*ReportError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithContext adds context to the error and returns the same error for chaining
func (e *ReportError) WithContext(key string, value interface{}) *ReportError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Path returns the file path recorded in the error context, if any
func (e *ReportError) Path() string {
	if p, ok := e.Context["path"].(string); ok {
		return p
	}
	return ""
}

// NewReportError creates a new ReportError with the given code and message
func NewReportError(code ErrorCode, message string) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
	}
}

// NewReportErrorf creates a new ReportError with a formatted message
func NewReportErrorf(code ErrorCode, format string, args ...interface{}) *ReportError {
	return &ReportError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError wraps an existing error with a ReportError
func WrapError(code ErrorCode, message string, cause error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapErrorf wraps an existing error with a ReportError and formatted message
func WrapErrorf(code ErrorCode, cause error, format string, args ...interface{}) *ReportError {
	return &ReportError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// PathError wraps cause as an error about the file at path.
func PathError(code ErrorCode, path string, cause error) *ReportError {
	return WrapErrorf(code, cause, "cannot open %s", path).WithContext("path", path)
}

// Sentinel errors for use with errors.Is()
var (
	ErrConfiguration    = &ReportError{Code: ErrCodeConfiguration}
	ErrAttachmentDecode = &ReportError{Code: ErrCodeAttachmentDecode}
	ErrIOFailure        = &ReportError{Code: ErrCodeIOFailure}
	ErrInvalidInput     = &ReportError{Code: ErrCodeInvalidInput}
	ErrImageError       = &ReportError{Code: ErrCodeImageError}
	ErrWriteError       = &ReportError{Code: ErrCodeWriteError}
)

// AsReportError checks if an error is a ReportError and returns it
func AsReportError(err error) (*ReportError, bool) {
	if rErr, ok := err.(*ReportError); ok {
		return rErr, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from an error if it's a ReportError
func GetErrorCode(err error) (ErrorCode, bool) {
	if rErr, ok := err.(*ReportError); ok {
		return rErr.Code, true
	}
	return "", false
}

// IsConfigurationError checks if the error is a fatal configuration error
func IsConfigurationError(err error) bool {
	if rErr, ok := err.(*ReportError); ok {
		return rErr.Code == ErrCodeConfiguration
	}
	return false
}

// IsIOFailure checks if the error is a fatal I/O failure
func IsIOFailure(err error) bool {
	if rErr, ok := err.(*ReportError); ok {
		return rErr.Code == ErrCodeIOFailure || rErr.Code == ErrCodeWriteError
	}
	return false
}
