package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorCode represents a structured error code
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// Database errors
	ErrCodeDatabaseConnection ErrorCode = "DATABASE_CONNECTION"
	ErrCodeDatabaseQuery      ErrorCode = "DATABASE_QUERY"
	ErrCodeDatabaseMigration  ErrorCode = "DATABASE_MIGRATION"

	// Ingestion errors
	ErrCodeInvalidLocator    ErrorCode = "INVALID_LOCATOR"
	ErrCodeAcquisitionFailed ErrorCode = "ACQUISITION_FAILED"

	// Segmentation errors
	ErrCodeVideoNotFound      ErrorCode = "VIDEO_NOT_FOUND"
	ErrCodeSegmentationFailed ErrorCode = "SEGMENTATION_FAILED"

	// Ledger errors
	ErrCodeMissingFields  ErrorCode = "MISSING_FIELDS"
	ErrCodeLedgerNotFound ErrorCode = "LEDGER_NOT_FOUND"
	ErrCodeWriteFailed    ErrorCode = "WRITE_FAILED"
	ErrCodeReadFailed     ErrorCode = "READ_FAILED"

	// Generic errors
	ErrCodeValidation   ErrorCode = "VALIDATION"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeInternal     ErrorCode = "INTERNAL"
)

// AppError represents a structured application error
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  map[string]interface{} `json:"details,omitempty"`
	Cause    error                  `json:"-"`
	HTTPCode int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// GetHTTPCode returns the appropriate HTTP status code
func (e *AppError) GetHTTPCode() int {
	if e.HTTPCode != 0 {
		return e.HTTPCode
	}
	return getDefaultHTTPCode(e.Code)
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Newf creates a new AppError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(cause error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Cause:    cause,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(cause error, code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Cause:    cause,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Is reports whether err carries the given error code
func Is(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// AsAppError extracts an *AppError from an error chain
func AsAppError(err error) (*AppError, bool) {
	for err != nil {
		if appErr, ok := err.(*AppError); ok {
			return appErr, true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = unwrapper.Unwrap()
	}
	return nil, false
}

// getDefaultHTTPCode returns the default HTTP status code for an error code
func getDefaultHTTPCode(code ErrorCode) int {
	switch code {
	case ErrCodeVideoNotFound, ErrCodeLedgerNotFound:
		return http.StatusNotFound
	case ErrCodeInvalidLocator, ErrCodeMissingFields, ErrCodeValidation, ErrCodeInvalidInput:
		return http.StatusBadRequest
	case ErrCodeAcquisitionFailed, ErrCodeSegmentationFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Common error constructors

// InvalidLocator creates an error for a locator no source id can be extracted from
func InvalidLocator(locator string) *AppError {
	return New(ErrCodeInvalidLocator, "locator does not contain a recognizable video id").
		WithDetail("locator", locator)
}

// AcquisitionFailed creates an error carrying the downloader's diagnostic output
func AcquisitionFailed(cause error, diagnostic string) *AppError {
	return Wrap(cause, ErrCodeAcquisitionFailed, "video download failed").
		WithDetail("diagnostic", diagnostic)
}

// VideoNotFound creates an error for a missing media file
func VideoNotFound(videoID string) *AppError {
	return New(ErrCodeVideoNotFound, "video file not found").
		WithDetail("video_id", videoID)
}

// SegmentationFailed creates an error carrying the detector or probe diagnostic
func SegmentationFailed(cause error, diagnostic string) *AppError {
	err := Wrap(cause, ErrCodeSegmentationFailed, "shot detection failed")
	if diagnostic != "" {
		err = err.WithDetail("diagnostic", diagnostic)
	}
	return err
}

// MissingFields creates an error naming every absent required field
func MissingFields(fields []string) *AppError {
	return Newf(ErrCodeMissingFields, "missing required fields: %s", strings.Join(fields, ", ")).
		WithDetail("fields", fields)
}

// LedgerNotFound creates an error for a video with no annotation ledger
func LedgerNotFound(videoID string) *AppError {
	return New(ErrCodeLedgerNotFound, "annotation ledger not found").
		WithDetail("video_id", videoID)
}

// WriteFailed creates an error for an I/O failure during append
func WriteFailed(videoID string, cause error) *AppError {
	return Wrap(cause, ErrCodeWriteFailed, "failed to write annotation").
		WithDetail("video_id", videoID)
}

// ReadFailed creates an error for an I/O or parse failure during read
func ReadFailed(videoID string, cause error) *AppError {
	return Wrap(cause, ErrCodeReadFailed, "failed to read annotations").
		WithDetail("video_id", videoID)
}

// DatabaseError creates a database error
func DatabaseError(operation string, cause error) *AppError {
	return Wrap(cause, ErrCodeDatabaseQuery, fmt.Sprintf("database %s failed", operation)).
		WithDetail("operation", operation)
}
