package errors

import (
	"net/http"

	"adreach/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches any BaseError carrying the same error code, so WithDetails copies
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	return ok && t.errorCode == e.errorCode
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Not found
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrCampaignNotFound = NewBaseError(
		http.StatusNotFound,
		"CAMPAIGN_NOT_FOUND",
		"Campaign not found",
		"",
	)

	ErrCommentNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMENT_NOT_FOUND",
		"Comment not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// Access
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid access token",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have permission to perform this action",
		"",
	)

	ErrNotCampaignOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_CAMPAIGN_OWNER",
		"Campaign does not belong to this vendor",
		"",
	)

	ErrUserBanned = NewBaseError(
		http.StatusForbidden,
		"USER_BANNED",
		"This account has been banned",
		"",
	)

	// Invalid input
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrLocationRequired = NewBaseError(
		http.StatusBadRequest,
		"LOCATION_REQUIRED",
		"Enable location to see campaigns near you",
		"",
	)

	ErrReplyDepthExceeded = NewBaseError(
		http.StatusBadRequest,
		"REPLY_DEPTH_EXCEEDED",
		"Replies to replies are not allowed",
		"",
	)

	ErrCommentCampaignMismatch = NewBaseError(
		http.StatusBadRequest,
		"COMMENT_CAMPAIGN_MISMATCH",
		"Parent comment belongs to another campaign",
		"",
	)

	ErrInvalidTargeting = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TARGETING",
		"Invalid campaign targeting",
		"",
	)

	ErrGeocodeNoResult = NewBaseError(
		http.StatusBadRequest,
		"GEOCODE_NO_RESULT",
		"Could not find coordinates for the targeted location",
		"",
	)

	ErrInvalidWindow = NewBaseError(
		http.StatusBadRequest,
		"INVALID_WINDOW",
		"Window must be 7, 30 or 90 days",
		"",
	)

	ErrEmptySearchTerm = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_SEARCH_TERM",
		"Search term is required",
		"",
	)

	ErrInvalidDateRange = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DATE_RANGE",
		"Start date must be before end date",
		"",
	)

	ErrBudgetTooLow = NewBaseError(
		http.StatusBadRequest,
		"BUDGET_TOO_LOW",
		"Budget is below the minimum",
		"",
	)

	ErrBudgetLocked = NewBaseError(
		http.StatusBadRequest,
		"BUDGET_LOCKED",
		"Budget cannot change after payment",
		"",
	)

	// State conflicts
	ErrCampaignCompleted = NewBaseError(
		http.StatusConflict,
		"CAMPAIGN_COMPLETED",
		"Campaign is completed",
		"",
	)

	ErrCampaignNotPending = NewBaseError(
		http.StatusConflict,
		"CAMPAIGN_NOT_PENDING",
		"Campaign is not awaiting payment",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Campaign cannot move to the requested status",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrTransientConflict = NewBaseError(
		http.StatusConflict,
		"TRANSIENT_CONFLICT",
		"Concurrent update, please retry",
		"",
	)

	// External dependencies
	ErrGeocodingUnavailable = NewBaseError(
		http.StatusBadGateway,
		"GEOCODING_UNAVAILABLE",
		"Geocoding service is unavailable",
		"",
	)

	// System
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

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

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap returns the underlying database error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
