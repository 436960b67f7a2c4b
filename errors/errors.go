package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError là custom error type cho application
type AppError struct {
	Raw     error
	Code    ErrorCode
	Message string
	Details map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// Store Errors: query/connectivity failures against Postgres. Fatal for a
// pipeline run.
func ErrStore(query string, err error) AppError {
	return AppError{
		Raw:     err,
		Code:    ErrorCode_STORE,
		Message: "Store query failed",
	}.WithDetail("query", query)
}

// Source Errors: meeting-source API failures. Isolated per credential.
func ErrSource(err error) AppError {
	return AppError{
		Raw:     err,
		Code:    ErrorCode_SOURCE,
		Message: "Meeting source request failed",
	}
}

func ErrSourceStatus(status int) AppError {
	return AppError{
		Code:    ErrorCode_SOURCE,
		Message: fmt.Sprintf("Meeting source returned status %d", status),
	}
}

func ErrSourcePayload(err error) AppError {
	return AppError{
		Raw:     err,
		Code:    ErrorCode_SOURCE,
		Message: "Meeting source returned malformed payload",
	}
}

// Classification Errors: LLM transport failures. Always resolved to a
// not-related judgment by the classifier; surfaced only in logs.
func ErrClassification(err error) AppError {
	return AppError{
		Raw:     err,
		Code:    ErrorCode_CLASSIFICATION,
		Message: "Relevance classification failed",
	}
}

// Persistence Errors: a meeting upsert failed and was rolled back.
func ErrPersistence(transcriptID string, err error) AppError {
	return AppError{
		Raw:     err,
		Code:    ErrorCode_PERSISTENCE,
		Message: "Meeting upsert failed",
	}.WithDetail("transcript_id", transcriptID)
}

// Notification Errors: best-effort delivery failed.
func ErrNotification(transcriptID string, err error) AppError {
	return AppError{
		Raw:     err,
		Code:    ErrorCode_NOTIFICATION,
		Message: "Notification delivery failed",
	}.WithDetail("transcript_id", transcriptID)
}

// Config Errors
func ErrConfig(message string) AppError {
	return AppError{
		Code:    ErrorCode_CONFIG,
		Message: message,
	}
}

// HasCode reports whether err carries an AppError with the given code
func HasCode(err error, code ErrorCode) bool {
	var appErr AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
