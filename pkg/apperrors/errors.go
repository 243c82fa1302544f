package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application-level error carried from services up to the
// HTTP boundary. HTTPCode decides the response status, Details carries
// field-level validation messages when present.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Domain   string      `json:"domain"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New is the base constructor.
func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap attaches an underlying error to a new AppError.
func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// MarshalJSON hides the wrapped error and HTTP code from clients.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Domain  string      `json:"domain"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Domain:  e.Domain,
		Message: e.Message,
		Details: e.Details,
	})
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// --- common factories ---

// InternalError wraps an unexpected system error.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
}

// ValidationError carries a field -> message map and maps to 422.
func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation", "Validation error", http.StatusUnprocessableEntity).WithDetails(details)
}

// NotFound is the generic missing-record error.
func NotFound(resource string) *AppError {
	return New(CodeNotFound, "resource", resource+" not found", http.StatusNotFound)
}

// Conflict reports a uniqueness violation (duplicate slug, email, ...).
func Conflict(message string) *AppError {
	return New(CodeAlreadyExists, "resource", message, http.StatusConflict)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, "auth", message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, "auth", message, http.StatusForbidden)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, "request", message, http.StatusBadRequest)
}

// RateLimited maps to 429 for throttled clients.
func RateLimited() *AppError {
	return New(CodeLimitExceeded, "request", "Too many requests", http.StatusTooManyRequests)
}

// UploadError distinguishes a bad input file (422) from a storage failure (500).
func UploadError(err error, badInput bool) *AppError {
	if badInput {
		return Wrap(err, CodeValidationFailed, "upload", "Invalid upload", http.StatusUnprocessableEntity)
	}
	return Wrap(err, CodeInternalError, "upload", "Failed to upload file", http.StatusInternalServerError)
}
