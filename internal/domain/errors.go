package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Enrollment specific errors
	CodeCourseNotFound  ErrorCode = "COURSE_NOT_FOUND"
	CodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"
	CodePhaseBlocked    ErrorCode = "PHASE_BLOCKED"
	CodeMailDelivery    ErrorCode = "MAIL_DELIVERY_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewCourseNotFoundError(slug string) *DomainError {
	return NewError(CodeCourseNotFound, fmt.Sprintf("Course not found with slug: %s", slug), nil)
}

func NewSessionNotFoundError(id string) *DomainError {
	return NewError(CodeSessionNotFound, fmt.Sprintf("Enrollment session not found: %s", id), nil)
}

func NewMailDeliveryError(cause error) *DomainError {
	return NewError(CodeMailDelivery, "Failed to deliver enrollment notification", cause)
}

// ValidationError describes one invalid field of a request or wizard phase.
type ValidationError struct {
	Field   string    `json:"field"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field errors; it is itself an error so the
// middleware can map the whole set to one response.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	return fmt.Sprintf("%d validation error(s), first: %s", len(e), e[0].Error())
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeInvalidFormat,
		Message: fmt.Sprintf("%s has invalid format: %v", field, value),
	}
}

func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("%s must be between %d and %d, got %d", field, min, max, value),
	}
}

func NewFieldError(field, message string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeValidation,
		Message: message,
	}
}

// ValidationFailure represents a single-message validation error on an entity
type ValidationFailure struct {
	message string
}

func (e *ValidationFailure) Error() string {
	return e.message
}

func NewValidationFailure(message string) error {
	return &ValidationFailure{message: message}
}
