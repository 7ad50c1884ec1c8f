package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorCode represents standardized error codes
type ErrorCode string

const (
	// Resource errors
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// FieldError describes one rejected input field
type FieldError struct {
	Field   string `json:"field" example:"email"`
	Message string `json:"message" example:"email must be a valid email address"`
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Detail    string       `json:"detail" example:"Employee not found"`
	Code      ErrorCode    `json:"code" example:"RES_001"`
	Errors    []FieldError `json:"errors,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(code ErrorCode, detail string) *ErrorResponse {
	return &ErrorResponse{
		Detail:    detail,
		Code:      code,
		Timestamp: time.Now().UTC(),
	}
}

// WithFieldErrors attaches per-field validation failures
func (e *ErrorResponse) WithFieldErrors(fields []FieldError) *ErrorResponse {
	e.Errors = fields
	return e
}

// HandleValidationError converts a binding error into a validation error response.
// Non validator errors (malformed JSON, wrong types) produce a single entry.
func HandleValidationError(err error) *ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewErrorResponse(ErrorCodeValidationFailed, "Invalid request").
			WithFieldErrors([]FieldError{{Field: "body", Message: err.Error()}})
	}

	fields := make([]FieldError, 0, len(verrs))
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := formatValidationError(fe)
		fields = append(fields, FieldError{Field: fieldName(fe), Message: msg})
		messages = append(messages, msg)
	}

	return NewErrorResponse(ErrorCodeValidationFailed, strings.Join(messages, "; ")).WithFieldErrors(fields)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	name := fieldName(e)
	switch e.Tag() {
	case "required":
		return name + " is required"
	case "notblank":
		return name + " must not be blank"
	case "email":
		return name + " must be a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(e.Param(), " ", ", "))
	case "datetime":
		return name + " must be a date in YYYY-MM-DD format"
	case "gt":
		return name + " must be greater than " + e.Param()
	default:
		return name + " validation failed: " + e.Tag()
	}
}

// fieldName maps Go struct field names back to the snake_case wire names.
func fieldName(e validator.FieldError) string {
	switch e.Field() {
	case "EmployeeID":
		return "employee_id"
	case "FullName":
		return "full_name"
	case "FromDate":
		return "from_date"
	case "ToDate":
		return "to_date"
	default:
		return strings.ToLower(e.Field())
	}
}
