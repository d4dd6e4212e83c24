package apierror

import "fmt"

// FieldError describes a single validation failure on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type APIError struct {
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	Fields     []FieldError `json:"fields,omitempty"`
	HTTPStatus int          `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s (%d field errors)", e.Code, e.Message, len(e.Fields))
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code string, message string, status int) *APIError {
	return &APIError{Code: code, Message: message, HTTPStatus: status}
}

// NewValidation wraps field-level detail in a 400 error.
func NewValidation(fields []FieldError) *APIError {
	return &APIError{
		Code:       "VALIDATION_ERROR",
		Message:    "request validation failed",
		Fields:     fields,
		HTTPStatus: 400,
	}
}
