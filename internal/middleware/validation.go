package middleware

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingErrorMessage turns a gin binding error into a user-presentable
// detail message. Only the first field error is reported, one message at
// a time.
func BindingErrorMessage(err error, fallback string) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return fallback
	}
	return formatValidationError(fieldErrors[0])
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + e.Param()
	case "max":
		return field + " must be at most " + e.Param()
	default:
		return field + " is invalid"
	}
}
