package entities

import "fmt"

// ValidationError reports the first missing or invalid field of a draft.
//
// Validation is ordered and fails fast: callers rely on the first failing
// field being deterministic, both for UI messages and for tests.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "is required"}
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
