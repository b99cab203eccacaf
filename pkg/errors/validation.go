package errors

import "strings"

// ValidationError describes one invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorCollector gathers ValidationErrors for a single request.
type ValidationErrorCollector struct {
	errors []ValidationError
}

func NewValidationErrorCollector() *ValidationErrorCollector {
	return &ValidationErrorCollector{}
}

func (c *ValidationErrorCollector) Add(field, message string) {
	c.errors = append(c.errors, ValidationError{Field: field, Message: message})
}

func (c *ValidationErrorCollector) HasError() bool {
	return len(c.errors) > 0
}

func (c *ValidationErrorCollector) Errors() []ValidationError {
	return c.errors
}

func (c *ValidationErrorCollector) Error() string {
	parts := make([]string, 0, len(c.errors))
	for _, e := range c.errors {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}
