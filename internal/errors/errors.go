// Package errors provides a lightweight structured error type (DocIncludeError)
// for category-based classification and exit-code mapping in the CLI.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCategory represents the category of a DocInclude error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Input files and trees
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryPattern    ErrorCategory = "pattern"

	// Site assembly
	CategoryTheme  ErrorCategory = "theme"
	CategoryPlugin ErrorCategory = "plugin"

	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// DocIncludeError is a structured error with category, severity, and context
type DocIncludeError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for DocIncludeError
type ContextFields map[string]any

// Error implements the error interface
func (e *DocIncludeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *DocIncludeError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *DocIncludeError) WithContext(key string, value any) *DocIncludeError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new DocIncludeError
func New(category ErrorCategory, severity ErrorSeverity, message string) *DocIncludeError {
	return &DocIncludeError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new DocIncludeError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *DocIncludeError {
	return &DocIncludeError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As extracts the outermost DocIncludeError from an error chain.
func As(err error) (*DocIncludeError, bool) {
	var die *DocIncludeError
	if stdErrors.As(err, &die) {
		return die, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if die, ok := As(err); ok {
		return die.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a DocIncludeError
func GetCategory(err error) ErrorCategory {
	if die, ok := As(err); ok {
		return die.Category
	}
	return CategoryInternal
}
