// Package apperrors defines application-level error types.
package apperrors

import (
	"fmt"
	"net/http"
)

// LoadError indicates the document could not be retrieved or decoded.
// Status is the HTTP status for non-success responses, zero otherwise.
type LoadError struct {
	Cause   error
	Source  string
	Message string
	Status  int
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("failed to load %s: %s", e.Source, e.Message)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// NewLoadError creates a new load error for a transport or decode failure.
func NewLoadError(source, message string, cause error) *LoadError {
	return &LoadError{
		Source:  source,
		Message: message,
		Cause:   cause,
	}
}

// NewStatusError creates a load error for a non-success response.
func NewStatusError(source string, status int) *LoadError {
	return &LoadError{
		Source:  source,
		Message: "unexpected response",
		Status:  status,
	}
}

// ValidationError indicates the document violates a required-field constraint.
type ValidationError struct {
	Cause   error
	Field   string // Field that failed validation
	Message string // Error message
	Index   int    // Link index, -1 when not a link field
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string, index int, cause error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Index:   index,
		Cause:   cause,
	}
}

// LookupError indicates the external profile lookup failed.
// It never reaches the page; the enricher degrades to a fallback avatar.
type LookupError struct {
	Cause  error
	Handle string
	Status int
}

func (e *LookupError) Error() string {
	switch {
	case e.Status == http.StatusNotFound:
		return fmt.Sprintf("user %q not found", e.Handle)
	case e.Status != 0:
		return fmt.Sprintf("failed to fetch profile for %q: status %d", e.Handle, e.Status)
	default:
		return fmt.Sprintf("failed to fetch profile for %q: %v", e.Handle, e.Cause)
	}
}

func (e *LookupError) Unwrap() error {
	return e.Cause
}

// NotFound reports whether the lookup service answered 404.
func (e *LookupError) NotFound() bool {
	return e.Status == http.StatusNotFound
}

// NewLookupError creates a new lookup error.
func NewLookupError(handle string, status int, cause error) *LookupError {
	return &LookupError{
		Handle: handle,
		Status: status,
		Cause:  cause,
	}
}

// ConfigurationError indicates system config or setup issue.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}
