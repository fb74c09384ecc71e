package entities

import "fmt"

// RequiredFieldError reports the first required-field violation found in a
// raw document. Index is the link position, or -1 for document and profile fields.
type RequiredFieldError struct {
	Field   string
	Message string
	Index   int
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewRequiredFieldError creates a document or profile level violation.
func NewRequiredFieldError(field, message string) *RequiredFieldError {
	return &RequiredFieldError{Field: field, Message: message, Index: -1}
}

// NewLinkFieldError creates a violation for the link at index.
func NewLinkFieldError(index int, field, message string) *RequiredFieldError {
	return &RequiredFieldError{
		Field:   fmt.Sprintf("links[%d].%s", index, field),
		Message: message,
		Index:   index,
	}
}
