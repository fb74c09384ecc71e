// Package values contains domain value objects that encapsulate
// primitive types with validation and such.
package values

import "github.com/google/uuid"

// RenderID identifies one page session. Every log line and diagnostic
// emitted while loading and enriching a page carries it.
type RenderID struct {
	value uuid.UUID
}

// NewRenderID creates a new random render ID
func NewRenderID() RenderID {
	return RenderID{value: uuid.New()}
}

// String returns the string representation
func (r RenderID) String() string {
	return r.value.String()
}

// IsZero returns true if this is the zero value
func (r RenderID) IsZero() bool {
	return r.value == uuid.Nil
}
