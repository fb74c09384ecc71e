package dto

import (
	"time"

	"github.com/reglet-dev/linkpage/internal/domain/services"
)

// RenderRequest encapsulates the inputs of a single page render.
type RenderRequest struct {
	// Filter optionally narrows the displayed links.
	Filter *services.LinkFilter
	// Timeout bounds how long the render waits for both fetches.
	// Zero waits until the context ends.
	Timeout time.Duration
}

// ValidateRequest encapsulates the inputs of a document validation.
type ValidateRequest struct {
	// Source describes the document location for the report.
	Source string
}
