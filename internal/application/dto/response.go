package dto

import (
	"github.com/reglet-dev/linkpage/internal/domain/diagnostics"
)

// ValidationReport is the outcome of validating one document.
type ValidationReport struct {
	Source      string                   `json:"source" yaml:"source"`
	Version     string                   `json:"version,omitempty" yaml:"version,omitempty"`
	Error       string                   `json:"error,omitempty" yaml:"error,omitempty"`
	Diagnostics []diagnostics.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
	LinkCount   int                      `json:"link_count" yaml:"link_count"`
	Valid       bool                     `json:"valid" yaml:"valid"`
}

// Counts tallies diagnostics by severity.
func (r *ValidationReport) Counts() map[diagnostics.Severity]int {
	return diagnostics.Count(r.Diagnostics)
}
