// Package diagnostics defines the findings emitted while loading a document
// and enriching a profile. Diagnostics never change the data they describe.
package diagnostics

import (
	"fmt"
	"strings"
)

// Severity ranks a diagnostic.
type Severity string

const (
	// SeverityInfo is a suggestion (e.g. a link without an icon).
	SeverityInfo Severity = "info"
	// SeverityWarning is an advisory limit or fallback notice.
	SeverityWarning Severity = "warning"
	// SeverityError is a fatal finding; the document was rejected.
	SeverityError Severity = "error"
)

// Code identifies the rule that produced a diagnostic.
type Code string

// Advisory codes.
const (
	CodeNameLength        Code = "profile.name_length"
	CodeBioLength         Code = "profile.bio_length"
	CodeSocialHandleLen   Code = "profile.social_handle_length"
	CodeLinkCount         Code = "links.count"
	CodeLinkTitleLength   Code = "link.title_length"
	CodeLinkDescLength    Code = "link.description_length"
	CodeLinkIconGlyph     Code = "link.icon_glyph"
	CodeLinkIconMissing   Code = "link.icon_missing"
	CodeLinkScheme        Code = "link.url_scheme"
	CodeLinkDuplicateID   Code = "link.duplicate_id"
	CodeEnrichmentFailure Code = "enrichment.fallback"
)

// Fatal codes.
const (
	CodeLoadFailed      Code = "document.load"
	CodeRequiredMissing Code = "document.required"
)

// Diagnostic is a single finding about a document or an enrichment attempt.
type Diagnostic struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Code     Code     `json:"code" yaml:"code"`
	Field    string   `json:"field,omitempty" yaml:"field,omitempty"`
	Message  string   `json:"message" yaml:"message"`
}

// String returns a one-line rendering suitable for terminals.
func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteString(string(d.Severity))
	b.WriteString(" [")
	b.WriteString(string(d.Code))
	b.WriteString("]")
	if d.Field != "" {
		b.WriteString(" ")
		b.WriteString(d.Field)
	}
	b.WriteString(": ")
	b.WriteString(d.Message)
	return b.String()
}

// Warning builds a warning diagnostic.
func Warning(code Code, field, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Info builds an informational diagnostic.
func Info(code Code, field, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Error builds a fatal diagnostic.
func Error(code Code, field, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Count tallies diagnostics by severity.
func Count(list []Diagnostic) map[Severity]int {
	counts := make(map[Severity]int, 3)
	for _, d := range list {
		counts[d.Severity]++
	}
	return counts
}
