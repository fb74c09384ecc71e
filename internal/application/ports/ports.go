// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"
	"io"

	"github.com/reglet-dev/linkpage/internal/application/dto"
	"github.com/reglet-dev/linkpage/internal/domain/diagnostics"
	"github.com/reglet-dev/linkpage/internal/domain/entities"
	"github.com/reglet-dev/linkpage/internal/infrastructure/system"
)

// DocumentSource retrieves the raw bytes of the link page document.
// Each call performs exactly one retrieval; implementations never retry or cache.
type DocumentSource interface {
	Fetch(ctx context.Context) ([]byte, error)

	// Location describes where the document lives (URL or path) for messages.
	Location() string
}

// DocumentDecoder turns retrieved bytes into a raw, unvalidated document.
type DocumentDecoder interface {
	Decode(data []byte) (*entities.RawDocument, error)
}

// UserLookup fetches the external user record for a handle.
type UserLookup interface {
	LookupUser(ctx context.Context, handle string) (*entities.ExternalUser, error)
}

// DiagnosticSink receives non-fatal findings from loading and enrichment.
// Implementations must be safe for concurrent use.
type DiagnosticSink interface {
	Emit(ctx context.Context, d diagnostics.Diagnostic)
}

// PageFormatter writes a page state in one output format.
type PageFormatter interface {
	Format(page dto.PageState) error
}

// ReportFormatter writes a document validation report.
type ReportFormatter interface {
	Format(report *dto.ValidationReport) error
}

// FormatterOptions tunes formatter construction.
type FormatterOptions struct {
	// Indent pretty-prints JSON output.
	Indent bool
	// Color enables ANSI colors for table output.
	Color bool
}

// PageFormatterFactory creates page formatters by name.
type PageFormatterFactory interface {
	Create(format string, w io.Writer, options FormatterOptions) (PageFormatter, error)
	SupportedFormats() []string
}

// ReportFormatterFactory creates report formatters by name.
type ReportFormatterFactory interface {
	Create(format string, w io.Writer, options FormatterOptions) (ReportFormatter, error)
	SupportedFormats() []string
}

// SystemConfigProvider loads system configuration.
type SystemConfigProvider interface {
	LoadConfig(ctx context.Context, path string) (*system.Config, error)
}
