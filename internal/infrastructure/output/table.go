package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/reglet-dev/linkpage/internal/application/dto"
	"github.com/reglet-dev/linkpage/internal/domain/diagnostics"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// TableFormatter formats validation reports as human-readable text.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// Format writes the report.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) Format(report *dto.ValidationReport) error {
	rule := f.colorize(strings.Repeat("─", 80), colorGray)

	fmt.Fprintln(f.writer, rule)
	fmt.Fprintf(f.writer, "Document: %s\n", f.colorize(report.Source, colorBold))
	if report.Version != "" {
		fmt.Fprintf(f.writer, "Version:  %s\n", report.Version)
	}
	if report.Valid {
		fmt.Fprintf(f.writer, "Links:    %d\n", report.LinkCount)
	}
	fmt.Fprintln(f.writer)

	if len(report.Diagnostics) == 0 {
		fmt.Fprintln(f.writer, "No findings.")
	} else {
		fmt.Fprintln(f.writer, f.colorize("Findings:", colorBold))
		fmt.Fprintln(f.writer, rule)
		for _, d := range report.Diagnostics {
			f.formatDiagnostic(d)
		}
	}

	fmt.Fprintln(f.writer, rule)
	f.formatSummary(report)

	return nil
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatDiagnostic(d diagnostics.Diagnostic) {
	symbol, color := f.getSeverityInfo(d.Severity)

	fmt.Fprintf(f.writer, "%s %s", f.colorize(symbol, color), f.colorize(string(d.Code), color))
	if d.Field != "" {
		fmt.Fprintf(f.writer, " %s", f.colorize(d.Field, colorBlue))
	}
	fmt.Fprintf(f.writer, "\n  %s\n", d.Message)
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatSummary(report *dto.ValidationReport) {
	counts := report.Counts()

	status := f.colorize("✓ VALID", colorGreen)
	if !report.Valid {
		status = f.colorize("✗ INVALID", colorRed)
	}

	fmt.Fprintf(f.writer, "Result:   %s\n", status)
	fmt.Fprintf(f.writer, "  %s Errors:   %d\n", f.colorize("✗", colorRed), counts[diagnostics.SeverityError])
	fmt.Fprintf(f.writer, "  %s Warnings: %d\n", f.colorize("⚠", colorYellow), counts[diagnostics.SeverityWarning])
	fmt.Fprintf(f.writer, "  %s Info:     %d\n", f.colorize("ℹ", colorGray), counts[diagnostics.SeverityInfo])
}

// getSeverityInfo returns a symbol and color for a severity.
func (f *TableFormatter) getSeverityInfo(severity diagnostics.Severity) (string, string) {
	switch severity {
	case diagnostics.SeverityError:
		return "✗", colorRed
	case diagnostics.SeverityWarning:
		return "⚠", colorYellow
	case diagnostics.SeverityInfo:
		return "ℹ", colorGray
	default:
		return "?", colorReset
	}
}
