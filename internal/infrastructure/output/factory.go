package output

import (
	"fmt"
	"io"

	"github.com/reglet-dev/linkpage/internal/application/ports"
)

// PageFormatterFactory implements ports.PageFormatterFactory.
type PageFormatterFactory struct{}

// NewPageFormatterFactory creates a new page formatter factory.
func NewPageFormatterFactory() *PageFormatterFactory {
	return &PageFormatterFactory{}
}

// Create returns a page formatter for the given format name.
func (f *PageFormatterFactory) Create(
	format string,
	writer io.Writer,
	options ports.FormatterOptions,
) (ports.PageFormatter, error) {
	switch format {
	case "html":
		renderer, err := NewHTMLRenderer(writer)
		if err != nil {
			return nil, err
		}
		return renderer, nil
	case "json":
		return NewJSONPageFormatter(writer, options.Indent), nil
	case "yaml":
		return NewYAMLPageFormatter(writer), nil
	default:
		return nil, fmt.Errorf(
			"unknown format: %s (supported: %v)",
			format, f.SupportedFormats(),
		)
	}
}

// SupportedFormats returns list of available format names.
func (f *PageFormatterFactory) SupportedFormats() []string {
	return []string{"html", "json", "yaml"}
}

// ReportFormatterFactory implements ports.ReportFormatterFactory.
type ReportFormatterFactory struct{}

// NewReportFormatterFactory creates a new report formatter factory.
func NewReportFormatterFactory() *ReportFormatterFactory {
	return &ReportFormatterFactory{}
}

// Create returns a report formatter for the given format name.
func (f *ReportFormatterFactory) Create(
	format string,
	writer io.Writer,
	options ports.FormatterOptions,
) (ports.ReportFormatter, error) {
	switch format {
	case "table":
		table := NewTableFormatter(writer)
		table.EnableColor = options.Color
		return table, nil
	case "json":
		return NewJSONReportFormatter(writer, options.Indent), nil
	case "yaml":
		return NewYAMLReportFormatter(writer), nil
	case "junit":
		return NewJUnitFormatter(writer), nil
	case "sarif":
		return NewSARIFFormatter(writer), nil
	default:
		return nil, fmt.Errorf(
			"unknown format: %s (supported: %v)",
			format, f.SupportedFormats(),
		)
	}
}

// SupportedFormats returns list of available format names.
func (f *ReportFormatterFactory) SupportedFormats() []string {
	return []string{"table", "json", "yaml", "junit", "sarif"}
}
