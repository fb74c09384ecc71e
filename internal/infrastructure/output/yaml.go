package output

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/linkpage/internal/application/dto"
)

// YAMLPageFormatter formats page states as YAML.
type YAMLPageFormatter struct {
	writer io.Writer
}

// NewYAMLPageFormatter creates a new YAML page formatter.
func NewYAMLPageFormatter(w io.Writer) *YAMLPageFormatter {
	return &YAMLPageFormatter{writer: w}
}

// Format writes the page state as YAML.
func (f *YAMLPageFormatter) Format(state dto.PageState) error {
	return writeYAML(f.writer, newPageData(state))
}

// YAMLReportFormatter formats validation reports as YAML.
type YAMLReportFormatter struct {
	writer io.Writer
}

// NewYAMLReportFormatter creates a new YAML report formatter.
func NewYAMLReportFormatter(w io.Writer) *YAMLReportFormatter {
	return &YAMLReportFormatter{writer: w}
}

// Format writes the report as YAML.
func (f *YAMLReportFormatter) Format(report *dto.ValidationReport) error {
	return writeYAML(f.writer, report)
}

func writeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w, yaml.Indent(2))

	if err := encoder.Encode(v); err != nil {
		return err
	}

	return encoder.Close()
}
