package output

import (
	"encoding/json"
	"io"

	"github.com/reglet-dev/linkpage/internal/application/dto"
)

// JSONPageFormatter formats page states as JSON.
type JSONPageFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONPageFormatter creates a new JSON page formatter.
// If indent is true, the output will be pretty-printed with indentation.
func NewJSONPageFormatter(w io.Writer, indent bool) *JSONPageFormatter {
	return &JSONPageFormatter{writer: w, indent: indent}
}

// Format writes the page state as JSON.
func (f *JSONPageFormatter) Format(state dto.PageState) error {
	return writeJSON(f.writer, newPageData(state), f.indent)
}

// JSONReportFormatter formats validation reports as JSON.
type JSONReportFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONReportFormatter creates a new JSON report formatter.
func NewJSONReportFormatter(w io.Writer, indent bool) *JSONReportFormatter {
	return &JSONReportFormatter{writer: w, indent: indent}
}

// Format writes the report as JSON.
func (f *JSONReportFormatter) Format(report *dto.ValidationReport) error {
	return writeJSON(f.writer, report, f.indent)
}

func writeJSON(w io.Writer, v any, indent bool) error {
	var data []byte
	var err error

	if indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return err
	}

	// Add newline for better terminal output
	_, err = w.Write([]byte("\n"))
	return err
}
