package output

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"
	"github.com/reglet-dev/linkpage/internal/application/dto"
	"github.com/reglet-dev/linkpage/internal/version"
)

// SARIFFormatter formats validation reports as SARIF 2.1.0 JSON.
// Each diagnostic code becomes a rule and each diagnostic a result
// located in the document file.
type SARIFFormatter struct {
	writer io.Writer
}

// NewSARIFFormatter creates a new SARIF formatter.
func NewSARIFFormatter(writer io.Writer) *SARIFFormatter {
	return &SARIFFormatter{writer: writer}
}

// Format writes the report as SARIF 2.1.0 JSON.
func (f *SARIFFormatter) Format(report *dto.ValidationReport) error {
	sarifReport := sarif.NewReport()

	run := sarif.NewRunWithInformationURI("linkpage", "https://github.com/reglet-dev/linkpage")
	toolVersion := version.Get().Version
	run.Tool.Driver.Version = &toolVersion

	newSARIFMapper(report).mapToRun(run)

	sarifReport.AddRun(run)

	if err := sarifReport.Write(f.writer); err != nil {
		return fmt.Errorf("failed to write SARIF output: %w", err)
	}

	_, err := f.writer.Write([]byte("\n"))
	return err
}

func ptrString(s string) *string {
	return &s
}

func ptrBool(b bool) *bool {
	return &b
}
