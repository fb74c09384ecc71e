package output

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/reglet-dev/linkpage/internal/application/dto"
	"github.com/reglet-dev/linkpage/internal/domain/diagnostics"
)

// JUnitFormatter formats validation reports as JUnit XML so CI systems can
// surface document problems. The document load is one test case; every
// diagnostic is another. Errors fail, warnings and info are reported as skipped.
type JUnitFormatter struct {
	writer io.Writer
}

// NewJUnitFormatter creates a new JUnit formatter.
func NewJUnitFormatter(w io.Writer) *JUnitFormatter {
	return &JUnitFormatter{writer: w}
}

// JUnitTestSuites is the JUnit XML root.
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Name       string           `xml:"name,attr"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite groups the cases for one document.
type JUnitTestSuite struct {
	XMLName   xml.Name        `xml:"testsuite"`
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Skipped   int             `xml:"skipped,attr"`
	TestCases []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase is one check.
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Skipped   *JUnitSkipped `xml:"skipped,omitempty"`
}

// JUnitFailure marks a failed case.
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr,omitempty"`
	Content string `xml:",chardata"`
}

// JUnitSkipped marks an advisory case.
type JUnitSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

// Format writes the report as JUnit XML.
func (f *JUnitFormatter) Format(report *dto.ValidationReport) error {
	suite := JUnitTestSuite{Name: report.Source}

	load := JUnitTestCase{Name: "document", ClassName: "linkpage.load"}
	if !report.Valid {
		load.Failure = &JUnitFailure{Message: report.Error, Type: string(diagnostics.SeverityError)}
		suite.Failures++
	}
	suite.TestCases = append(suite.TestCases, load)

	for _, d := range report.Diagnostics {
		if d.Severity == diagnostics.SeverityError {
			// Already reported by the document case.
			continue
		}
		c := JUnitTestCase{
			Name:      caseName(d),
			ClassName: "linkpage." + string(d.Code),
			Skipped:   &JUnitSkipped{Message: fmt.Sprintf("%s: %s", d.Severity, d.Message)},
		}
		suite.Skipped++
		suite.TestCases = append(suite.TestCases, c)
	}
	suite.Tests = len(suite.TestCases)

	suites := JUnitTestSuites{
		Name:       "linkpage validate",
		Tests:      suite.Tests,
		Failures:   suite.Failures,
		TestSuites: []JUnitTestSuite{suite},
	}

	if _, err := f.writer.Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(f.writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(suites); err != nil {
		return err
	}

	_, err := f.writer.Write([]byte("\n"))
	return err
}

func caseName(d diagnostics.Diagnostic) string {
	if d.Field == "" {
		return string(d.Code)
	}
	return d.Field
}
