package output

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"
	"github.com/reglet-dev/linkpage/internal/application/dto"
	"github.com/reglet-dev/linkpage/internal/domain/diagnostics"
)

type sarifMapper struct {
	report *dto.ValidationReport
	cwd    string
}

func newSARIFMapper(report *dto.ValidationReport) *sarifMapper {
	cwd, _ := os.Getwd() // Best effort, ignore error
	return &sarifMapper{report: report, cwd: cwd}
}

// mapToRun populates the SARIF run with rules, results, artifacts and the invocation.
func (m *sarifMapper) mapToRun(run *sarif.Run) {
	m.addRules(run)
	m.addResults(run)
	m.addArtifact(run)
	m.addInvocation(run)
}

// addRules registers one rule per distinct diagnostic code, in first-seen order.
func (m *sarifMapper) addRules(run *sarif.Run) {
	seen := make(map[diagnostics.Code]bool)
	for _, d := range m.report.Diagnostics {
		if seen[d.Code] {
			continue
		}
		seen[d.Code] = true

		id := string(d.Code)
		rule := sarif.NewReportingDescriptor().WithID(id)
		rule.WithName(id)
		rule.WithShortDescription(&sarif.MultiformatMessageString{
			Text: ptrString(ruleDescription(d.Code)),
		})
		rule.WithDefaultConfiguration(&sarif.ReportingConfiguration{
			Level: m.mapSeverityToLevel(d.Severity),
		})

		run.Tool.Driver.AddRule(rule)
	}
}

func (m *sarifMapper) addResults(run *sarif.Run) {
	for _, d := range m.report.Diagnostics {
		result := sarif.NewRuleResult(string(d.Code))
		result.Level = m.mapSeverityToLevel(d.Severity)
		result.Kind = "fail"
		result.Message = sarif.NewTextMessage(d.Message)

		if loc := m.location(); loc != nil {
			result.Locations = []*sarif.Location{loc}
		}

		if d.Field != "" {
			props := sarif.NewPropertyBag()
			props.Add("field", d.Field)
			result.WithProperties(props)
		}

		run.AddResult(result)
	}
}

// location points at the document. The field path travels in result properties.
func (m *sarifMapper) location() *sarif.Location {
	if m.report.Source == "" {
		return nil
	}

	return sarif.NewLocation().WithPhysicalLocation(
		sarif.NewPhysicalLocation().
			WithArtifactLocation(sarif.NewArtifactLocation().WithURI(m.normalizeURI(m.report.Source))),
	)
}

func (m *sarifMapper) addArtifact(run *sarif.Run) {
	if m.report.Source == "" {
		return
	}
	artifact := sarif.NewArtifact().
		WithLocation(sarif.NewArtifactLocation().WithURI(m.normalizeURI(m.report.Source)))
	run.AddArtifact(artifact)
}

func (m *sarifMapper) addInvocation(run *sarif.Run) {
	invocation := sarif.NewInvocation()
	invocation.ExecutionSuccessful = ptrBool(m.report.Valid)

	props := sarif.NewPropertyBag()
	props.Add("linkCount", m.report.LinkCount)
	if m.report.Version != "" {
		props.Add("documentVersion", m.report.Version)
	}
	invocation.WithProperties(props)

	run.AddInvocation(invocation)
}

// normalizeURI leaves URLs alone and turns file paths into CWD-relative
// or file:// URIs.
func (m *sarifMapper) normalizeURI(source string) string {
	if strings.Contains(source, "://") {
		return source
	}

	abs, err := filepath.Abs(source)
	if err != nil {
		return filepath.ToSlash(source)
	}

	if m.cwd != "" {
		if rel, err := filepath.Rel(m.cwd, abs); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}

	return "file://" + filepath.ToSlash(abs)
}

func (m *sarifMapper) mapSeverityToLevel(severity diagnostics.Severity) string {
	switch severity {
	case diagnostics.SeverityError:
		return "error"
	case diagnostics.SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}

func ruleDescription(code diagnostics.Code) string {
	switch code {
	case diagnostics.CodeLoadFailed:
		return "Document could not be retrieved or decoded"
	case diagnostics.CodeRequiredMissing:
		return "Required document field is missing"
	case diagnostics.CodeNameLength:
		return "Profile name exceeds the recommended length"
	case diagnostics.CodeBioLength:
		return "Profile bio exceeds the recommended length"
	case diagnostics.CodeSocialHandleLen:
		return "Social media handle exceeds the recommended length"
	case diagnostics.CodeLinkCount:
		return "More links than the recommended maximum"
	case diagnostics.CodeLinkTitleLength:
		return "Link title exceeds the recommended length"
	case diagnostics.CodeLinkDescLength:
		return "Link description exceeds the recommended length"
	case diagnostics.CodeLinkIconGlyph:
		return "Link icon is longer than one glyph"
	case diagnostics.CodeLinkIconMissing:
		return "Link has no icon"
	case diagnostics.CodeLinkScheme:
		return "Link URL does not use http or https"
	case diagnostics.CodeLinkDuplicateID:
		return "Link id is used more than once"
	case diagnostics.CodeEnrichmentFailure:
		return "Profile lookup failed and a fallback avatar was used"
	default:
		return string(code)
	}
}
