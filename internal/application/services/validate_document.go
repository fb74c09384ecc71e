package services

import (
	"context"
	"errors"

	"github.com/reglet-dev/linkpage/internal/application/dto"
	apperrors "github.com/reglet-dev/linkpage/internal/application/errors"
	"github.com/reglet-dev/linkpage/internal/domain/diagnostics"
)

// ValidateDocumentUseCase loads a document and reports every finding
// instead of rendering it.
type ValidateDocumentUseCase struct {
	loader *DocumentLoader
}

// NewValidateDocumentUseCase creates a new validate document use case.
func NewValidateDocumentUseCase(loader *DocumentLoader) *ValidateDocumentUseCase {
	return &ValidateDocumentUseCase{loader: loader}
}

// Execute returns the report. Only cancellation is returned as an error;
// document failures are part of the report.
func (uc *ValidateDocumentUseCase) Execute(ctx context.Context, req dto.ValidateRequest) (*dto.ValidationReport, error) {
	report := &dto.ValidationReport{
		Source:      req.Source,
		Diagnostics: []diagnostics.Diagnostic{},
	}

	doc, diags, err := uc.loader.LoadWithDiagnostics(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		report.Error = err.Error()
		report.Diagnostics = append(report.Diagnostics, fatalDiagnostic(err))
		return report, nil
	}

	report.Valid = true
	report.Version = doc.Version()
	report.LinkCount = doc.LinkCount()
	report.Diagnostics = append(report.Diagnostics, diags...)

	return report, nil
}

func fatalDiagnostic(err error) diagnostics.Diagnostic {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return diagnostics.Error(diagnostics.CodeRequiredMissing, validationErr.Field, "%s", validationErr.Message)
	}
	return diagnostics.Error(diagnostics.CodeLoadFailed, "", "%s", err.Error())
}
