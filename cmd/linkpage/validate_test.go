package main

import (
	"testing"

	"github.com/reglet-dev/linkpage/internal/application/dto"
	"github.com/reglet-dev/linkpage/internal/domain/diagnostics"
	"github.com/stretchr/testify/assert"
)

func TestValidationOutcome(t *testing.T) {
	t.Parallel()

	warning := diagnostics.Warning(diagnostics.CodeLinkScheme, "links[0].url", "not http")

	tests := []struct {
		name    string
		report  *dto.ValidationReport
		strict  bool
		wantErr string
	}{
		{
			name:   "valid",
			report: &dto.ValidationReport{Valid: true},
		},
		{
			name: "invalid",
			report: &dto.ValidationReport{Diagnostics: []diagnostics.Diagnostic{
				diagnostics.Error(diagnostics.CodeRequiredMissing, "profile.bio", "bio is required"),
			}},
			wantErr: "document invalid: 1 errors",
		},
		{
			name:   "warnings pass by default",
			report: &dto.ValidationReport{Valid: true, Diagnostics: []diagnostics.Diagnostic{warning}},
		},
		{
			name:    "warnings fail when strict",
			report:  &dto.ValidationReport{Valid: true, Diagnostics: []diagnostics.Diagnostic{warning}},
			strict:  true,
			wantErr: "document has 1 warnings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validationOutcome(tt.report, tt.strict)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
