package main

import (
	"fmt"

	"github.com/reglet-dev/linkpage/internal/application/dto"
	"github.com/reglet-dev/linkpage/internal/application/ports"
	"github.com/reglet-dev/linkpage/internal/domain/diagnostics"
	"github.com/spf13/cobra"
)

var (
	validateOpts   = DefaultCommonOptions("table", "table", "json", "yaml", "junit", "sarif")
	noColor        bool
	strictWarnings bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [document]",
	Short: "Check a document for errors and warnings",
	Long: `Load the document and report every problem found.

Missing required fields are errors and make the command fail. Overlong text,
duplicate ids, non-http links and icon problems are warnings; use --strict
to fail on those too. Reports can be written as SARIF or JUnit for CI.`,
	Example: `  linkpage validate data.json
  linkpage validate https://example.com --format sarif -o linkpage.sarif`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return validateOpts.ValidateFlags()
	},
	RunE: withContainer(runValidate),
}

func init() {
	validateOpts.RegisterFlags(validateCmd)
	validateCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored table output")
	validateCmd.Flags().BoolVar(&strictWarnings, "strict", false, "Treat warnings as failures")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cc *CommandContext, _ *cobra.Command, _ []string) error {
	ctx, cancel := validateOpts.ApplyToContext(cc.Context)
	defer cancel()

	source := cc.Container.DocumentSource().Location()
	cc.Logger.Debug("validating document", "document", source)

	report, err := cc.Container.ValidateDocumentUseCase().Execute(ctx, dto.ValidateRequest{Source: source})
	if err != nil {
		return fmt.Errorf("validation cancelled: %w", err)
	}

	w, closeOutput, err := validateOpts.OpenOutput()
	if err != nil {
		return err
	}
	defer func() {
		_ = closeOutput() // Best-effort cleanup
	}()

	formatter, err := cc.Container.ReportFormatters().Create(validateOpts.Format, w, ports.FormatterOptions{
		Indent: true,
		Color:  !noColor && validateOpts.WritesToTerminal(),
	})
	if err != nil {
		return err
	}
	if err := formatter.Format(report); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return validationOutcome(report, strictWarnings)
}

// validationOutcome maps a report to the command's exit status.
func validationOutcome(report *dto.ValidationReport, strict bool) error {
	counts := report.Counts()
	if !report.Valid {
		return fmt.Errorf("document invalid: %d errors", counts[diagnostics.SeverityError])
	}
	if strict && counts[diagnostics.SeverityWarning] > 0 {
		return fmt.Errorf("document has %d warnings", counts[diagnostics.SeverityWarning])
	}
	return nil
}
