package main

import (
	"errors"
	"fmt"

	"github.com/reglet-dev/linkpage/internal/application/dto"
	"github.com/reglet-dev/linkpage/internal/application/ports"
	"github.com/spf13/cobra"
)

var renderOpts = DefaultCommonOptions("html", "html", "json", "yaml")

// errDocumentFailed marks a render whose page shows the document error.
var errDocumentFailed = errors.New("document failed to load")

var renderCmd = &cobra.Command{
	Use:   "render [document]",
	Short: "Render the link page once",
	Long: `Load the document, look up the avatar and write the finished page.

The document is a file path or URL. Without an argument the document from
the config file or LINKPAGE_DOCUMENT is used. A region whose data did not
arrive before the render timeout keeps its loading placeholder.`,
	Example: `  linkpage render data.json -o index.html
  linkpage render https://example.com --format json
  linkpage render --filter "id != 'blog'"`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return renderOpts.ValidateFlags()
	},
	RunE: withContainer(runRender),
}

func init() {
	renderOpts.RegisterFlags(renderCmd)
	renderOpts.RegisterFilterFlag(renderCmd)
	rootCmd.AddCommand(renderCmd)
}

func runRender(cc *CommandContext, _ *cobra.Command, _ []string) error {
	filter, err := renderOpts.CompileFilter()
	if err != nil {
		return err
	}

	renderTimeout, err := cc.Container.SystemConfig().RenderTimeout()
	if err != nil {
		return err
	}

	ctx, cancel := renderOpts.ApplyToContext(cc.Context)
	defer cancel()

	cc.Logger.Info("rendering page", "document", cc.Container.DocumentSource().Location())

	state, err := cc.Container.RenderPageUseCase().Execute(ctx, dto.RenderRequest{
		Filter:  filter,
		Timeout: renderTimeout,
	})
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	w, closeOutput, err := renderOpts.OpenOutput()
	if err != nil {
		return err
	}
	defer func() {
		_ = closeOutput() // Best-effort cleanup
	}()

	formatter, err := cc.Container.PageFormatters().Create(renderOpts.Format, w, ports.FormatterOptions{Indent: true})
	if err != nil {
		return err
	}
	if err := formatter.Format(state); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if renderOpts.Output != "" {
		cc.Logger.Info("page written", "file", renderOpts.Output, "format", renderOpts.Format, "render_id", state.RenderID)
	}

	// The page is written either way; the exit status still reports the failure.
	if state.Error != "" {
		return fmt.Errorf("%w: %s", errDocumentFailed, state.Error)
	}
	return nil
}
