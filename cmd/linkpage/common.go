package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/reglet-dev/linkpage/internal/domain/services"
	"github.com/spf13/cobra"
)

// CommonOptions contains flags shared across the output commands.
type CommonOptions struct {
	// Output
	Format string
	Output string

	// Selection
	Filter string

	// Execution
	Timeout time.Duration

	formats []string
}

// DefaultCommonOptions returns sensible defaults for a command writing one of formats.
func DefaultCommonOptions(defaultFormat string, formats ...string) CommonOptions {
	return CommonOptions{
		Format:  defaultFormat,
		Timeout: 2 * time.Minute,
		formats: formats,
	}
}

// RegisterFlags adds common flags to a cobra command.
func (opts *CommonOptions) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", opts.Timeout,
		"Global timeout for the command (0 to disable)")
	cmd.Flags().StringVar(&opts.Format, "format", opts.Format,
		"Output format: "+strings.Join(opts.formats, ", "))
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "",
		"Output file path (default: stdout)")
}

// RegisterFilterFlag adds the link filter flag.
func (opts *CommonOptions) RegisterFilterFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&opts.Filter, "filter", "",
		"Link filter expression (e.g. \"order < 10 && url startsWith 'https'\")")
}

// ApplyToContext applies timeout to context.
// Returns new context and cancel function.
func (opts *CommonOptions) ApplyToContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if opts.Timeout > 0 {
		return context.WithTimeout(ctx, opts.Timeout)
	}
	return ctx, func() {}
}

// ValidateFlags validates common options.
func (opts *CommonOptions) ValidateFlags() error {
	if opts.Timeout < 0 {
		return fmt.Errorf("--timeout must not be negative")
	}
	if len(opts.formats) > 0 && !slices.Contains(opts.formats, opts.Format) {
		return fmt.Errorf("invalid format: %s (valid: %s)", opts.Format, strings.Join(opts.formats, ", "))
	}
	if _, err := opts.CompileFilter(); err != nil {
		return err
	}
	return nil
}

// CompileFilter compiles the --filter expression. Empty yields nil.
func (opts *CommonOptions) CompileFilter() (*services.LinkFilter, error) {
	return services.CompileLinkFilter(opts.Filter)
}

// OpenOutput returns stdout or the --output file, and a close function.
func (opts *CommonOptions) OpenOutput() (io.Writer, func() error, error) {
	if opts.Output == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	//nolint:gosec // G304: User-controlled output file path is intentional
	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, file.Close, nil
}

// WritesToTerminal reports whether output goes to an interactive stdout.
func (opts *CommonOptions) WritesToTerminal() bool {
	if opts.Output != "" {
		return false
	}
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
