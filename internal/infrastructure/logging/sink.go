// Package logging routes diagnostics to structured logs.
package logging

import (
	"context"
	"log/slog"

	"github.com/reglet-dev/linkpage/internal/domain/diagnostics"
)

// SlogSink implements the application DiagnosticSink port on top of slog.
// Warnings log at Warn, info at Debug, errors at Error.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a sink writing to logger (slog.Default when nil).
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

// Emit logs one diagnostic.
func (s *SlogSink) Emit(ctx context.Context, d diagnostics.Diagnostic) {
	attrs := []any{"code", string(d.Code)}
	if d.Field != "" {
		attrs = append(attrs, "field", d.Field)
	}

	s.logger.Log(ctx, levelFor(d.Severity), d.Message, attrs...)
}

func levelFor(severity diagnostics.Severity) slog.Level {
	switch severity {
	case diagnostics.SeverityError:
		return slog.LevelError
	case diagnostics.SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelDebug
	}
}
