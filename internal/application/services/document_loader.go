// Package services contains application use cases.
package services

import (
	"context"
	"errors"
	"log/slog"

	apperrors "github.com/reglet-dev/linkpage/internal/application/errors"
	"github.com/reglet-dev/linkpage/internal/application/ports"
	"github.com/reglet-dev/linkpage/internal/domain/diagnostics"
	"github.com/reglet-dev/linkpage/internal/domain/entities"
	"github.com/reglet-dev/linkpage/internal/domain/services"
)

// DocumentLoader retrieves, decodes and validates the link page document.
// Every call performs exactly one retrieval. Nothing is cached between calls.
type DocumentLoader struct {
	source   ports.DocumentSource
	decoder  ports.DocumentDecoder
	compiler *services.DocumentCompiler
	sink     ports.DiagnosticSink
	logger   *slog.Logger
}

// NewDocumentLoader creates a new document loader.
func NewDocumentLoader(
	source ports.DocumentSource,
	decoder ports.DocumentDecoder,
	compiler *services.DocumentCompiler,
	sink ports.DiagnosticSink,
	logger *slog.Logger,
) *DocumentLoader {
	if logger == nil {
		logger = slog.Default()
	}
	if compiler == nil {
		compiler = services.NewDocumentCompiler()
	}

	return &DocumentLoader{
		source:   source,
		decoder:  decoder,
		compiler: compiler,
		sink:     sink,
		logger:   logger,
	}
}

// Load returns a complete, valid document or an error; never a partial document.
// Failures are *apperrors.LoadError (retrieval or decoding) or
// *apperrors.ValidationError (required field). Advisory diagnostics go to the sink.
func (l *DocumentLoader) Load(ctx context.Context) (*entities.Document, error) {
	doc, diags, err := l.LoadWithDiagnostics(ctx)
	if err != nil {
		return nil, err
	}

	if l.sink != nil {
		for _, d := range diags {
			l.sink.Emit(ctx, d)
		}
	}

	return doc, nil
}

// LoadWithDiagnostics is Load without emitting: advisory diagnostics are returned instead.
func (l *DocumentLoader) LoadWithDiagnostics(ctx context.Context) (*entities.Document, []diagnostics.Diagnostic, error) {
	location := l.source.Location()
	l.logger.Debug("loading document", "source", location)

	data, err := l.source.Fetch(ctx)
	if err != nil {
		var loadErr *apperrors.LoadError
		if errors.As(err, &loadErr) {
			return nil, nil, err
		}
		return nil, nil, apperrors.NewLoadError(location, "retrieval failed", err)
	}

	raw, err := l.decoder.Decode(data)
	if err != nil {
		return nil, nil, apperrors.NewLoadError(location, "does not decode as a document", err)
	}

	doc, diags, err := l.compiler.Compile(raw)
	if err != nil {
		var fieldErr *entities.RequiredFieldError
		if errors.As(err, &fieldErr) {
			return nil, nil, apperrors.NewValidationError(fieldErr.Field, fieldErr.Message, fieldErr.Index, err)
		}
		return nil, nil, apperrors.NewValidationError("document", err.Error(), -1, err)
	}

	l.logger.Info("document loaded",
		"source", location,
		"version", doc.Version(),
		"links", doc.LinkCount(),
		"diagnostics", len(diags))

	return doc, diags, nil
}
