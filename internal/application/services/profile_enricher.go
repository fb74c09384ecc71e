package services

import (
	"context"
	"errors"
	"log/slog"

	apperrors "github.com/reglet-dev/linkpage/internal/application/errors"
	"github.com/reglet-dev/linkpage/internal/application/ports"
	"github.com/reglet-dev/linkpage/internal/domain/diagnostics"
	"github.com/reglet-dev/linkpage/internal/domain/values"
)

// ProfileEnricher resolves the avatar for a handle. It never fails outward:
// any lookup failure degrades to the fallback avatar built from the handle.
type ProfileEnricher struct {
	lookup       ports.UserLookup
	sink         ports.DiagnosticSink
	logger       *slog.Logger
	fallbackBase string
}

// NewProfileEnricher creates a new profile enricher.
// An empty fallbackBase uses values.DefaultFallbackBase.
func NewProfileEnricher(lookup ports.UserLookup, fallbackBase string, sink ports.DiagnosticSink, logger *slog.Logger) *ProfileEnricher {
	if logger == nil {
		logger = slog.Default()
	}
	if fallbackBase == "" {
		fallbackBase = values.DefaultFallbackBase
	}

	return &ProfileEnricher{
		lookup:       lookup,
		sink:         sink,
		logger:       logger,
		fallbackBase: fallbackBase,
	}
}

// Enrich performs at most one lookup. An empty handle returns values.NoAvatar()
// without any request.
func (e *ProfileEnricher) Enrich(ctx context.Context, handle string) values.Avatar {
	if handle == "" {
		return values.NoAvatar()
	}

	user, err := e.lookup.LookupUser(ctx, handle)
	if err == nil && user != nil && user.AvatarURL != "" {
		e.logger.Debug("profile lookup succeeded", "handle", handle, "login", user.Login)
		return values.LookupAvatar(user.AvatarURL)
	}

	reason := "profile record has no avatar"
	if err != nil {
		reason = err.Error()
	}

	// A cancelled lookup belongs to a torn-down render, so nothing is reported.
	if ctxErr := ctx.Err(); ctxErr != nil {
		e.logger.Debug("profile lookup cancelled", "handle", handle, "error", ctxErr)
		return values.FallbackAvatar(e.fallbackBase, handle, ctxErr.Error())
	}

	if e.sink != nil {
		e.sink.Emit(ctx, fallbackDiagnostic(handle, reason, err))
	}

	return values.FallbackAvatar(e.fallbackBase, handle, reason)
}

// fallbackDiagnostic points at the document when the handle does not exist,
// since that is fixable there; other failures are transient.
func fallbackDiagnostic(handle, reason string, err error) diagnostics.Diagnostic {
	var lookupErr *apperrors.LookupError
	if errors.As(err, &lookupErr) && lookupErr.NotFound() {
		return diagnostics.Warning(diagnostics.CodeEnrichmentFailure, "profile.gitHubUsername",
			"GitHub user %q does not exist, using fallback avatar", handle)
	}
	return diagnostics.Warning(diagnostics.CodeEnrichmentFailure, "profile.gitHubUsername",
		"failed to fetch profile for %q, using fallback avatar: %s", handle, reason)
}
