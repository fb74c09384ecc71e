package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/reglet-dev/linkpage/internal/application/dto"
)

// RenderPageUseCase produces the page state for one render.
// Each Execute owns a fresh PageSession; nothing is shared between renders.
type RenderPageUseCase struct {
	loader   *DocumentLoader
	enricher *ProfileEnricher
	logger   *slog.Logger
}

// NewRenderPageUseCase creates a new render page use case.
func NewRenderPageUseCase(loader *DocumentLoader, enricher *ProfileEnricher, logger *slog.Logger) *RenderPageUseCase {
	if logger == nil {
		logger = slog.Default()
	}

	return &RenderPageUseCase{
		loader:   loader,
		enricher: enricher,
		logger:   logger,
	}
}

// NewSession creates an unstarted session wired to this use case's loader and enricher.
func (uc *RenderPageUseCase) NewSession(opts ...SessionOption) *PageSession {
	return NewPageSession(uc.loader, uc.enricher, uc.logger, opts...)
}

// Execute runs a session until both fetches settle or the timeout expires,
// then returns its final state. A timed-out region keeps its loading state.
// Document failures are reported in PageState.Error, not as an error.
func (uc *RenderPageUseCase) Execute(ctx context.Context, req dto.RenderRequest) (dto.PageState, error) {
	session := uc.NewSession()
	defer session.Close()

	session.Start(ctx)

	waitCtx := ctx
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	if err := session.Wait(waitCtx); err != nil {
		if !errors.Is(err, context.DeadlineExceeded) {
			return dto.PageState{}, fmt.Errorf("render cancelled: %w", err)
		}
		uc.logger.Warn("render timed out, using partial state",
			"render_id", session.ID().String(),
			"timeout", req.Timeout)
	}

	if err := ctx.Err(); err != nil {
		return dto.PageState{}, fmt.Errorf("render cancelled: %w", err)
	}

	session.Close()
	state := session.State()

	if state.Document != nil && req.Filter != nil {
		links, err := req.Filter.Apply(state.Document.Links())
		if err != nil {
			return dto.PageState{}, err
		}
		uc.logger.Debug("links filtered",
			"filter", req.Filter.String(),
			"kept", len(links),
			"total", state.Document.LinkCount())
		state.Links = links
	}

	return state, nil
}
