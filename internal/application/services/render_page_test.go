package services

import (
	"context"
	"testing"
	"time"

	"github.com/reglet-dev/linkpage/internal/application/dto"
	"github.com/reglet-dev/linkpage/internal/domain/entities"
	"github.com/reglet-dev/linkpage/internal/domain/services"
	"github.com/reglet-dev/linkpage/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPageUseCase_Execute(t *testing.T) {
	lookup := &fakeLookup{user: &entities.ExternalUser{Login: "oct", AvatarURL: "https://avatars/oct"}}
	loader := NewDocumentLoader(&fakeSource{body: scenarioDocument}, jsonDecoder{}, nil, nil, nil)
	uc := NewRenderPageUseCase(loader, NewProfileEnricher(lookup, testFallbackBase, nil, nil), nil)

	state, err := uc.Execute(context.Background(), dto.RenderRequest{Timeout: 2 * time.Second})

	require.NoError(t, err)
	assert.True(t, state.Settled())
	assert.Equal(t, "https://avatars/oct", state.Avatar.URL)

	sorted := services.SortLinks(state.PageLinks())
	assert.Equal(t, "y", sorted[0].ID)
	assert.Equal(t, "x", sorted[1].ID)
}

func TestRenderPageUseCase_Execute_DocumentErrorIsState(t *testing.T) {
	loader := NewDocumentLoader(&fakeSource{body: `{"profile":{"name":"A","bio":"b","gitHubUsername":"oct"},"links":[]}`}, jsonDecoder{}, nil, nil, nil)
	lookup := &fakeLookup{}
	uc := NewRenderPageUseCase(loader, NewProfileEnricher(lookup, testFallbackBase, nil, nil), nil)

	state, err := uc.Execute(context.Background(), dto.RenderRequest{})

	require.NoError(t, err)
	assert.Contains(t, state.Error, "links must be non-empty")
	assert.Nil(t, state.Document)
	assert.Equal(t, values.AvatarNone, state.Avatar.Source)
	assert.Zero(t, lookup.calls())
}

func TestRenderPageUseCase_Execute_Filter(t *testing.T) {
	loader := NewDocumentLoader(&fakeSource{body: scenarioDocument}, jsonDecoder{}, nil, nil, nil)
	uc := NewRenderPageUseCase(loader, NewProfileEnricher(&fakeLookup{}, testFallbackBase, nil, nil), nil)
	filter, err := services.CompileLinkFilter(`id == "x"`)
	require.NoError(t, err)

	state, err := uc.Execute(context.Background(), dto.RenderRequest{Filter: filter})

	require.NoError(t, err)
	require.Len(t, state.PageLinks(), 1)
	assert.Equal(t, "x", state.PageLinks()[0].ID)
	assert.Equal(t, 2, state.Document.LinkCount(), "document itself is untouched")
}

// blockingSource never answers until its context ends.
type blockingSource struct{}

func (blockingSource) Fetch(ctx context.Context) ([]byte, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingSource) Location() string { return "test://slow" }

func TestRenderPageUseCase_Execute_TimeoutKeepsLoadingState(t *testing.T) {
	loader := NewDocumentLoader(blockingSource{}, jsonDecoder{}, nil, nil, nil)
	uc := NewRenderPageUseCase(loader, NewProfileEnricher(&fakeLookup{}, testFallbackBase, nil, nil), nil)

	state, err := uc.Execute(context.Background(), dto.RenderRequest{Timeout: 20 * time.Millisecond})

	require.NoError(t, err)
	assert.True(t, state.DocumentLoading)
	assert.True(t, state.ProfileLoading())
	assert.True(t, state.LinksLoading())
	assert.Empty(t, state.Error)
}

func TestRenderPageUseCase_Execute_Cancelled(t *testing.T) {
	loader := NewDocumentLoader(blockingSource{}, jsonDecoder{}, nil, nil, nil)
	uc := NewRenderPageUseCase(loader, NewProfileEnricher(&fakeLookup{}, testFallbackBase, nil, nil), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, dto.RenderRequest{Timeout: time.Second})
	assert.ErrorIs(t, err, context.Canceled)
}
