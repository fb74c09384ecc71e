package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	apperrors "github.com/reglet-dev/linkpage/internal/application/errors"
	"github.com/reglet-dev/linkpage/internal/domain/diagnostics"
	"github.com/reglet-dev/linkpage/internal/domain/entities"
	"github.com/reglet-dev/linkpage/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFallbackBase = "https://unavatar.io/github/"

func TestProfileEnricher_Enrich_EmptyHandle(t *testing.T) {
	lookup := &fakeLookup{}
	sink := &recordingSink{}

	avatar := NewProfileEnricher(lookup, testFallbackBase, sink, nil).Enrich(context.Background(), "")

	assert.Equal(t, values.NoAvatar(), avatar)
	assert.Zero(t, lookup.calls(), "no request without a handle")
	assert.Empty(t, sink.codes())
}

func TestProfileEnricher_Enrich_Success(t *testing.T) {
	lookup := &fakeLookup{user: &entities.ExternalUser{Login: "oct", AvatarURL: "https://avatars.githubusercontent.com/u/1?v=4"}}

	avatar := NewProfileEnricher(lookup, testFallbackBase, nil, nil).Enrich(context.Background(), "oct")

	assert.Equal(t, values.AvatarLookup, avatar.Source)
	assert.Equal(t, "https://avatars.githubusercontent.com/u/1?v=4", avatar.URL)
	assert.Equal(t, []string{"oct"}, lookup.handles)
}

func TestProfileEnricher_Enrich_Fallbacks(t *testing.T) {
	tests := []struct {
		name   string
		lookup *fakeLookup
	}{
		{"not found", &fakeLookup{err: apperrors.NewLookupError("oct", http.StatusNotFound, nil)}},
		{"server error", &fakeLookup{err: apperrors.NewLookupError("oct", http.StatusBadGateway, nil)}},
		{"transport", &fakeLookup{err: apperrors.NewLookupError("oct", 0, errors.New("dial tcp: timeout"))}},
		{"record without avatar", &fakeLookup{user: &entities.ExternalUser{Login: "oct"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}

			avatar := NewProfileEnricher(tt.lookup, testFallbackBase, sink, nil).Enrich(context.Background(), "oct")

			assert.Equal(t, values.AvatarFallback, avatar.Source)
			assert.Equal(t, testFallbackBase+"oct", avatar.URL)
			assert.NotEmpty(t, avatar.Reason)
			assert.Equal(t, 1, tt.lookup.calls(), "no retry")
			assert.Equal(t, []diagnostics.Code{diagnostics.CodeEnrichmentFailure}, sink.codes())
		})
	}
}

func TestProfileEnricher_Enrich_NotFoundReason(t *testing.T) {
	lookup := &fakeLookup{err: apperrors.NewLookupError("oct", http.StatusNotFound, nil)}
	sink := &recordingSink{}

	avatar := NewProfileEnricher(lookup, "", sink, nil).Enrich(context.Background(), "oct")

	assert.Equal(t, values.DefaultFallbackBase+"oct", avatar.URL)
	assert.Contains(t, avatar.Reason, "not found")
	require.Len(t, sink.diags, 1)
	assert.Equal(t, `GitHub user "oct" does not exist, using fallback avatar`, sink.diags[0].Message)
}

func TestProfileEnricher_Enrich_CancelledIsSilent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	lookup := &fakeLookup{err: apperrors.NewLookupError("oct", 0, context.Canceled)}
	sink := &recordingSink{}

	avatar := NewProfileEnricher(lookup, "", sink, nil).Enrich(ctx, "oct")

	assert.Equal(t, values.DefaultFallbackBase+"oct", avatar.URL)
	assert.Empty(t, sink.codes())
}
