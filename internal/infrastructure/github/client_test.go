package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/reglet-dev/linkpage/internal/application/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_LookupUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat", r.URL.Path)
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
		assert.True(t, strings.HasPrefix(r.Header.Get("User-Agent"), "linkpage/"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"login":"octocat","avatar_url":"https://avatars.example/u/1","name":"The Octocat","bio":null,"public_repos":8}`))
	}))
	defer server.Close()

	client := NewClient(WithAPIBase(server.URL), WithHTTPClient(server.Client()))
	user, err := client.LookupUser(context.Background(), "octocat")

	require.NoError(t, err)
	assert.Equal(t, "octocat", user.Login)
	assert.Equal(t, "https://avatars.example/u/1", user.AvatarURL)
	assert.Equal(t, "The Octocat", user.Name)
	assert.Empty(t, user.Bio)
	assert.Equal(t, 8, user.PublicRepos)
}

func TestClient_LookupUser_Status(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		wantNotFound bool
	}{
		{"not found", http.StatusNotFound, true},
		{"rate limited", http.StatusForbidden, false},
		{"server error", http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			_, err := NewClient(WithAPIBase(server.URL)).LookupUser(context.Background(), "ghost")

			var lookupErr *apperrors.LookupError
			require.True(t, errors.As(err, &lookupErr))
			assert.Equal(t, tt.status, lookupErr.Status)
			assert.Equal(t, tt.wantNotFound, lookupErr.NotFound())
		})
	}
}

func TestClient_LookupUser_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := NewClient(WithAPIBase(server.URL)).LookupUser(context.Background(), "octocat")

	var lookupErr *apperrors.LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Contains(t, err.Error(), "failed to decode user")
}

func TestClient_LookupUser_EscapesHandle(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, _ = NewClient(WithAPIBase(server.URL+"/")).LookupUser(context.Background(), "a/b")

	assert.Equal(t, "/users/a%2Fb", gotPath)
}
