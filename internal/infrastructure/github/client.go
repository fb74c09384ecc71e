// Package github looks up public user records from the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	apperrors "github.com/reglet-dev/linkpage/internal/application/errors"
	"github.com/reglet-dev/linkpage/internal/domain/entities"
	"github.com/reglet-dev/linkpage/internal/version"
)

// DefaultAPIBase is the public GitHub REST endpoint.
const DefaultAPIBase = "https://api.github.com"

const acceptHeader = "application/vnd.github.v3+json"

// Client implements ports.UserLookup. Requests are unauthenticated.
type Client struct {
	httpClient *http.Client
	apiBase    string
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithAPIBase points the client at another API root.
func WithAPIBase(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.apiBase = strings.TrimRight(base, "/")
		}
	}
}

// NewClient creates a new GitHub client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		apiBase:    DefaultAPIBase,
		userAgent:  version.Get().UserAgent(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LookupUser fetches /users/<handle>. Any non-200 answer is a LookupError;
// 404 is reported through LookupError.NotFound.
func (c *Client) LookupUser(ctx context.Context, handle string) (*entities.ExternalUser, error) {
	endpoint := fmt.Sprintf("%s/users/%s", c.apiBase, url.PathEscape(handle))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.NewLookupError(handle, 0, err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewLookupError(handle, 0, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewLookupError(handle, resp.StatusCode, nil)
	}

	var user entities.ExternalUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, apperrors.NewLookupError(handle, 0, fmt.Errorf("failed to decode user: %w", err))
	}

	return &user, nil
}
