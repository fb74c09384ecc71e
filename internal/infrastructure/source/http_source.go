// Package source retrieves link page documents over HTTP or from disk.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	apperrors "github.com/reglet-dev/linkpage/internal/application/errors"
	"github.com/reglet-dev/linkpage/internal/version"
)

// DefaultDocumentPath is the path of the document relative to the site origin.
const DefaultDocumentPath = "/data.json"

// maxDocumentBytes caps how much of a response body is read.
const maxDocumentBytes = 4 << 20

// HTTPSource fetches the document with a single GET. It never retries.
type HTTPSource struct {
	client *http.Client
	url    string
}

// HTTPOption configures an HTTPSource.
type HTTPOption func(*HTTPSource)

// WithHTTPClient overrides the client used for the request.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		s.client = client
	}
}

// NewHTTPSource creates a source for baseURL joined with path.
// An empty path means DefaultDocumentPath. A query on baseURL is kept.
func NewHTTPSource(baseURL, path string, opts ...HTTPOption) *HTTPSource {
	if path == "" {
		path = DefaultDocumentPath
	}

	s := &HTTPSource{
		client: http.DefaultClient,
		url:    joinDocumentURL(baseURL, path),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func joinDocumentURL(baseURL, path string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
	}
	return u.JoinPath(path).String()
}

// Location returns the full document URL.
func (s *HTTPSource) Location() string {
	return s.url
}

// Fetch performs the GET and returns the body of a 2xx response.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, apperrors.NewLoadError(s.url, "invalid document URL", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.5")
	req.Header.Set("User-Agent", version.Get().UserAgent())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.NewLoadError(s.url, "request failed", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.NewStatusError(s.url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes+1))
	if err != nil {
		return nil, apperrors.NewLoadError(s.url, "failed to read response body", err)
	}
	if len(data) > maxDocumentBytes {
		return nil, apperrors.NewLoadError(s.url, fmt.Sprintf("document exceeds %d bytes", maxDocumentBytes), nil)
	}

	return data, nil
}
