package services

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/reglet-dev/linkpage/internal/domain/diagnostics"
	"github.com/reglet-dev/linkpage/internal/domain/entities"
)

// fakeSource serves a fixed body or error and counts fetches.
type fakeSource struct {
	err   error
	body  string
	calls atomic.Int32
}

func (f *fakeSource) Fetch(_ context.Context) ([]byte, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.body), nil
}

func (f *fakeSource) Location() string {
	return "test://data.json"
}

// jsonDecoder decodes with encoding/json; enough for application tests.
type jsonDecoder struct{}

func (jsonDecoder) Decode(data []byte) (*entities.RawDocument, error) {
	var raw entities.RawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

// recordingSink captures emitted diagnostics.
type recordingSink struct {
	mu    sync.Mutex
	diags []diagnostics.Diagnostic
}

func (r *recordingSink) Emit(_ context.Context, d diagnostics.Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diags = append(r.diags, d)
}

func (r *recordingSink) codes() []diagnostics.Code {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]diagnostics.Code, len(r.diags))
	for i, d := range r.diags {
		out[i] = d.Code
	}
	return out
}

// fakeLookup answers with a user or an error and counts calls.
type fakeLookup struct {
	user    *entities.ExternalUser
	err     error
	handles []string
	mu      sync.Mutex
}

func (f *fakeLookup) LookupUser(_ context.Context, handle string) (*entities.ExternalUser, error) {
	f.mu.Lock()
	f.handles = append(f.handles, handle)
	f.mu.Unlock()
	return f.user, f.err
}

func (f *fakeLookup) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.handles)
}

const scenarioDocument = `{
  "version": "1.0.0",
  "profile": {"name": "A", "bio": "b", "gitHubUsername": "oct"},
  "links": [
    {"id": "x", "title": "T", "url": "https://e.com", "icon": "🔗", "order": 1},
    {"id": "y", "title": "U", "url": "https://e.com", "icon": "📝", "order": 0}
  ]
}`
