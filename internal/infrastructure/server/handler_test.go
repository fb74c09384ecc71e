package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/reglet-dev/linkpage/internal/application/dto"
	"github.com/reglet-dev/linkpage/internal/domain/entities"
	"github.com/reglet-dev/linkpage/internal/domain/services"
	"github.com/reglet-dev/linkpage/internal/domain/values"
	"github.com/reglet-dev/linkpage/internal/infrastructure/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	state dto.PageState
	err   error
	last  dto.RenderRequest
}

func (s *stubRenderer) Execute(_ context.Context, req dto.RenderRequest) (dto.PageState, error) {
	s.last = req
	return s.state, s.err
}

type stubDocument struct {
	data     []byte
	err      error
	location string
}

func (s stubDocument) Fetch(context.Context) ([]byte, error) { return s.data, s.err }
func (s stubDocument) Location() string                       { return s.location }

func loadedState() dto.PageState {
	doc := entities.NewDocument("1", entities.Profile{Name: "Ada", Bio: "b", ExternalHandle: "ada"},
		[]entities.Link{{ID: "x", Title: "T", URL: "https://e.com", Order: 0}})
	return dto.PageState{RenderID: "r-1", Document: doc, Avatar: values.LookupAvatar("https://a/ada")}
}

func TestHandler_Page(t *testing.T) {
	renderer := &stubRenderer{state: loadedState()}
	filter, err := services.CompileLinkFilter(`order >= 0`)
	require.NoError(t, err)

	h := NewHandler(HandlerConfig{
		Renderer:      renderer,
		Formatters:    output.NewPageFormatterFactory(),
		Filter:        filter,
		RenderTimeout: time.Second,
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<h1 class=\"name\">Ada</h1>")
	assert.Equal(t, filter, renderer.last.Filter)
	assert.Equal(t, time.Second, renderer.last.Timeout)
}

func TestHandler_PageFormats(t *testing.T) {
	h := NewHandler(HandlerConfig{
		Renderer:   &stubRenderer{state: loadedState()},
		Formatters: output.NewPageFormatterFactory(),
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?format=json", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"render_id": "r-1"`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?format=pdf", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_PageAborted(t *testing.T) {
	h := NewHandler(HandlerConfig{
		Renderer:   &stubRenderer{err: context.Canceled},
		Formatters: output.NewPageFormatterFactory(),
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandler_DocumentErrorStillRendersPage(t *testing.T) {
	h := NewHandler(HandlerConfig{
		Renderer:   &stubRenderer{state: dto.PageState{Error: "failed to load data.json"}},
		Formatters: output.NewPageFormatterFactory(),
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to load data.json")
}

func TestHandler_Document(t *testing.T) {
	h := NewHandler(HandlerConfig{
		Renderer:   &stubRenderer{},
		Formatters: output.NewPageFormatterFactory(),
		Document:   stubDocument{data: []byte(`{"links":[]}`), location: "site/data.json"},
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/data.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"links":[]}`, rec.Body.String())
}

func TestHandler_DocumentUnavailable(t *testing.T) {
	h := NewHandler(HandlerConfig{
		Renderer:   &stubRenderer{},
		Formatters: output.NewPageFormatterFactory(),
		Document:   stubDocument{err: errors.New("gone"), location: "data.yaml"},
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/data.json", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_NoDocumentRouteForRemoteSource(t *testing.T) {
	h := NewHandler(HandlerConfig{Renderer: &stubRenderer{}, Formatters: output.NewPageFormatterFactory()})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/data.json", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Healthz(t *testing.T) {
	h := NewHandler(HandlerConfig{Renderer: &stubRenderer{}, Formatters: output.NewPageFormatterFactory()})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := NewHandler(HandlerConfig{Renderer: &stubRenderer{}, Formatters: output.NewPageFormatterFactory()})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestDocumentContentType(t *testing.T) {
	assert.Equal(t, "application/yaml", documentContentType("links.YAML"))
	assert.Equal(t, "application/yaml", documentContentType("links.yml"))
	assert.Equal(t, "application/json", documentContentType("data.json"))
}
