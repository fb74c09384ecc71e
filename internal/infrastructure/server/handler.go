// Package server serves rendered link pages over HTTP.
package server

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/reglet-dev/linkpage/internal/application/dto"
	"github.com/reglet-dev/linkpage/internal/application/ports"
	"github.com/reglet-dev/linkpage/internal/domain/services"
)

// PageRenderer produces the page state for one request.
type PageRenderer interface {
	Execute(ctx context.Context, req dto.RenderRequest) (dto.PageState, error)
}

// HandlerConfig wires the HTTP handler.
type HandlerConfig struct {
	Renderer   PageRenderer
	Formatters ports.PageFormatterFactory
	// Document, when set, is served raw at /data.json.
	Document      ports.DocumentSource
	Filter        *services.LinkFilter
	RenderTimeout time.Duration
	Logger        *slog.Logger
}

type handler struct {
	cfg    HandlerConfig
	logger *slog.Logger
}

// NewHandler builds the route table: GET / renders the page,
// GET /data.json serves the local document, GET /healthz reports liveness.
func NewHandler(cfg HandlerConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	h := &handler{cfg: cfg, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.page)
	mux.HandleFunc("GET /healthz", h.healthz)
	if cfg.Document != nil {
		mux.HandleFunc("GET /data.json", h.document)
	}
	return mux
}

func (h *handler) page(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "html"
	}

	state, err := h.cfg.Renderer.Execute(r.Context(), dto.RenderRequest{
		Filter:  h.cfg.Filter,
		Timeout: h.cfg.RenderTimeout,
	})
	if err != nil {
		h.logger.Warn("render aborted", "error", err)
		http.Error(w, "render aborted", http.StatusServiceUnavailable)
		return
	}

	var buf bytes.Buffer
	formatter, err := h.cfg.Formatters.Create(format, &buf, ports.FormatterOptions{Indent: true})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := formatter.Format(state); err != nil {
		h.logger.Error("failed to format page", "render_id", state.RenderID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType(format))
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())

	h.logger.Debug("page served",
		"render_id", state.RenderID,
		"format", format,
		"document_loading", state.DocumentLoading,
		"avatar_loading", state.AvatarLoading,
		"error", state.Error != "")
}

func (h *handler) document(w http.ResponseWriter, r *http.Request) {
	data, err := h.cfg.Document.Fetch(r.Context())
	if err != nil {
		h.logger.Warn("failed to read document", "location", h.cfg.Document.Location(), "error", err)
		http.Error(w, "document unavailable", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", documentContentType(h.cfg.Document.Location()))
	_, _ = w.Write(data)
}

func (h *handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func contentType(format string) string {
	switch format {
	case "json":
		return "application/json"
	case "yaml":
		return "application/yaml"
	default:
		return "text/html; charset=utf-8"
	}
}

func documentContentType(location string) string {
	switch strings.ToLower(filepath.Ext(location)) {
	case ".yaml", ".yml":
		return "application/yaml"
	default:
		return "application/json"
	}
}
