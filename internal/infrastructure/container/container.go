// Package container provides dependency injection for the application.
package container

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"

	apperrors "github.com/reglet-dev/linkpage/internal/application/errors"
	"github.com/reglet-dev/linkpage/internal/application/ports"
	"github.com/reglet-dev/linkpage/internal/application/services"
	domainservices "github.com/reglet-dev/linkpage/internal/domain/services"
	"github.com/reglet-dev/linkpage/internal/infrastructure/config"
	"github.com/reglet-dev/linkpage/internal/infrastructure/github"
	"github.com/reglet-dev/linkpage/internal/infrastructure/logging"
	"github.com/reglet-dev/linkpage/internal/infrastructure/output"
	"github.com/reglet-dev/linkpage/internal/infrastructure/server"
	"github.com/reglet-dev/linkpage/internal/infrastructure/source"
	"github.com/reglet-dev/linkpage/internal/infrastructure/system"
)

// Container holds all application dependencies.
type Container struct {
	systemConfig      ports.SystemConfigProvider
	documentSource    ports.DocumentSource
	localDocument     ports.DocumentSource
	loader            *services.DocumentLoader
	enricher          *services.ProfileEnricher
	renderPageUseCase *services.RenderPageUseCase
	validateUseCase   *services.ValidateDocumentUseCase
	pageFormatters    ports.PageFormatterFactory
	reportFormatters  ports.ReportFormatterFactory
	systemCfg         *system.Config
	logger            *slog.Logger
}

// Overrides carry command-line and environment settings. Non-empty fields
// replace the matching system config values.
type Overrides struct {
	Document      string
	APIBase       string
	FallbackBase  string
	ServerAddr    string
	RenderTimeout string
}

// Options configure the container.
type Options struct {
	Logger           *slog.Logger
	SystemConfigPath string
	Overrides        Overrides
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	systemConfigAdapter := system.NewConfigLoader()

	systemCfg, err := systemConfigAdapter.LoadConfig(context.TODO(), opts.SystemConfigPath)
	if err != nil {
		return nil, apperrors.NewConfigurationError("system config", "failed to load "+opts.SystemConfigPath, err)
	}
	applyOverrides(systemCfg, opts.Overrides)
	if err := systemCfg.Validate(); err != nil {
		return nil, apperrors.NewConfigurationError("system config", "invalid setting", err)
	}

	documentSource, localDocument, err := newDocumentSource(systemCfg.Document)
	if err != nil {
		return nil, err
	}

	sink := logging.NewSlogSink(opts.Logger)

	loader := services.NewDocumentLoader(
		documentSource,
		config.NewDocumentDecoder(),
		domainservices.NewDocumentCompiler(),
		sink,
		opts.Logger,
	)

	enricher := services.NewProfileEnricher(
		github.NewClient(github.WithAPIBase(systemCfg.GitHub.APIBase)),
		systemCfg.GitHub.FallbackBase,
		sink,
		opts.Logger,
	)

	return &Container{
		systemConfig:      systemConfigAdapter,
		documentSource:    documentSource,
		localDocument:     localDocument,
		loader:            loader,
		enricher:          enricher,
		renderPageUseCase: services.NewRenderPageUseCase(loader, enricher, opts.Logger),
		validateUseCase:   services.NewValidateDocumentUseCase(loader),
		pageFormatters:    output.NewPageFormatterFactory(),
		reportFormatters:  output.NewReportFormatterFactory(),
		systemCfg:         systemCfg,
		logger:            opts.Logger,
	}, nil
}

func applyOverrides(cfg *system.Config, o Overrides) {
	if o.Document != "" {
		if isURL(o.Document) {
			cfg.Document.URL = o.Document
		} else {
			cfg.Document.URL = ""
			cfg.Document.Path = o.Document
		}
	}
	if o.APIBase != "" {
		cfg.GitHub.APIBase = o.APIBase
	}
	if o.FallbackBase != "" {
		cfg.GitHub.FallbackBase = o.FallbackBase
	}
	if o.ServerAddr != "" {
		cfg.Server.Addr = o.ServerAddr
	}
	if o.RenderTimeout != "" {
		cfg.Render.Timeout = o.RenderTimeout
	}
}

// newDocumentSource picks the HTTP source when a URL is configured, the file
// source otherwise. The second result is the file source, or nil for URLs.
func newDocumentSource(cfg system.DocumentConfig) (ports.DocumentSource, ports.DocumentSource, error) {
	if cfg.URL != "" {
		base, docPath, err := splitDocumentURL(cfg.URL)
		if err != nil {
			return nil, nil, apperrors.NewConfigurationError("document", "invalid document URL", err)
		}
		return source.NewHTTPSource(base, docPath), nil, nil
	}

	if cfg.Path == "" {
		return nil, nil, apperrors.NewConfigurationError("document", "no document URL or path configured", nil)
	}

	file := source.NewFileSource(cfg.Path)
	return file, file, nil
}

// splitDocumentURL treats a URL whose path names a file as the full document
// URL and anything else as a site base that serves /data.json. The query
// stays on the base and the source re-attaches it after the path.
func splitDocumentURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", "", fmt.Errorf("missing host in %q", raw)
	}

	if path.Ext(u.Path) == "" {
		u.Path = strings.TrimRight(u.Path, "/")
		u.RawPath = ""
		return u.String(), "", nil
	}

	docPath := u.Path
	u.Path = ""
	u.RawPath = ""
	return u.String(), docPath, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// RenderPageUseCase returns the render page use case.
func (c *Container) RenderPageUseCase() *services.RenderPageUseCase {
	return c.renderPageUseCase
}

// ValidateDocumentUseCase returns the validate document use case.
func (c *Container) ValidateDocumentUseCase() *services.ValidateDocumentUseCase {
	return c.validateUseCase
}

// DocumentSource returns the configured document source.
func (c *Container) DocumentSource() ports.DocumentSource {
	return c.documentSource
}

// PageFormatters returns the page formatter factory.
func (c *Container) PageFormatters() ports.PageFormatterFactory {
	return c.pageFormatters
}

// ReportFormatters returns the report formatter factory.
func (c *Container) ReportFormatters() ports.ReportFormatterFactory {
	return c.reportFormatters
}

// Server builds the HTTP server for `linkpage serve`.
func (c *Container) Server(filter *domainservices.LinkFilter) (*server.Server, error) {
	renderTimeout, err := c.systemCfg.RenderTimeout()
	if err != nil {
		return nil, err
	}
	readHeaderTimeout, err := c.systemCfg.ReadHeaderTimeout()
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := c.systemCfg.ShutdownTimeout()
	if err != nil {
		return nil, err
	}

	handler := server.NewHandler(server.HandlerConfig{
		Renderer:      c.renderPageUseCase,
		Formatters:    c.pageFormatters,
		Document:      c.localDocument,
		Filter:        filter,
		RenderTimeout: renderTimeout,
		Logger:        c.logger,
	})

	return server.New(server.Config{
		Addr:              c.systemCfg.Server.Addr,
		ReadHeaderTimeout: readHeaderTimeout,
		ShutdownTimeout:   shutdownTimeout,
	}, handler, c.logger), nil
}

// SystemConfig returns the system configuration.
func (c *Container) SystemConfig() *system.Config {
	return c.systemCfg
}

// SystemConfigProvider returns the loader used for the system config.
func (c *Container) SystemConfigProvider() ports.SystemConfigProvider {
	return c.systemConfig
}

// Logger returns the configured logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
