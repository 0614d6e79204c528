// Package di wires the module's services from a runtime configuration. The
// container resolves defaults lazily: a host can hand it just a bun.DB and a
// route table and get the full pipeline, or override any individual binding.
package di

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/schema"

	articlespkg "github.com/goliatone/go-affiliate/articles"
	catalogpkg "github.com/goliatone/go-affiliate/catalog"
	"github.com/goliatone/go-affiliate/internal/articles"
	"github.com/goliatone/go-affiliate/internal/catalog"
	"github.com/goliatone/go-affiliate/internal/links"
	"github.com/goliatone/go-affiliate/internal/logging"
	"github.com/goliatone/go-affiliate/internal/logging/gologger"
	"github.com/goliatone/go-affiliate/internal/markdown"
	"github.com/goliatone/go-affiliate/internal/runtimeconfig"
	"github.com/goliatone/go-affiliate/internal/sites"
	"github.com/goliatone/go-affiliate/layout"
	"github.com/goliatone/go-affiliate/pkg/interfaces"
	"github.com/goliatone/go-affiliate/render"
	sitespkg "github.com/goliatone/go-affiliate/sites"
)

// ErrStorageRequired indicates the container has no storage to build its
// default repositories from.
var ErrStorageRequired = errors.New("affiliate: a bun.DB (or explicit service overrides) is required")

// Container wires module dependencies.
type Container struct {
	Config runtimeconfig.Config

	bunDB         *bun.DB
	sqlDB         *sql.DB
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	loggerProvider interfaces.LoggerProvider

	routeManager *urlkit.RouteManager
	linkResolver interfaces.LinkResolver

	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	articleRepo  articles.ArticleRepository
	siteRepo     sites.SiteRepository
	nicheRepo    sites.NicheRepository

	renderer        *render.Renderer
	sectionRegistry *layout.Registry
	markdownParser  interfaces.MarkdownParser
	importer        *markdown.Importer

	catalogSvc  catalogpkg.Service
	articlesSvc articlespkg.Service
	sitesSvc    sitespkg.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB supplies the database the default repositories run on.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithSQLDB supplies a raw database handle; the container wraps it in a
// bun.DB using the dialect named by Storage.Dialect. WithBunDB wins when
// both are given.
func WithSQLDB(db *sql.DB) Option {
	return func(c *Container) {
		c.sqlDB = db
	}
}

// WithCache overrides the default repository cache.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the configured logging provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithLinkResolver overrides the default go-urlkit link resolver.
func WithLinkResolver(resolver interfaces.LinkResolver) Option {
	return func(c *Container) {
		c.linkResolver = resolver
	}
}

// WithSectionRegistry supplies the host's layout section components.
func WithSectionRegistry(registry *layout.Registry) Option {
	return func(c *Container) {
		c.sectionRegistry = registry
	}
}

// WithMarkdownParser overrides the default goldmark parser.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		c.markdownParser = parser
	}
}

// WithCatalogService overrides the default catalog service binding.
func WithCatalogService(svc catalogpkg.Service) Option {
	return func(c *Container) {
		c.catalogSvc = svc
	}
}

// WithArticlesService overrides the default articles service binding.
func WithArticlesService(svc articlespkg.Service) Option {
	return func(c *Container) {
		c.articlesSvc = svc
	}
}

// WithSitesService overrides the default sites service binding.
func WithSitesService(svc sitespkg.Service) Option {
	return func(c *Container) {
		c.sitesSvc = svc
	}
}

// NewContainer creates a container from the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:          cfg,
		cacheTTL:        cacheTTL,
		sectionRegistry: layout.NewRegistry(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	c.configureRoutes()
	if err := c.configureRenderer(); err != nil {
		return nil, err
	}
	c.configureMarkdown()
	if err := c.configureRepositories(); err != nil {
		return nil, err
	}
	c.configureServices()

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}
	if strings.EqualFold(strings.TrimSpace(c.Config.Logging.Provider), "gologger") {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	}
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled || !c.Config.Features.Cache {
		return
	}

	if c.cacheService == nil {
		cacheCfg := repocache.DefaultConfig()
		cacheCfg.TTL = c.cacheTTL
		service, err := repocache.NewCacheService(cacheCfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRoutes() {
	if c.linkResolver != nil {
		return
	}

	routesCfg := c.Config.Routes
	if routesCfg.RouteConfig == nil {
		return
	}

	manager := urlkit.NewRouteManager(routesCfg.RouteConfig)
	c.routeManager = manager

	c.linkResolver = links.NewURLKitResolver(links.URLKitResolverOptions{
		Manager:       manager,
		Group:         strings.TrimSpace(routesCfg.URLKit.Group),
		ProductRoute:  strings.TrimSpace(routesCfg.URLKit.ProductRoute),
		CategoryRoute: strings.TrimSpace(routesCfg.URLKit.CategoryRoute),
		SiteParam:     strings.TrimSpace(routesCfg.URLKit.SiteParam),
		SlugParam:     strings.TrimSpace(routesCfg.URLKit.SlugParam),
	})
}

func (c *Container) configureRenderer() error {
	rendererOpts := []render.Option{
		render.WithLogger(logging.RenderLogger(c.loggerProvider)),
	}
	if c.linkResolver != nil {
		rendererOpts = append(rendererOpts, render.WithLinkResolver(c.linkResolver))
	}
	if len(c.Config.Render.TemplateOverrides) > 0 {
		rendererOpts = append(rendererOpts, render.WithTemplates(c.Config.Render.TemplateOverrides))
	}
	if c.Config.Render.DefaultProductsLimit > 0 {
		rendererOpts = append(rendererOpts, render.WithDefaultProductsLimit(c.Config.Render.DefaultProductsLimit))
	}

	renderer, err := render.NewRenderer(rendererOpts...)
	if err != nil {
		return err
	}
	c.renderer = renderer
	return nil
}

func (c *Container) configureMarkdown() {
	if c.markdownParser == nil {
		parserCfg := c.Config.Markdown.Parser
		c.markdownParser = markdown.NewGoldmarkParser(interfaces.ParseOptions{
			Extensions: parserCfg.Extensions,
			Sanitize:   parserCfg.Sanitize,
			HardWraps:  parserCfg.HardWraps,
			SafeMode:   parserCfg.SafeMode,
		})
	}
	c.importer = markdown.NewImporter(c.markdownParser, markdown.WithDirConfig(markdown.DirConfig{
		ContentDir: c.Config.Markdown.ContentDir,
		Pattern:    c.Config.Markdown.Pattern,
		Recursive:  c.Config.Markdown.Recursive,
	}))
}

func (c *Container) configureRepositories() error {
	if c.bunDB == nil && c.sqlDB != nil {
		c.bunDB = bun.NewDB(c.sqlDB, c.dialect())
	}
	if c.bunDB == nil {
		if c.catalogSvc == nil || c.articlesSvc == nil || c.sitesSvc == nil {
			return ErrStorageRequired
		}
		return nil
	}

	c.productRepo = catalog.NewBunProductRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.categoryRepo = catalog.NewBunCategoryRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.articleRepo = articles.NewBunArticleRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.siteRepo = sites.NewBunSiteRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.nicheRepo = sites.NewBunNicheRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	return nil
}

func (c *Container) dialect() schema.Dialect {
	switch strings.ToLower(strings.TrimSpace(c.Config.Storage.Dialect)) {
	case "postgres", "postgresql", "pg":
		return pgdialect.New()
	default:
		return sqlitedialect.New()
	}
}

func (c *Container) configureServices() {
	if c.catalogSvc == nil {
		c.catalogSvc = catalog.NewService(
			c.productRepo,
			c.categoryRepo,
			catalog.WithLogger(logging.CatalogLogger(c.loggerProvider)),
		)
	}

	if c.sitesSvc == nil {
		c.sitesSvc = sites.NewService(
			c.siteRepo,
			c.nicheRepo,
			sites.WithLogger(logging.SitesLogger(c.loggerProvider)),
		)
	}

	if c.articlesSvc == nil {
		c.articlesSvc = articles.NewService(
			c.articleRepo,
			c.catalogSvc,
			c.renderer,
			articles.WithLogger(logging.ArticlesLogger(c.loggerProvider)),
			articles.WithAutoLink(c.Config.Features.AutoLink),
		)
	}
}

// CatalogService exposes the configured catalog service.
func (c *Container) CatalogService() catalogpkg.Service {
	return c.catalogSvc
}

// ArticlesService exposes the configured articles service.
func (c *Container) ArticlesService() articlespkg.Service {
	return c.articlesSvc
}

// SitesService exposes the configured sites service.
func (c *Container) SitesService() sitespkg.Service {
	return c.sitesSvc
}

// Renderer exposes the shortcode renderer for hosts that render outside the
// articles service.
func (c *Container) Renderer() *render.Renderer {
	return c.renderer
}

// LinkResolver exposes the configured entity URL resolver.
func (c *Container) LinkResolver() interfaces.LinkResolver {
	return c.linkResolver
}

// RouteManager exposes the go-urlkit route manager, if routes are configured.
func (c *Container) RouteManager() *urlkit.RouteManager {
	return c.routeManager
}

// SectionRegistry exposes the layout section registry.
func (c *Container) SectionRegistry() *layout.Registry {
	return c.sectionRegistry
}

// MarkdownParser exposes the configured Markdown parser.
func (c *Container) MarkdownParser() interfaces.MarkdownParser {
	return c.markdownParser
}

// MarkdownImporter exposes the article importer.
func (c *Container) MarkdownImporter() *markdown.Importer {
	return c.importer
}

// Logger returns a module-scoped logger.
func (c *Container) Logger(module string) interfaces.Logger {
	return logging.ModuleLogger(c.loggerProvider, module)
}
