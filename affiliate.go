// Package affiliate embeds the content rendering pipeline of a multi-tenant
// affiliate publishing platform into a host Go application: shortcode
// resolution, catalog-aware auto-linking, table-of-contents derivation and
// niche layout resolution, backed by bun storage.
package affiliate

import (
	"github.com/goliatone/go-affiliate/articles"
	"github.com/goliatone/go-affiliate/catalog"
	"github.com/goliatone/go-affiliate/internal/di"
	"github.com/goliatone/go-affiliate/internal/markdown"
	"github.com/goliatone/go-affiliate/pkg/interfaces"
	"github.com/goliatone/go-affiliate/render"
	"github.com/goliatone/go-affiliate/sites"
)

// CatalogService exports the catalog read contract for consumers of the module.
type CatalogService = catalog.Service

// ArticlesService exports the article rendering contract.
type ArticlesService = articles.Service

// SitesService exports the site and layout lookup contract.
type SitesService = sites.Service

// LinkResolver exports the entity URL resolver contract.
type LinkResolver = interfaces.LinkResolver

// MarkdownParser exports the Markdown parsing contract.
type MarkdownParser = interfaces.MarkdownParser

// Module is the top level runtime facade.
type Module struct {
	container *di.Container
}

// New constructs the module from a configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Catalog returns the configured catalog service.
func (m *Module) Catalog() CatalogService {
	return m.container.CatalogService()
}

// Articles returns the configured articles service.
func (m *Module) Articles() ArticlesService {
	return m.container.ArticlesService()
}

// Sites returns the configured sites service.
func (m *Module) Sites() SitesService {
	return m.container.SitesService()
}

// Renderer returns the shortcode renderer for hosts that drive rendering
// themselves.
func (m *Module) Renderer() *render.Renderer {
	return m.container.Renderer()
}

// Importer returns the Markdown article importer.
func (m *Module) Importer() *markdown.Importer {
	return m.container.MarkdownImporter()
}
