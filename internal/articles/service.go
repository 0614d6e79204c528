package articles

import (
	"context"
	"strings"

	"github.com/google/uuid"

	articlespkg "github.com/goliatone/go-affiliate/articles"
	"github.com/goliatone/go-affiliate/catalog"
	"github.com/goliatone/go-affiliate/internal/logging"
	"github.com/goliatone/go-affiliate/pkg/interfaces"
	"github.com/goliatone/go-affiliate/render"
	"github.com/goliatone/go-affiliate/shortcode"
)

// ArticleRepository is the article storage surface the service needs.
type ArticleRepository interface {
	GetBySlug(ctx context.Context, siteID uuid.UUID, slug string) (*articlespkg.Article, error)
	ListPublished(ctx context.Context, siteID uuid.UUID) ([]*articlespkg.Article, error)
}

// ServiceOption customizes the articles service.
type ServiceOption func(*service)

// WithLogger overrides the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithAutoLink toggles the site-wide cross-link pass. Individual renders can
// still opt out via RenderRequest.DisableAutoLink.
func WithAutoLink(enabled bool) ServiceOption {
	return func(s *service) {
		s.autoLink = enabled
	}
}

type service struct {
	articles ArticleRepository
	catalog  catalog.Service
	renderer *render.Renderer
	logger   interfaces.Logger
	autoLink bool
}

// NewService wires the read-time rendering pipeline.
func NewService(articles ArticleRepository, catalogSvc catalog.Service, renderer *render.Renderer, opts ...ServiceOption) articlespkg.Service {
	s := &service{
		articles: articles,
		catalog:  catalogSvc,
		renderer: renderer,
		logger:   logging.NoOp(),
		autoLink: true,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) GetBySlug(ctx context.Context, siteID uuid.UUID, slug string) (*articlespkg.Article, error) {
	if siteID == uuid.Nil {
		return nil, articlespkg.ErrSiteRequired
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, articlespkg.ErrSlugRequired
	}
	return s.articles.GetBySlug(ctx, siteID, slug)
}

func (s *service) ListPublished(ctx context.Context, siteID uuid.UUID) ([]*articlespkg.Article, error) {
	if siteID == uuid.Nil {
		return nil, articlespkg.ErrSiteRequired
	}
	return s.articles.ListPublished(ctx, siteID)
}

// Render runs one read-time pass: reference extraction, batched catalog
// fetches, shortcode resolution, optional auto-linking, TOC derivation. The
// stored content string is left untouched.
func (s *service) Render(ctx context.Context, req articlespkg.RenderRequest) (*articlespkg.RenderedArticle, error) {
	article := req.Article
	if article == nil {
		found, err := s.GetBySlug(ctx, req.SiteID, req.Slug)
		if err != nil {
			return nil, err
		}
		article = found
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, articlespkg.ErrContentRequired
	}

	refs := shortcode.ExtractReferences(article.Content)

	renderReq := render.Request{
		Content:  article.Content,
		SiteSlug: req.SiteSlug,
	}

	if len(refs.ProductSlugs) > 0 {
		cards, err := s.catalog.CardsBySlugs(ctx, req.SiteID, refs.ProductSlugs)
		if err != nil {
			return nil, err
		}
		renderReq.Products = cards
	}
	if len(refs.CategorySlugs) > 0 {
		grouped, err := s.catalog.CardsByCategorySlugs(ctx, req.SiteID, refs.CategorySlugs)
		if err != nil {
			return nil, err
		}
		renderReq.CategoryProducts = grouped
	}

	if s.autoLink && !req.DisableAutoLink {
		products, err := s.catalog.ProductLinks(ctx, req.SiteID)
		if err != nil {
			return nil, err
		}
		categories, err := s.catalog.CategoryLinks(ctx, req.SiteID)
		if err != nil {
			return nil, err
		}
		renderReq.AllProducts = products
		renderReq.AllCategories = categories
		renderReq.EnableAutoLink = true
	}

	result := s.renderer.Render(ctx, renderReq)

	s.logger.Debug("articles: rendered",
		"slug", article.Slug,
		"product_refs", len(refs.ProductSlugs),
		"category_refs", len(refs.CategorySlugs),
		"auto_linked", len(result.AutoLinked),
	)

	return &articlespkg.RenderedArticle{
		Article:    article,
		HTML:       string(result.HTML),
		Headings:   result.Headings,
		AutoLinked: result.AutoLinked,
	}, nil
}

func (s *service) References(ctx context.Context, siteID uuid.UUID, slug string) (shortcode.References, error) {
	article, err := s.GetBySlug(ctx, siteID, slug)
	if err != nil {
		return shortcode.References{}, err
	}
	return shortcode.ExtractReferences(article.Content), nil
}
