package sites

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-affiliate/internal/logging"
	"github.com/goliatone/go-affiliate/layout"
	"github.com/goliatone/go-affiliate/pkg/interfaces"
	sitespkg "github.com/goliatone/go-affiliate/sites"
)

// SiteRepository is the site storage surface the service needs.
type SiteRepository interface {
	GetBySlug(ctx context.Context, slug string) (*sitespkg.Site, error)
	GetByDomain(ctx context.Context, domain string) (*sitespkg.Site, error)
	GetByID(ctx context.Context, id uuid.UUID) (*sitespkg.Site, error)
}

// NicheRepository is the niche storage surface the service needs.
type NicheRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*sitespkg.Niche, error)
}

// ServiceOption customizes the sites service.
type ServiceOption func(*service)

// WithLogger overrides the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	sites  SiteRepository
	niches NicheRepository
	logger interfaces.Logger
}

// NewService constructs the sites service.
func NewService(sites SiteRepository, niches NicheRepository, opts ...ServiceOption) sitespkg.Service {
	s := &service{
		sites:  sites,
		niches: niches,
		logger: logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) GetSiteBySlug(ctx context.Context, slug string) (*sitespkg.Site, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, sitespkg.ErrSlugRequired
	}
	return s.sites.GetBySlug(ctx, slug)
}

func (s *service) GetSiteByDomain(ctx context.Context, domain string) (*sitespkg.Site, error) {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return nil, sitespkg.ErrSiteNotFound
	}
	return s.sites.GetByDomain(ctx, domain)
}

func (s *service) GetNiche(ctx context.Context, id uuid.UUID) (*sitespkg.Niche, error) {
	return s.niches.GetByID(ctx, id)
}

// ResolveLayout loads the site's niche layout and resolves it against the
// registered section components. A site whose niche carries no custom
// document gets the default layout.
func (s *service) ResolveLayout(ctx context.Context, siteID uuid.UUID, registry *layout.Registry) (layout.Config, error) {
	site, err := s.sites.GetByID(ctx, siteID)
	if err != nil {
		return layout.Config{}, err
	}

	niche, err := s.niches.GetByID(ctx, site.NicheID)
	if err != nil {
		return layout.Config{}, err
	}

	resolved := layout.Resolve(niche.Layout, registry)
	if niche.Layout == nil {
		s.logger.Debug("sites: niche has no layout, using default", "site_id", siteID, "niche", niche.Slug)
	}
	return resolved, nil
}
