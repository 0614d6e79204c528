package sites

import (
	"context"

	"github.com/goliatone/go-affiliate/layout"
	"github.com/google/uuid"
)

// Service exposes site and niche lookups for routing and rendering.
type Service interface {
	GetSiteBySlug(ctx context.Context, slug string) (*Site, error)
	GetSiteByDomain(ctx context.Context, domain string) (*Site, error)
	GetNiche(ctx context.Context, id uuid.UUID) (*Niche, error)

	// ResolveLayout returns the product-page layout for a site, falling
	// back to the default when its niche has no custom document.
	ResolveLayout(ctx context.Context, siteID uuid.UUID, registry *layout.Registry) (layout.Config, error)
}
