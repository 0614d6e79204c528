package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Service exposes the catalog read operations the rendering pipeline and
// public pages depend on. Implementations must satisfy the batch-fetch
// contract: one call per referenced entity kind, results keyed by slug.
type Service interface {
	// CardsBySlugs resolves the supplied product slugs into card
	// projections. Unknown slugs are simply absent from the result map;
	// a dangling reference is the renderer's concern, not an error.
	CardsBySlugs(ctx context.Context, siteID uuid.UUID, slugs []string) (map[string]ProductCardData, error)

	// CardsByCategorySlugs resolves category slugs into their member
	// product cards in catalog order. Unknown categories are absent from
	// the result map.
	CardsByCategorySlugs(ctx context.Context, siteID uuid.UUID, slugs []string) (map[string][]ProductCardData, error)

	// ProductLinks lists every published product's slug and title for
	// one site, used by the auto-linker.
	ProductLinks(ctx context.Context, siteID uuid.UUID) ([]ProductLink, error)

	// CategoryLinks lists every category's slug and name for one site.
	CategoryLinks(ctx context.Context, siteID uuid.UUID) ([]CategoryLink, error)

	// GetProductBySlug returns the full product record, details included.
	GetProductBySlug(ctx context.Context, siteID uuid.UUID, slug string) (*Product, error)

	// GetCategoryBySlug returns the category record.
	GetCategoryBySlug(ctx context.Context, siteID uuid.UUID, slug string) (*Category, error)
}
