package articles

import (
	"context"

	"github.com/goliatone/go-affiliate/shortcode"
	"github.com/google/uuid"
)

// Service exposes the read-side article operations.
type Service interface {
	// GetBySlug returns the stored article record.
	GetBySlug(ctx context.Context, siteID uuid.UUID, slug string) (*Article, error)

	// ListPublished returns a site's published articles, newest first.
	ListPublished(ctx context.Context, siteID uuid.UUID) ([]*Article, error)

	// Render runs the full read-time pipeline for one article: extract
	// shortcode references, batch-fetch the referenced catalog entities,
	// resolve shortcodes, auto-link prose, and derive the table of
	// contents. The stored content is never mutated.
	Render(ctx context.Context, req RenderRequest) (*RenderedArticle, error)

	// References reports which catalog entities an article's content
	// refers to, without rendering. Used by admin tooling to warn about
	// dangling slugs before publishing.
	References(ctx context.Context, siteID uuid.UUID, slug string) (shortcode.References, error)
}
