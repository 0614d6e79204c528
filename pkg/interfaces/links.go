package interfaces

import "context"

// LinkResolver builds public URLs for catalog entities. The renderer only
// deals in slugs; how those map onto a site's route structure is the host
// application's concern.
type LinkResolver interface {
	// ProductURL returns the public URL for a product page on the given site.
	ProductURL(ctx context.Context, siteSlug, productSlug string) (string, error)

	// CategoryURL returns the public URL for a category listing on the given site.
	CategoryURL(ctx context.Context, siteSlug, categorySlug string) (string, error)
}
